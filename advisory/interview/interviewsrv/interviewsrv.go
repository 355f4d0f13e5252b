package interviewsrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/interview"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

const (
	// HistoryLimit caps how many past sessions the history endpoint returns.
	HistoryLimit = 20

	DefaultQuestionCount = 5
	MaxQuestionCount     = 20

	DefaultExperienceLevel = "entry"
)

// InterviewAdvisor is the slice of the advisor this service needs.
type InterviewAdvisor interface {
	GenerateQuestions(ctx context.Context, jobRole, experienceLevel string, count int) []advisor.Question
	EvaluateAnswer(ctx context.Context, question, answer, jobRole string) advisor.AnswerJudgment
}

type InterviewService struct {
	repo    interview.Repository
	advisor InterviewAdvisor
}

func NewInterviewService(repo interview.Repository, interviewAdvisor InterviewAdvisor) *InterviewService {
	return &InterviewService{
		repo:    repo,
		advisor: interviewAdvisor,
	}
}

// GenerateQuestions produces interview questions for a role. Count is
// clamped to 1..20 with 5 as the default; the experience level
// defaults to "entry".
func (s *InterviewService) GenerateQuestions(ctx context.Context, req interview.GenerateQuestionsRequest) ([]advisor.Question, error) {
	if strings.TrimSpace(req.JobRole) == "" {
		return nil, interview.ErrJobRoleMissing()
	}

	level := req.ExperienceLevel
	if level == "" {
		level = DefaultExperienceLevel
	}
	count := req.Count
	if count == 0 {
		count = DefaultQuestionCount
	}
	count = kernel.ClampInt(count, 1, MaxQuestionCount)

	return s.advisor.GenerateQuestions(ctx, req.JobRole, level, count), nil
}

// EvaluateAnswer scores one answer. The advisor call is total, so the
// result always carries a score in 0..10.
func (s *InterviewService) EvaluateAnswer(ctx context.Context, req interview.EvaluateAnswerRequest) (advisor.AnswerJudgment, error) {
	if req.Question == "" || req.Answer == "" || req.JobRole == "" {
		return advisor.AnswerJudgment{}, interview.ErrInvalidAnswer()
	}
	return s.advisor.EvaluateAnswer(ctx, req.Question, req.Answer, req.JobRole), nil
}

// SaveSession stores a completed mock interview. The summary fields
// are derived here, not by the client or another AI call.
func (s *InterviewService) SaveSession(ctx context.Context, req interview.SaveSessionRequest) (*interview.Session, error) {
	if req.CandidateID.IsEmpty() || req.JobRole == "" || req.Questions == nil {
		return nil, interview.ErrInvalidSession()
	}

	session := &interview.Session{
		ID:          kernel.SessionID(uuid.New().String()),
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		JobRole:     req.JobRole,
		Questions:   req.Questions,
		CreatedAt:   time.Now(),
	}
	session.Aggregate()

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, interview.ErrPersistFailed(err)
	}

	logx.Infof("Stored interview session %s for candidate %s (overall=%d)", session.ID, req.CandidateID, session.OverallScore)
	return session, nil
}

// History returns the candidate's most recent sessions, newest first.
func (s *InterviewService) History(ctx context.Context, candidateID kernel.CandidateID) ([]interview.Session, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}
	return s.repo.ListByCandidate(ctx, candidateID, HistoryLimit)
}
