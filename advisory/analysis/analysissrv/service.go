package analysissrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

// HistoryLimit caps how many past analyses the history endpoint returns.
const HistoryLimit = 10

// ResumeAdvisor is the slice of the advisor this service needs.
type ResumeAdvisor interface {
	AnalyzeResume(ctx context.Context, resumeText string) advisor.ResumeJudgment
}

type AnalysisService struct {
	repo          analysis.Repository
	jobRepo       analysis.JobRepository
	queue         analysis.JobQueue
	candidateRepo candidate.Repository
	advisor       ResumeAdvisor
}

func NewAnalysisService(
	repo analysis.Repository,
	jobRepo analysis.JobRepository,
	queue analysis.JobQueue,
	candidateRepo candidate.Repository,
	resumeAdvisor ResumeAdvisor,
) *AnalysisService {
	return &AnalysisService{
		repo:          repo,
		jobRepo:       jobRepo,
		queue:         queue,
		candidateRepo: candidateRepo,
		advisor:       resumeAdvisor,
	}
}

// AnalyzeResume runs a full resume analysis for the candidate and
// stores the result. The advisor call is total: transport or parse
// failures come back as the fallback judgment, so the stored row is
// always well formed.
func (s *AnalysisService) AnalyzeResume(ctx context.Context, candidateID kernel.CandidateID) (*analysis.Analysis, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}

	profile, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !profile.HasResume() {
		return nil, candidate.ErrResumeMissing()
	}

	judgment := s.advisor.AnalyzeResume(ctx, profile.ResumeText)

	record := &analysis.Analysis{
		ID:               kernel.AnalysisID(uuid.New().String()),
		CandidateID:      candidateID,
		ATSScore:         kernel.ClampInt(judgment.ATSScore, 0, 100),
		Strengths:        judgment.Strengths,
		Weaknesses:       judgment.Weaknesses,
		MissingKeywords:  judgment.MissingKeywords,
		FormattingIssues: judgment.FormattingIssues,
		Suggestions:      judgment.Suggestions,
		ImprovedSections: judgment.ImprovedSections,
		CreatedAt:        time.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, analysis.ErrPersistFailed(err)
	}

	logx.Infof("Stored resume analysis %s for candidate %s (ats=%d)", record.ID, candidateID, record.ATSScore)
	return record, nil
}

// History returns the candidate's most recent analyses, newest first.
func (s *AnalysisService) History(ctx context.Context, candidateID kernel.CandidateID) ([]analysis.Analysis, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}
	return s.repo.ListByCandidate(ctx, candidateID, HistoryLimit)
}
