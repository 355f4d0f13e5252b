package gapsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

// HistoryLimit caps how many past reports the history endpoint returns.
const HistoryLimit = 20

// GapAdvisor is the slice of the advisor this service needs.
type GapAdvisor interface {
	AnalyzeSkillGap(ctx context.Context, currentSkills, requiredSkills []string, jobDescription string) advisor.SkillGapJudgment
}

type GapService struct {
	repo          skillgap.Repository
	candidateRepo candidate.Repository
	jobRepo       job.Repository
	advisor       GapAdvisor
}

func NewGapService(
	repo skillgap.Repository,
	candidateRepo candidate.Repository,
	jobRepo job.Repository,
	gapAdvisor GapAdvisor,
) *GapService {
	return &GapService{
		repo:          repo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		advisor:       gapAdvisor,
	}
}

// Analyze compares the candidate's skills against a posting and stores
// an immutable report. The lexical computation always runs; the AI
// match percentage replaces it only when the judgment carried one, and
// the lexical value is kept alongside either way.
func (s *GapService) Analyze(ctx context.Context, candidateID kernel.CandidateID, jobID kernel.JobID) (*skillgap.Report, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}
	if jobID.IsEmpty() {
		return nil, job.ErrJobNotFound()
	}

	profile, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	missing, lexical := skillgap.LexicalGap(profile.Skills, posting.Skills)

	judgment := s.advisor.AnalyzeSkillGap(ctx, profile.Skills, posting.Skills, posting.Description)

	matchPercentage := lexical
	if judgment.MatchPercentage != nil {
		matchPercentage = kernel.ClampInt(*judgment.MatchPercentage, 0, 100)
	}

	report := &skillgap.Report{
		ID:                     kernel.ReportID(uuid.New().String()),
		CandidateID:            candidateID,
		JobID:                  jobID,
		CurrentSkills:          profile.Skills,
		RequiredSkills:         posting.Skills,
		MissingSkills:          missing,
		MatchPercentage:        matchPercentage,
		LexicalMatchPercentage: lexical,
		Recommendations:        toRecommendations(judgment.Recommendations),
		CreatedAt:              time.Now(),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, skillgap.ErrPersistFailed(err)
	}

	logx.Infof("Stored skill gap report %s for candidate %s, job %s (match=%d, lexical=%d)",
		report.ID, candidateID, jobID, matchPercentage, lexical)
	return report, nil
}

// History returns the candidate's most recent reports, newest first.
func (s *GapService) History(ctx context.Context, candidateID kernel.CandidateID) ([]skillgap.Report, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}
	return s.repo.ListByCandidate(ctx, candidateID, HistoryLimit)
}

// GetReport returns the latest report for a candidate/job pair.
func (s *GapService) GetReport(ctx context.Context, candidateID kernel.CandidateID, jobID kernel.JobID) (*skillgap.Report, error) {
	if candidateID.IsEmpty() || jobID.IsEmpty() {
		return nil, skillgap.ErrReportNotFound()
	}
	return s.repo.GetLatest(ctx, candidateID, jobID)
}

func toRecommendations(recs []advisor.Recommendation) []skillgap.Recommendation {
	out := make([]skillgap.Recommendation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, skillgap.Recommendation{
			Skill:         rec.Skill,
			Resources:     rec.Resources,
			EstimatedTime: rec.EstimatedTime,
			Priority:      rec.Priority,
		})
	}
	return out
}
