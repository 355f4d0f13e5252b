package jobsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

// JobMatcher is the advisor call the ranker depends on.
type JobMatcher interface {
	MatchJob(ctx context.Context, resumeText, jobTitle, jobDescription string) (advisor.JobMatchJudgment, error)
}

// RecommendationCache holds ranked results between identical requests.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]job.MatchResult, bool)
	Set(ctx context.Context, key string, results []job.MatchResult)
}

// JobService owns posting CRUD and job-match ranking.
type JobService struct {
	repo          job.Repository
	candidateRepo candidate.Repository
	matcher       JobMatcher
	cache         RecommendationCache
}

func NewJobService(
	repo job.Repository,
	candidateRepo candidate.Repository,
	matcher JobMatcher,
	cache RecommendationCache,
) *JobService {
	return &JobService{
		repo:          repo,
		candidateRepo: candidateRepo,
		matcher:       matcher,
		cache:         cache,
	}
}

// CreatePosting creates a new posting. Postings are immutable after
// creation except for the active flag.
func (s *JobService) CreatePosting(ctx context.Context, req job.CreatePostingRequest) (*job.Posting, error) {
	if req.Title == "" || req.Description == "" || req.Company == "" {
		return nil, job.ErrInvalidPosting().
			WithDetail("required", "title, description, company")
	}
	if req.Type == "" {
		req.Type = kernel.EmploymentFullTime
	}
	if !req.Type.IsValid() {
		return nil, job.ErrInvalidType().WithDetail("type", string(req.Type))
	}

	posting := &job.Posting{
		ID:          kernel.NewJobID(uuid.NewString()),
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Company:     req.Company,
		Salary:      req.Salary,
		Location:    req.Location,
		Type:        req.Type,
		Experience:  req.Experience,
		PostedAt:    time.Now(),
		IsActive:    true,
	}
	if posting.Skills == nil {
		posting.Skills = []string{}
	}

	if err := s.repo.Create(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

// GetPosting retrieves one posting.
func (s *JobService) GetPosting(ctx context.Context, id kernel.JobID) (*job.Posting, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchPostings lists active postings matching the filter.
func (s *JobService) SearchPostings(ctx context.Context, req job.SearchPostingsRequest) ([]job.Posting, error) {
	if req.Type != "" && !req.Type.IsValid() {
		return nil, job.ErrInvalidType().WithDetail("type", string(req.Type))
	}
	return s.repo.Search(ctx, req)
}

// SetActive flips the posting's active flag.
func (s *JobService) SetActive(ctx context.Context, id kernel.JobID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Seed replaces all postings with the sample set.
func (s *JobService) Seed(ctx context.Context) ([]job.Posting, error) {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	postings := samplePostings()
	if err := s.repo.CreateBatch(ctx, postings); err != nil {
		return nil, err
	}

	logx.Infof("seeded %d sample jobs", len(postings))
	return postings, nil
}
