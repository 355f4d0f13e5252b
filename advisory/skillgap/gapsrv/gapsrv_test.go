package gapsrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/pkg/kernel"
)

type stubCandidateRepo struct {
	profile *candidate.Profile
}

func (s *stubCandidateRepo) Create(ctx context.Context, p *candidate.Profile) error { return nil }
func (s *stubCandidateRepo) Update(ctx context.Context, p *candidate.Profile) error { return nil }
func (s *stubCandidateRepo) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	if s.profile == nil {
		return nil, candidate.ErrCandidateNotFound()
	}
	return s.profile, nil
}
func (s *stubCandidateRepo) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Profile, error) {
	return nil, candidate.ErrCandidateNotFound()
}
func (s *stubCandidateRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[candidate.Profile], error) {
	return nil, nil
}

type stubJobRepo struct {
	posting *job.Posting
}

func (s *stubJobRepo) Create(ctx context.Context, p *job.Posting) error       { return nil }
func (s *stubJobRepo) CreateBatch(ctx context.Context, p []job.Posting) error { return nil }
func (s *stubJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Posting, error) {
	if s.posting == nil {
		return nil, job.ErrJobNotFound()
	}
	return s.posting, nil
}
func (s *stubJobRepo) Search(ctx context.Context, req job.SearchPostingsRequest) ([]job.Posting, error) {
	return nil, nil
}
func (s *stubJobRepo) ListActive(ctx context.Context, limit int) ([]job.Posting, error) {
	return nil, nil
}
func (s *stubJobRepo) SetActive(ctx context.Context, id kernel.JobID, active bool) error { return nil }
func (s *stubJobRepo) DeleteAll(ctx context.Context) error                               { return nil }

type stubReportRepo struct {
	created *skillgap.Report
}

func (s *stubReportRepo) Create(ctx context.Context, r *skillgap.Report) error {
	s.created = r
	return nil
}
func (s *stubReportRepo) GetLatest(ctx context.Context, c kernel.CandidateID, j kernel.JobID) (*skillgap.Report, error) {
	return nil, skillgap.ErrReportNotFound()
}
func (s *stubReportRepo) ListByCandidate(ctx context.Context, c kernel.CandidateID, limit int) ([]skillgap.Report, error) {
	return nil, nil
}

type stubGapAdvisor struct {
	judgment advisor.SkillGapJudgment
}

func (s *stubGapAdvisor) AnalyzeSkillGap(ctx context.Context, current, required []string, desc string) advisor.SkillGapJudgment {
	return s.judgment
}

func newFixtures() (*stubCandidateRepo, *stubJobRepo) {
	candidates := &stubCandidateRepo{profile: &candidate.Profile{
		ID:         "cand-1",
		Email:      "jane@example.com",
		ResumeText: "resume",
		Skills:     []string{"Python", "SQL"},
	}}
	jobs := &stubJobRepo{posting: &job.Posting{
		ID:          "job-1",
		Title:       "Data Engineer",
		Description: "pipelines",
		Skills:      []string{"Python", "Docker", "SQL", "AWS"},
		IsActive:    true,
	}}
	return candidates, jobs
}

func TestAnalyzePrefersAIPercentage(t *testing.T) {
	candidates, jobs := newFixtures()
	reports := &stubReportRepo{}
	ai := 88
	svc := NewGapService(reports, candidates, jobs, &stubGapAdvisor{
		judgment: advisor.SkillGapJudgment{MatchPercentage: &ai},
	})

	report, err := svc.Analyze(context.Background(), "cand-1", "job-1")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if report.MatchPercentage != 88 {
		t.Errorf("MatchPercentage = %d, want the AI value 88", report.MatchPercentage)
	}
	if report.LexicalMatchPercentage != 50 {
		t.Errorf("LexicalMatchPercentage = %d, want 50 kept for audit", report.LexicalMatchPercentage)
	}
	if reports.created == nil {
		t.Fatal("report was not persisted")
	}
}

func TestAnalyzeFallsBackToLexicalPercentage(t *testing.T) {
	candidates, jobs := newFixtures()
	svc := NewGapService(&stubReportRepo{}, candidates, jobs, &stubGapAdvisor{
		judgment: advisor.SkillGapFallback(),
	})

	report, err := svc.Analyze(context.Background(), "cand-1", "job-1")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if report.MatchPercentage != 50 {
		t.Errorf("MatchPercentage = %d, want the deterministic 50", report.MatchPercentage)
	}
	if len(report.MissingSkills) != 2 {
		t.Errorf("MissingSkills = %v, want Docker and AWS", report.MissingSkills)
	}
}

func TestAnalyzeClampsAIPercentage(t *testing.T) {
	candidates, jobs := newFixtures()
	ai := 250
	svc := NewGapService(&stubReportRepo{}, candidates, jobs, &stubGapAdvisor{
		judgment: advisor.SkillGapJudgment{MatchPercentage: &ai},
	})

	report, err := svc.Analyze(context.Background(), "cand-1", "job-1")
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if report.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want clamped to 100", report.MatchPercentage)
	}
}

func TestAnalyzeMissingCandidate(t *testing.T) {
	_, jobs := newFixtures()
	svc := NewGapService(&stubReportRepo{}, &stubCandidateRepo{}, jobs, &stubGapAdvisor{})

	if _, err := svc.Analyze(context.Background(), "nope", "job-1"); err == nil {
		t.Fatal("expected an error for an unknown candidate")
	}
}

func TestAnalyzeEmptyIDs(t *testing.T) {
	candidates, jobs := newFixtures()
	svc := NewGapService(&stubReportRepo{}, candidates, jobs, &stubGapAdvisor{})

	if _, err := svc.Analyze(context.Background(), "", "job-1"); err == nil {
		t.Fatal("expected an error for an empty candidate id")
	}
	if _, err := svc.Analyze(context.Background(), "cand-1", ""); err == nil {
		t.Fatal("expected an error for an empty job id")
	}
}
