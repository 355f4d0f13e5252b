package jobapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/advisory/job/jobsrv"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type stubPostingRepo struct {
	lastSearch job.SearchPostingsRequest
	postings   []job.Posting
}

func (r *stubPostingRepo) Create(ctx context.Context, p *job.Posting) error       { return nil }
func (r *stubPostingRepo) CreateBatch(ctx context.Context, p []job.Posting) error { return nil }
func (r *stubPostingRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Posting, error) {
	return nil, job.ErrJobNotFound()
}
func (r *stubPostingRepo) Search(ctx context.Context, req job.SearchPostingsRequest) ([]job.Posting, error) {
	r.lastSearch = req
	return r.postings, nil
}
func (r *stubPostingRepo) ListActive(ctx context.Context, limit int) ([]job.Posting, error) {
	return nil, nil
}
func (r *stubPostingRepo) SetActive(ctx context.Context, id kernel.JobID, active bool) error {
	return nil
}
func (r *stubPostingRepo) DeleteAll(ctx context.Context) error { return nil }

func newTestApp(repo *stubPostingRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := errx.AsError(err); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	RegisterRoutes(app, NewHandlers(jobsrv.NewJobService(repo, nil, nil, nil)))
	return app
}

func TestSearchPostingsTypeFilter(t *testing.T) {
	repo := &stubPostingRepo{postings: []job.Posting{{ID: "job-1", Title: "Backend Engineer"}}}
	app := newTestApp(repo)

	req := httptest.NewRequest("GET", "/api/jobs?type=Full-time&search=go", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if repo.lastSearch.Type != kernel.EmploymentFullTime {
		t.Errorf("search type = %q, want %q", repo.lastSearch.Type, kernel.EmploymentFullTime)
	}
	if repo.lastSearch.Search != "go" {
		t.Errorf("search text = %q, want %q", repo.lastSearch.Search, "go")
	}

	var postings []job.Posting
	if err := json.NewDecoder(resp.Body).Decode(&postings); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(postings) != 1 || postings[0].ID != "job-1" {
		t.Errorf("postings = %+v, want the stubbed posting", postings)
	}
}

func TestSearchPostingsRejectsUnknownType(t *testing.T) {
	app := newTestApp(&stubPostingRepo{})

	req := httptest.NewRequest("GET", "/api/jobs?type=Freelance", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown employment type", resp.StatusCode)
	}
}

func TestSearchPostingsNoFilters(t *testing.T) {
	repo := &stubPostingRepo{}
	app := newTestApp(repo)

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if repo.lastSearch.Type != "" {
		t.Errorf("search type = %q, want empty", repo.lastSearch.Type)
	}
}
