package candidateapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateauth"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidatesrv"
	"github.com/Abraxas-365/ascent/advisory/interview"
	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/internal/pdf"
	"github.com/Abraxas-365/ascent/internal/profile"
	"github.com/Abraxas-365/ascent/internal/skills"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

type memCandidateRepo struct {
	byID map[kernel.CandidateID]*candidate.Profile
}

func newMemCandidateRepo() *memCandidateRepo {
	return &memCandidateRepo{byID: map[kernel.CandidateID]*candidate.Profile{}}
}

func (r *memCandidateRepo) Create(ctx context.Context, p *candidate.Profile) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memCandidateRepo) Update(ctx context.Context, p *candidate.Profile) error {
	r.byID[p.ID] = p
	return nil
}
func (r *memCandidateRepo) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound()
	}
	return p, nil
}
func (r *memCandidateRepo) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Profile, error) {
	for _, p := range r.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, candidate.ErrCandidateNotFound()
}
func (r *memCandidateRepo) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Profile], error) {
	return &kernel.Paginated[candidate.Profile]{}, nil
}

type memFileSystem struct {
	files map[string][]byte
}

func newMemFileSystem() *memFileSystem {
	return &memFileSystem{files: map[string][]byte{}}
}

func (f *memFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return f.files[path], nil
}
func (f *memFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.files[path])), nil
}
func (f *memFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	f.files[path] = data
	return nil
}
func (f *memFileSystem) WriteFileStream(ctx context.Context, path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.files[path] = data
	return nil
}
func (f *memFileSystem) DeleteFile(ctx context.Context, path string) error {
	delete(f.files, path)
	return nil
}
func (f *memFileSystem) Join(parts ...string) string { return strings.Join(parts, "/") }

type emptyAnalysisHistory struct{}

func (emptyAnalysisHistory) History(ctx context.Context, candidateID kernel.CandidateID) ([]analysis.Analysis, error) {
	return nil, nil
}

type emptyGapHistory struct{}

func (emptyGapHistory) History(ctx context.Context, candidateID kernel.CandidateID) ([]skillgap.Report, error) {
	return nil, nil
}

type emptyInterviewHistory struct{}

func (emptyInterviewHistory) History(ctx context.Context, candidateID kernel.CandidateID) ([]interview.Session, error) {
	return nil, nil
}

func newTestApp() (*fiber.App, *memCandidateRepo) {
	repo := newMemCandidateRepo()
	parser := profile.NewParser(pdf.NewTextExtractor(), skills.NewExtractor(nil))
	tokens := candidateauth.NewTokenService("test-secret", time.Hour, "test")
	service := candidatesrv.NewCandidateService(repo, parser, newMemFileSystem(), tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := errx.AsError(err); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	handlers := NewHandlers(service, emptyAnalysisHistory{}, emptyGapHistory{}, emptyInterviewHistory{})
	RegisterRoutes(app, handlers, candidateauth.Middleware(tokens))
	return app, repo
}

func uploadResume(t *testing.T, app *fiber.App, email string) candidate.UploadResumeResponse {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("not a real document"))
	writer.WriteField("email", email)
	writer.Close()

	req := httptest.NewRequest("POST", "/api/candidates/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var out candidate.UploadResumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestUploadResumeNormalizesEmail(t *testing.T) {
	app, repo := newTestApp()

	out := uploadResume(t, app, "Jane.Doe@Example.COM")

	if out.Candidate.Email != "jane.doe@example.com" {
		t.Errorf("email = %q, want lower-cased", out.Candidate.Email)
	}
	if out.Token == "" {
		t.Error("expected a candidate token")
	}
	if _, ok := repo.byID[out.Candidate.ID]; !ok {
		t.Error("profile was not stored")
	}
}

func TestUploadResumeRequiresFile(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/candidates/upload", strings.NewReader(""))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 without a file", resp.StatusCode)
	}
}

func TestGetProfileWithToken(t *testing.T) {
	app, _ := newTestApp()

	out := uploadResume(t, app, "jane@example.com")

	req := httptest.NewRequest("GET", "/api/candidates/"+out.Candidate.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got candidate.ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != out.Candidate.ID {
		t.Errorf("profile ID = %q, want %q", got.ID, out.Candidate.ID)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("profile email = %q, want the upload email", got.Email)
	}
}

func TestGetProfileRejectsForeignToken(t *testing.T) {
	app, _ := newTestApp()

	first := uploadResume(t, app, "jane@example.com")
	second := uploadResume(t, app, "john@example.com")

	req := httptest.NewRequest("GET", "/api/candidates/"+first.Candidate.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+second.Token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for a mismatched token", resp.StatusCode)
	}
}
