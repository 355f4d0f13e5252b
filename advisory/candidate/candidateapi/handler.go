package candidateapi

import (
	"context"
	"io"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateauth"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidatesrv"
	"github.com/Abraxas-365/ascent/advisory/interview"
	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// AnalysisHistory lists a candidate's past resume analyses.
type AnalysisHistory interface {
	History(ctx context.Context, candidateID kernel.CandidateID) ([]analysis.Analysis, error)
}

// GapHistory lists a candidate's past skill gap reports.
type GapHistory interface {
	History(ctx context.Context, candidateID kernel.CandidateID) ([]skillgap.Report, error)
}

// InterviewHistory lists a candidate's past interview sessions.
type InterviewHistory interface {
	History(ctx context.Context, candidateID kernel.CandidateID) ([]interview.Session, error)
}

// CombinedHistoryResponse aggregates everything the platform knows
// about a candidate's past activity.
type CombinedHistoryResponse struct {
	Analyses   []analysis.Analysis `json:"analyses"`
	SkillGaps  []skillgap.Report   `json:"skillGaps"`
	Interviews []interview.Session `json:"interviews"`
}

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service    *candidatesrv.CandidateService
	analyses   AnalysisHistory
	gaps       GapHistory
	interviews InterviewHistory
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService, analyses AnalysisHistory, gaps GapHistory, interviews InterviewHistory) *Handlers {
	return &Handlers{
		service:    service,
		analyses:   analyses,
		gaps:       gaps,
		interviews: interviews,
	}
}

// UploadResume ingests a resume and creates or refreshes the profile
// POST /api/candidates/upload
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return candidate.ErrNoFileUploaded().WithDetail("parse_error", err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return candidate.ErrNoFileUploaded().WithDetail("open_error", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return candidate.ErrNoFileUploaded().WithDetail("read_error", err.Error())
	}

	req := candidate.UploadResumeRequest{
		Email:    kernel.NewEmail(c.FormValue("email")),
		FileName: fileHeader.Filename,
		Data:     data,
	}

	resp, err := h.service.UploadResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProfile retrieves a candidate profile
// GET /api/candidates/:id
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if tokenID, ok := candidateauth.GetCandidateID(c); !ok || tokenID != candidateID {
		return candidate.ErrUnauthorized().WithDetail("id", "token does not match candidate")
	}

	profile, err := h.service.GetProfile(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// GetHistory returns analyses, skill gaps, and interview sessions
// GET /api/candidates/:id/history
func (h *Handlers) GetHistory(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if tokenID, ok := candidateauth.GetCandidateID(c); !ok || tokenID != candidateID {
		return candidate.ErrUnauthorized().WithDetail("id", "token does not match candidate")
	}

	analyses, err := h.analyses.History(c.Context(), candidateID)
	if err != nil {
		return err
	}
	gaps, err := h.gaps.History(c.Context(), candidateID)
	if err != nil {
		return err
	}
	interviews, err := h.interviews.History(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(CombinedHistoryResponse{
		Analyses:   analyses,
		SkillGaps:  gaps,
		Interviews: interviews,
	})
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/candidates")

	api.Post("/upload", handlers.UploadResume)
	api.Get("/:id", authMiddleware, handlers.GetProfile)
	api.Get("/:id/history", authMiddleware, handlers.GetHistory)
}
