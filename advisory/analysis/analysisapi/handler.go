package analysisapi

import (
	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/analysis/analysissrv"
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for resume analysis operations
type Handlers struct {
	service *analysissrv.AnalysisService
}

// NewHandlers creates a new analysis handlers instance
func NewHandlers(service *analysissrv.AnalysisService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Analyze runs a synchronous resume analysis
// POST /api/analyses
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	var req analysis.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.AnalyzeResume(c.Context(), req.CandidateID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// AnalyzeAsync queues an analysis and returns the job immediately
// POST /api/analyses/async
func (h *Handlers) AnalyzeAsync(c *fiber.Ctx) error {
	var req analysis.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("parse_error", err.Error())
	}

	job, err := h.service.QueueAnalysis(c.Context(), req.CandidateID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(job.ToStatusResponse())
}

// GetJobStatus reports the state of a queued analysis
// GET /api/analyses/jobs/:id
func (h *Handlers) GetJobStatus(c *fiber.Ctx) error {
	jobID := kernel.AnalysisJobID(c.Params("id"))
	if jobID.IsEmpty() {
		return analysis.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	job, err := h.service.GetJobStatus(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(job.ToStatusResponse())
}

// History lists the candidate's most recent analyses
// GET /api/analyses/history/:candidateId
func (h *Handlers) History(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("candidateId", "missing or empty")
	}

	analyses, err := h.service.History(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(analyses)
}

// RegisterRoutes registers all analysis routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/analyses")

	api.Post("/", handlers.Analyze)
	api.Post("/async", handlers.AnalyzeAsync)
	api.Get("/jobs/:id", handlers.GetJobStatus)
	api.Get("/history/:candidateId", handlers.History)
}
