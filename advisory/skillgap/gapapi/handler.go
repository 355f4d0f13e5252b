package gapapi

import (
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/advisory/skillgap/gapsrv"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for skill gap operations
type Handlers struct {
	service *gapsrv.GapService
}

// NewHandlers creates a new skill gap handlers instance
func NewHandlers(service *gapsrv.GapService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Analyze runs a skill gap analysis for a candidate/job pair
// POST /api/skill-gaps
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	var req skillgap.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return skillgap.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if !req.Validate() {
		return skillgap.ErrInvalidRequest()
	}

	report, err := h.service.Analyze(c.Context(), req.CandidateID, req.JobID)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// History lists the candidate's most recent reports
// GET /api/skill-gaps/history/:candidateId
func (h *Handlers) History(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("candidateId", "missing or empty")
	}

	reports, err := h.service.History(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(reports)
}

// GetReport returns the latest report for a candidate/job pair
// GET /api/skill-gaps/:candidateId/:jobId
func (h *Handlers) GetReport(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	jobID := kernel.JobID(c.Params("jobId"))
	if candidateID.IsEmpty() || jobID.IsEmpty() {
		return skillgap.ErrReportNotFound().WithDetail("params", "candidateId and jobId are required")
	}

	report, err := h.service.GetReport(c.Context(), candidateID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// RegisterRoutes registers all skill gap routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/skill-gaps")

	api.Post("/", handlers.Analyze)
	api.Get("/history/:candidateId", handlers.History)
	api.Get("/:candidateId/:jobId", handlers.GetReport)
}
