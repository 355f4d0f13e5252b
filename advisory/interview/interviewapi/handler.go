package interviewapi

import (
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/advisory/interview"
	"github.com/Abraxas-365/ascent/advisory/interview/interviewsrv"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for mock interview operations
type Handlers struct {
	service *interviewsrv.InterviewService
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GenerateQuestions produces interview questions for a role
// POST /api/interviews/questions
func (h *Handlers) GenerateQuestions(c *fiber.Ctx) error {
	var req interview.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrJobRoleMissing().WithDetail("parse_error", err.Error())
	}

	questions, err := h.service.GenerateQuestions(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"jobRole":   req.JobRole,
		"questions": questions,
	})
}

// EvaluateAnswer scores a single answer
// POST /api/interviews/evaluate
func (h *Handlers) EvaluateAnswer(c *fiber.Ctx) error {
	var req interview.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidAnswer().WithDetail("parse_error", err.Error())
	}

	judgment, err := h.service.EvaluateAnswer(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(judgment)
}

// SaveSession stores a completed mock interview
// POST /api/interviews/sessions
func (h *Handlers) SaveSession(c *fiber.Ctx) error {
	var req interview.SaveSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidSession().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.SaveSession(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session.ToSaveResponse())
}

// History lists the candidate's most recent sessions
// GET /api/interviews/history/:candidateId
func (h *Handlers) History(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("candidateId"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("candidateId", "missing or empty")
	}

	sessions, err := h.service.History(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(sessions)
}

// RegisterRoutes registers all interview routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/interviews")

	api.Post("/questions", handlers.GenerateQuestions)
	api.Post("/evaluate", handlers.EvaluateAnswer)
	api.Post("/sessions", handlers.SaveSession)
	api.Get("/history/:candidateId", handlers.History)
}
