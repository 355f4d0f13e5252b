package jobapi

import (
	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/advisory/job/jobsrv"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job posting operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SearchPostings lists postings with optional type and text filters
// GET /api/jobs
func (h *Handlers) SearchPostings(c *fiber.Ctx) error {
	req := job.SearchPostingsRequest{
		Type:   kernel.EmploymentType(c.Query("type")),
		Search: c.Query("search"),
	}

	postings, err := h.service.SearchPostings(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(postings)
}

// GetPosting retrieves a posting by ID
// GET /api/jobs/:id
func (h *Handlers) GetPosting(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	posting, err := h.service.GetPosting(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(posting)
}

// CreatePosting creates a new posting
// POST /api/jobs
func (h *Handlers) CreatePosting(c *fiber.Ctx) error {
	var req job.CreatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidPosting().WithDetail("parse_error", err.Error())
	}

	posting, err := h.service.CreatePosting(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(posting)
}

// SetActive flips the active flag on a posting
// PATCH /api/jobs/:id/active
func (h *Handlers) SetActive(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidPosting().WithDetail("parse_error", err.Error())
	}

	if err := h.service.SetActive(c.Context(), jobID, req.IsActive); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":       jobID,
		"isActive": req.IsActive,
	})
}

// Seed replaces all postings with the sample set
// POST /api/jobs/seed
func (h *Handlers) Seed(c *fiber.Ctx) error {
	postings, err := h.service.Seed(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Jobs seeded successfully",
		"count":   len(postings),
	})
}

// Recommend ranks active postings against the candidate's resume
// POST /api/jobs/recommendations
func (h *Handlers) Recommend(c *fiber.Ctx) error {
	var req job.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidPosting().WithDetail("parse_error", err.Error())
	}

	results, err := h.service.Recommend(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(results)
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.SearchPostings)
	api.Post("/", handlers.CreatePosting)
	api.Post("/seed", handlers.Seed)
	api.Post("/recommendations", handlers.Recommend)
	api.Get("/:id", handlers.GetPosting)
	api.Patch("/:id/active", handlers.SetActive)
}
