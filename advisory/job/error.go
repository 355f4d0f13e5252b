package job

import (
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidPosting = ErrRegistry.Register("INVALID_POSTING", errx.TypeValidation, http.StatusBadRequest, "Invalid job posting data")
	CodeInvalidType    = ErrRegistry.Register("INVALID_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid employment type")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidPosting() *errx.Error {
	return ErrRegistry.New(CodeInvalidPosting)
}

func ErrInvalidType() *errx.Error {
	return ErrRegistry.New(CodeInvalidType)
}
