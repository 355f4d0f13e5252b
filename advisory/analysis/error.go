package analysis

import (
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ANALYSIS")

// Error codes
var (
	CodeAnalysisNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Analysis not found")
	CodeJobNotFound      = ErrRegistry.Register("JOB_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Analysis job not found")
	CodePersistFailed    = ErrRegistry.Register("PERSIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store analysis")
	CodeQueueFailed      = ErrRegistry.Register("QUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to queue analysis")
)

// Helper functions
func ErrAnalysisNotFound() *errx.Error {
	return ErrRegistry.New(CodeAnalysisNotFound)
}

func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrPersistFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodePersistFailed, cause)
}

func ErrQueueFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeQueueFailed, cause)
}
