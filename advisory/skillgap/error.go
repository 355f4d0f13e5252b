package skillgap

import (
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SKILLGAP")

// Error codes
var (
	CodeReportNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Skill gap report not found")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Candidate ID and job ID are required")
	CodePersistFailed  = ErrRegistry.Register("PERSIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store skill gap report")
)

// Helper functions
func ErrReportNotFound() *errx.Error {
	return ErrRegistry.New(CodeReportNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrPersistFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodePersistFailed, cause)
}
