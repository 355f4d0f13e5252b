package interview

import (
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInvalidSession = ErrRegistry.Register("INVALID_SESSION", errx.TypeValidation, http.StatusBadRequest, "Missing required fields")
	CodeJobRoleMissing = ErrRegistry.Register("JOB_ROLE_MISSING", errx.TypeValidation, http.StatusBadRequest, "Job role is required")
	CodeInvalidAnswer  = ErrRegistry.Register("INVALID_ANSWER", errx.TypeValidation, http.StatusBadRequest, "Question, answer, and job role are required")
	CodePersistFailed  = ErrRegistry.Register("PERSIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store interview session")
)

// Helper functions
func ErrInvalidSession() *errx.Error {
	return ErrRegistry.New(CodeInvalidSession)
}

func ErrJobRoleMissing() *errx.Error {
	return ErrRegistry.New(CodeJobRoleMissing)
}

func ErrInvalidAnswer() *errx.Error {
	return ErrRegistry.New(CodeInvalidAnswer)
}

func ErrPersistFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodePersistFailed, cause)
}
