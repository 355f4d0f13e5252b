package candidate

import (
	"net/http"

	"github.com/Abraxas-365/ascent/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeInvalidEmail      = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email address")
	CodeNoFileUploaded    = ErrRegistry.Register("NO_FILE", errx.TypeValidation, http.StatusBadRequest, "No file uploaded")
	CodeResumeMissing     = ErrRegistry.Register("RESUME_MISSING", errx.TypeNotFound, http.StatusNotFound, "Resume not found. Please upload a resume first.")
	CodeFileStoreFailed   = ErrRegistry.Register("FILE_STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store uploaded file")
	CodeUnauthorized      = ErrRegistry.Register("UNAUTHORIZED", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or missing candidate token")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrNoFileUploaded() *errx.Error {
	return ErrRegistry.New(CodeNoFileUploaded)
}

func ErrResumeMissing() *errx.Error {
	return ErrRegistry.New(CodeResumeMissing)
}

func ErrFileStoreFailed() *errx.Error {
	return ErrRegistry.New(CodeFileStoreFailed)
}

func ErrUnauthorized() *errx.Error {
	return ErrRegistry.New(CodeUnauthorized)
}
