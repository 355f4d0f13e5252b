package skillgap

import (
	"context"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Repository persists skill gap reports.
type Repository interface {
	Create(ctx context.Context, report *Report) error
	GetLatest(ctx context.Context, candidateID kernel.CandidateID, jobID kernel.JobID) (*Report, error)
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]Report, error)
}
