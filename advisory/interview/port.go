package interview

import (
	"context"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Repository persists interview sessions.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]Session, error)
}
