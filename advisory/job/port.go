package job

import (
	"context"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

type Repository interface {
	// Create creates a new posting
	Create(ctx context.Context, posting *Posting) error

	// CreateBatch inserts several postings at once (seeding)
	CreateBatch(ctx context.Context, postings []Posting) error

	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Posting, error)

	// Search retrieves active postings matching the filter
	Search(ctx context.Context, req SearchPostingsRequest) ([]Posting, error)

	// ListActive retrieves active postings up to limit, newest first
	ListActive(ctx context.Context, limit int) ([]Posting, error)

	// SetActive flips the active flag, the only mutable field
	SetActive(ctx context.Context, id kernel.JobID, active bool) error

	// DeleteAll removes every posting (seeding support)
	DeleteAll(ctx context.Context) error
}
