package candidate

import (
	"context"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

type Repository interface {
	// Create creates a new candidate profile
	Create(ctx context.Context, profile *Profile) error

	// Update replaces an existing profile's stored fields
	Update(ctx context.Context, profile *Profile) error

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Profile, error)

	// GetByEmail retrieves a profile by normalized email
	GetByEmail(ctx context.Context, email kernel.Email) (*Profile, error)

	// List retrieves profiles with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Profile], error)
}
