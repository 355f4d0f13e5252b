package job

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Posting is a job posting. Immutable once created except for the
// active flag.
type Posting struct {
	ID          kernel.JobID          `db:"id" json:"id"`
	Title       string                `db:"title" json:"title"`
	Description string                `db:"description" json:"description"`
	Skills      []string              `db:"skills" json:"skills"`
	Company     string                `db:"company" json:"company"`
	Salary      string                `db:"salary" json:"salary,omitempty"`
	Location    string                `db:"location" json:"location,omitempty"`
	Type        kernel.EmploymentType `db:"type" json:"type"`
	Experience  string                `db:"experience" json:"experience,omitempty"`
	PostedAt    time.Time             `db:"posted_at" json:"posted_at"`
	IsActive    bool                  `db:"is_active" json:"is_active"`
}

// ShortDescription truncates the description for list views.
func (p *Posting) ShortDescription(max int) string {
	if len(p.Description) <= max {
		return p.Description
	}
	return p.Description[:max] + "..."
}
