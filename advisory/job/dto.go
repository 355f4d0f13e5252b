package job

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// CreatePostingRequest - DTO for creating a posting
type CreatePostingRequest struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description" validate:"required"`
	Skills      []string              `json:"skills" validate:"required"`
	Company     string                `json:"company" validate:"required"`
	Salary      string                `json:"salary,omitempty"`
	Location    string                `json:"location,omitempty"`
	Type        kernel.EmploymentType `json:"type,omitempty"`
	Experience  string                `json:"experience,omitempty"`
}

// SearchPostingsRequest - DTO for filtering the job list
type SearchPostingsRequest struct {
	Type   kernel.EmploymentType `json:"type,omitempty"`
	Search string                `json:"search,omitempty"`
}

// RecommendRequest - DTO for the recommendation operation
type RecommendRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId" validate:"required"`
	TopN        int                `json:"topN,omitempty"`
}

// PostingSummary - truncated posting view embedded in match results
type PostingSummary struct {
	ID          kernel.JobID          `json:"id"`
	Title       string                `json:"title"`
	Company     string                `json:"company"`
	Description string                `json:"description"`
	Skills      []string              `json:"skills"`
	Salary      string                `json:"salary,omitempty"`
	Location    string                `json:"location,omitempty"`
	Type        kernel.EmploymentType `json:"type"`
	PostedAt    time.Time             `json:"posted_at"`
}

// MatchResult is transient: it exists only for the duration of a
// recommendation request and is never persisted.
type MatchResult struct {
	Job             PostingSummary `json:"job"`
	MatchPercentage int            `json:"matchPercentage"`
	Reasons         []string       `json:"reasons"`
	Concerns        []string       `json:"concerns"`
	InterviewTips   []string       `json:"interviewTips"`
}

// ToSummary maps a posting to its truncated list view.
func (p *Posting) ToSummary() PostingSummary {
	return PostingSummary{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Description: p.ShortDescription(200),
		Skills:      p.Skills,
		Salary:      p.Salary,
		Location:    p.Location,
		Type:        p.Type,
		PostedAt:    p.PostedAt,
	}
}
