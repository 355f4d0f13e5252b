package candidate

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// UploadResumeRequest - DTO for the résumé upload operation
type UploadResumeRequest struct {
	Email    kernel.Email `json:"email"`
	FileName string       `json:"file_name"`
	Data     []byte       `json:"-"`
}

// ProfileResponse - DTO for returning candidate profile data
type ProfileResponse struct {
	ID        kernel.CandidateID `json:"id"`
	Email     kernel.Email       `json:"email"`
	Phone     kernel.Phone       `json:"phone,omitempty"`
	Skills    []string           `json:"skills"`
	HasResume bool               `json:"has_resume"`
	CreatedAt time.Time          `json:"created_at"`
}

// UploadResumeResponse - upload result plus the candidate access token
type UploadResumeResponse struct {
	Candidate ProfileResponse `json:"candidate"`
	Token     string          `json:"token"`
}

// ToResponse maps the entity to its public shape.
func (p *Profile) ToResponse() ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Phone:     p.Phone,
		Skills:    skills,
		HasResume: p.HasResume(),
		CreatedAt: p.CreatedAt,
	}
}
