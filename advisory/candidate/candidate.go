package candidate

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Profile is a candidate's extracted résumé profile. Text and skills
// are replaced wholesale on re-upload, never partially merged.
type Profile struct {
	ID         kernel.CandidateID `db:"id" json:"id"`
	Email      kernel.Email       `db:"email" json:"email"`
	Phone      kernel.Phone       `db:"phone" json:"phone,omitempty"`
	ResumeFile kernel.BucketURL   `db:"resume_file" json:"resume_file,omitempty"`
	ResumeText string             `db:"resume_text" json:"-"`
	Skills     []string           `db:"skills" json:"skills"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `db:"updated_at" json:"updated_at"`
}

// HasResume reports whether any résumé text was extracted.
func (p *Profile) HasResume() bool {
	return p.ResumeText != ""
}

// ReplaceResume swaps the stored résumé content wholesale.
func (p *Profile) ReplaceResume(fileKey kernel.BucketURL, text string, skills []string, phone kernel.Phone) {
	p.ResumeFile = fileKey
	p.ResumeText = text
	if skills == nil {
		skills = []string{}
	}
	p.Skills = skills
	if !phone.IsEmpty() {
		p.Phone = phone
	}
	p.UpdatedAt = time.Now()
}
