package skillgap

import (
	"math"
	"strings"
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Report is an immutable skill gap snapshot. Re-running the analysis
// for the same candidate and job inserts a new row.
type Report struct {
	ID          kernel.ReportID    `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidateId"`
	JobID       kernel.JobID       `db:"job_id" json:"jobId"`

	CurrentSkills  []string `db:"current_skills" json:"currentSkills"`
	RequiredSkills []string `db:"required_skills" json:"requiredSkills"`
	MissingSkills  []string `db:"missing_skills" json:"missingSkills"`

	// MatchPercentage is the reported value; LexicalMatchPercentage
	// keeps the deterministic computation for auditing when the AI
	// value was preferred.
	MatchPercentage        int `db:"match_percentage" json:"matchPercentage"`
	LexicalMatchPercentage int `db:"lexical_match_percentage" json:"lexicalMatchPercentage"`

	Recommendations []Recommendation `db:"recommendations" json:"recommendations"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Recommendation is one suggested learning step for a missing skill.
type Recommendation struct {
	Skill         string          `json:"skill"`
	Resources     []string        `json:"resources"`
	EstimatedTime string          `json:"estimatedTime"`
	Priority      kernel.Priority `json:"priority"`
}

// LexicalGap computes the deterministic half of the analysis: which
// required skills the candidate is missing, and the match percentage
// round(100 * |current ∩ required| / |required|). Comparison is
// case-insensitive; missing skills keep the posting's casing and
// order. An empty required list yields 0, not a division error.
func LexicalGap(current, required []string) (missing []string, percentage int) {
	missing = make([]string, 0)
	if len(required) == 0 {
		return missing, 0
	}

	have := make(map[string]struct{}, len(current))
	for _, skill := range current {
		have[strings.ToLower(skill)] = struct{}{}
	}

	matched := 0
	for _, skill := range required {
		if _, ok := have[strings.ToLower(skill)]; ok {
			matched++
		} else {
			missing = append(missing, skill)
		}
	}

	percentage = int(math.Round(100 * float64(matched) / float64(len(required))))
	return missing, percentage
}
