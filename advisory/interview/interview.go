package interview

import (
	"fmt"
	"math"
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// SessionQuestion is one asked question with the candidate's answer
// and its per-question evaluation.
type SessionQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback,omitempty"`
}

// Session is a completed mock interview. It is fully materialized at
// save time from the question list the client submits; the server
// keeps no in-progress state.
type Session struct {
	ID          kernel.SessionID   `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidateId"`
	JobID       *kernel.JobID      `db:"job_id" json:"jobId,omitempty"`
	JobRole     string             `db:"job_role" json:"jobRole"`

	Questions    []SessionQuestion `db:"questions" json:"questions"`
	OverallScore int               `db:"overall_score" json:"overallScore"`
	Strengths    []string          `db:"strengths" json:"strengths"`
	Improvements []string          `db:"improvements" json:"improvements"`
	Feedback     string            `db:"feedback" json:"feedback"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Aggregate derives the session summary from its question list: the
// overall score is round(10 * mean of per-question scores) clamped to
// 0..100 (0 for an empty list), each answered question contributes a
// strength at score 7 and above or an improvement below, and the
// summary feedback flips at 70.
func (s *Session) Aggregate() {
	s.Strengths = make([]string, 0)
	s.Improvements = make([]string, 0)

	if len(s.Questions) == 0 {
		s.OverallScore = 0
		s.Feedback = "Overall performance: Needs improvement"
		return
	}

	sum := 0
	for _, q := range s.Questions {
		sum += kernel.ClampInt(q.Score, 0, 10)

		if q.Feedback == "" {
			continue
		}
		if q.Score >= 7 {
			s.Strengths = append(s.Strengths, fmt.Sprintf("Strong answer for: %s...", excerpt(q.Question, 50)))
		} else {
			s.Improvements = append(s.Improvements, fmt.Sprintf("Improve: %s...", excerpt(q.Question, 50)))
		}
	}

	mean := float64(sum) / float64(len(s.Questions)) * 10
	s.OverallScore = kernel.ClampInt(int(math.Round(mean)), 0, 100)

	verdict := "Needs improvement"
	if mean >= 70 {
		verdict = "Good"
	}
	s.Feedback = "Overall performance: " + verdict
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
