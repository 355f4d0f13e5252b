package analysis

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Analysis is one persisted resume judgment. Rows are append-only: a
// re-analysis inserts a new record, history keeps the old ones.
type Analysis struct {
	ID          kernel.AnalysisID  `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidateId"`

	ATSScore         int               `db:"ats_score" json:"atsScore"`
	Strengths        []string          `db:"strengths" json:"strengths"`
	Weaknesses       []string          `db:"weaknesses" json:"weaknesses"`
	MissingKeywords  []string          `db:"missing_keywords" json:"missingKeywords"`
	FormattingIssues []string          `db:"formatting_issues" json:"formattingIssues"`
	Suggestions      []string          `db:"suggestions" json:"suggestions"`
	ImprovedSections map[string]string `db:"improved_sections" json:"improvedSections"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// AnalysisJob tracks one queued analysis request through the worker.
type AnalysisJob struct {
	ID          kernel.AnalysisJobID `db:"id" json:"id"`
	CandidateID kernel.CandidateID   `db:"candidate_id" json:"candidateId"`
	AnalysisID  *kernel.AnalysisID   `db:"analysis_id" json:"analysisId,omitempty"`

	Status       JobStatus `db:"status" json:"status"`
	AttemptCount int       `db:"attempt_count" json:"attemptCount"`
	MaxAttempts  int       `db:"max_attempts" json:"maxAttempts"`
	LastError    string    `db:"last_error" json:"lastError,omitempty"`

	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	StartedAt   *time.Time `db:"started_at" json:"startedAt,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	FailedAt    *time.Time `db:"failed_at" json:"failedAt,omitempty"`
	NextRetryAt *time.Time `db:"next_retry_at" json:"nextRetryAt,omitempty"`
}

// CanRetry reports whether the job has attempts left.
func (j *AnalysisJob) CanRetry() bool {
	return j.AttemptCount < j.MaxAttempts
}
