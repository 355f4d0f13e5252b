package analysis

import (
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// AnalyzeRequest - synchronous or queued analysis request
type AnalyzeRequest struct {
	CandidateID kernel.CandidateID `json:"candidateId"`
}

// QueuePayload is what travels through the Redis queue.
type QueuePayload struct {
	JobID       kernel.AnalysisJobID `json:"jobId"`
	CandidateID kernel.CandidateID   `json:"candidateId"`
}

// JobStatusResponse - status of a queued analysis
type JobStatusResponse struct {
	JobID       kernel.AnalysisJobID `json:"jobId"`
	Status      JobStatus            `json:"status"`
	AnalysisID  *kernel.AnalysisID   `json:"analysisId,omitempty"`
	Error       string               `json:"error,omitempty"`
	Attempts    int                  `json:"attempts"`
	NextRetryAt *time.Time           `json:"nextRetryAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
}

func (j *AnalysisJob) ToStatusResponse() JobStatusResponse {
	resp := JobStatusResponse{
		JobID:       j.ID,
		Status:      j.Status,
		AnalysisID:  j.AnalysisID,
		Attempts:    j.AttemptCount,
		NextRetryAt: j.NextRetryAt,
		CreatedAt:   j.CreatedAt,
		CompletedAt: j.CompletedAt,
	}
	if j.Status == JobStatusFailed {
		resp.Error = j.LastError
	}
	return resp
}
