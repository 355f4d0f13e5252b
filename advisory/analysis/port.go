package analysis

import (
	"context"
	"time"

	"github.com/Abraxas-365/ascent/pkg/kernel"
)

// Repository persists resume analyses.
type Repository interface {
	Create(ctx context.Context, a *Analysis) error
	GetByID(ctx context.Context, id kernel.AnalysisID) (*Analysis, error)
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]Analysis, error)
}

// JobRepository persists async analysis jobs.
type JobRepository interface {
	Create(ctx context.Context, job *AnalysisJob) error
	GetByID(ctx context.Context, id kernel.AnalysisJobID) (*AnalysisJob, error)
	MarkAsProcessing(ctx context.Context, id kernel.AnalysisJobID) error
	MarkAsCompleted(ctx context.Context, id kernel.AnalysisJobID, analysisID kernel.AnalysisID) error
	MarkAsFailed(ctx context.Context, id kernel.AnalysisJobID, errorMsg string) error
	MarkForRetry(ctx context.Context, id kernel.AnalysisJobID, errorMsg string, retryAt time.Time) error
}

// JobQueue is the transport between the API and the worker.
type JobQueue interface {
	Enqueue(ctx context.Context, jobID kernel.AnalysisJobID, payload any) error
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)
	EnqueueDelayed(ctx context.Context, jobID kernel.AnalysisJobID, payload any, delay time.Duration) error
	MoveDelayedToReady(ctx context.Context) (int, error)
}
