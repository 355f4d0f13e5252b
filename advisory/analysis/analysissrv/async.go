package analysissrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/google/uuid"
)

const (
	maxAttempts = 3
	retryDelay  = 30 * time.Second
)

// QueueAnalysis records an analysis job and hands it to the worker
// queue. Candidate and resume checks run up front so the caller gets
// an immediate 4xx instead of a failed job.
func (s *AnalysisService) QueueAnalysis(ctx context.Context, candidateID kernel.CandidateID) (*analysis.AnalysisJob, error) {
	if candidateID.IsEmpty() {
		return nil, candidate.ErrCandidateNotFound()
	}

	profile, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !profile.HasResume() {
		return nil, candidate.ErrResumeMissing()
	}

	job := &analysis.AnalysisJob{
		ID:          kernel.AnalysisJobID(uuid.New().String()),
		CandidateID: candidateID,
		Status:      analysis.JobStatusPending,
		MaxAttempts: maxAttempts,
		CreatedAt:   time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, analysis.ErrQueueFailed(err)
	}

	payload := analysis.QueuePayload{JobID: job.ID, CandidateID: candidateID}
	if err := s.queue.Enqueue(ctx, job.ID, payload); err != nil {
		if markErr := s.jobRepo.MarkAsFailed(ctx, job.ID, "enqueue failed: "+err.Error()); markErr != nil {
			logx.Errorf("Failed to mark unenqueued job %s as failed: %v", job.ID, markErr)
		}
		return nil, analysis.ErrQueueFailed(err)
	}

	logx.Infof("Queued analysis job %s for candidate %s", job.ID, candidateID)
	return job, nil
}

// GetJobStatus returns the current state of a queued analysis.
func (s *AnalysisService) GetJobStatus(ctx context.Context, jobID kernel.AnalysisJobID) (*analysis.AnalysisJob, error) {
	if jobID.IsEmpty() {
		return nil, analysis.ErrJobNotFound()
	}
	return s.jobRepo.GetByID(ctx, jobID)
}

// ProcessJob is the worker entry point for one dequeued payload.
func (s *AnalysisService) ProcessJob(ctx context.Context, payload analysis.QueuePayload) error {
	if err := s.jobRepo.MarkAsProcessing(ctx, payload.JobID); err != nil {
		return err
	}

	record, err := s.AnalyzeResume(ctx, payload.CandidateID)
	if err != nil {
		return s.handleJobFailure(ctx, payload, err)
	}

	return s.jobRepo.MarkAsCompleted(ctx, payload.JobID, record.ID)
}

func (s *AnalysisService) handleJobFailure(ctx context.Context, payload analysis.QueuePayload, cause error) error {
	job, err := s.jobRepo.GetByID(ctx, payload.JobID)
	if err != nil {
		return err
	}

	if !job.CanRetry() {
		return s.jobRepo.MarkAsFailed(ctx, job.ID, cause.Error())
	}

	delay := retryDelay * time.Duration(job.AttemptCount)
	retryAt := time.Now().Add(delay)
	if err := s.jobRepo.MarkForRetry(ctx, job.ID, cause.Error(), retryAt); err != nil {
		return err
	}
	if err := s.queue.EnqueueDelayed(ctx, job.ID, payload, delay); err != nil {
		return s.jobRepo.MarkAsFailed(ctx, job.ID, "retry enqueue failed: "+err.Error())
	}

	logx.Warnf("Analysis job %s attempt %d failed, retrying in %s: %v", job.ID, job.AttemptCount, delay, cause)
	return nil
}
