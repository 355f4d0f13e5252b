package analysisinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/jmoiron/sqlx"
)

type PostgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) analysis.JobRepository {
	return &PostgresJobRepository{db: db}
}

type dbJob struct {
	ID          string  `db:"id"`
	CandidateID string  `db:"candidate_id"`
	AnalysisID  *string `db:"analysis_id"`

	Status       string `db:"status"`
	AttemptCount int    `db:"attempt_count"`
	MaxAttempts  int    `db:"max_attempts"`
	LastError    string `db:"last_error"`

	CreatedAt   time.Time  `db:"created_at"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	FailedAt    *time.Time `db:"failed_at"`
	NextRetryAt *time.Time `db:"next_retry_at"`
}

func (r *PostgresJobRepository) Create(ctx context.Context, job *analysis.AnalysisJob) error {
	query := `
		INSERT INTO analysis_jobs (
			id, candidate_id, analysis_id, status,
			attempt_count, max_attempts, last_error,
			created_at, started_at, completed_at, failed_at, next_retry_at
		) VALUES (
			:id, :candidate_id, :analysis_id, :status,
			:attempt_count, :max_attempts, :last_error,
			:created_at, :started_at, :completed_at, :failed_at, :next_retry_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, toDBJob(job)); err != nil {
		return fmt.Errorf("create analysis job: %w", err)
	}

	logx.Infof("Created analysis job: %s", job.ID)
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.AnalysisJobID) (*analysis.AnalysisJob, error) {
	query := `
		SELECT id, candidate_id, analysis_id, status,
			attempt_count, max_attempts, last_error,
			created_at, started_at, completed_at, failed_at, next_retry_at
		FROM analysis_jobs
		WHERE id = $1
	`

	var row dbJob
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, analysis.ErrJobNotFound()
		}
		return nil, fmt.Errorf("get analysis job: %w", err)
	}

	return toDomainJob(&row), nil
}

func (r *PostgresJobRepository) MarkAsProcessing(ctx context.Context, id kernel.AnalysisJobID) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, started_at = $3, attempt_count = attempt_count + 1
		WHERE id = $1
	`

	return r.exec(ctx, query, id, string(analysis.JobStatusProcessing), time.Now())
}

func (r *PostgresJobRepository) MarkAsCompleted(ctx context.Context, id kernel.AnalysisJobID, analysisID kernel.AnalysisID) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, analysis_id = $3, completed_at = $4,
			last_error = '', next_retry_at = NULL
		WHERE id = $1
	`

	if err := r.exec(ctx, query, id, string(analysis.JobStatusCompleted), analysisID.String(), time.Now()); err != nil {
		return err
	}

	logx.Infof("Marked analysis job as completed: %s, analysis: %s", id, analysisID)
	return nil
}

func (r *PostgresJobRepository) MarkAsFailed(ctx context.Context, id kernel.AnalysisJobID, errorMsg string) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, failed_at = $3, last_error = $4, next_retry_at = NULL
		WHERE id = $1
	`

	if err := r.exec(ctx, query, id, string(analysis.JobStatusFailed), time.Now(), errorMsg); err != nil {
		return err
	}

	logx.Warnf("Marked analysis job as failed: %s, error: %s", id, errorMsg)
	return nil
}

func (r *PostgresJobRepository) MarkForRetry(ctx context.Context, id kernel.AnalysisJobID, errorMsg string, retryAt time.Time) error {
	query := `
		UPDATE analysis_jobs
		SET status = $2, last_error = $3, next_retry_at = $4
		WHERE id = $1
	`

	return r.exec(ctx, query, id, string(analysis.JobStatusPending), errorMsg, retryAt)
}

func (r *PostgresJobRepository) exec(ctx context.Context, query string, id kernel.AnalysisJobID, args ...any) error {
	all := append([]any{id.String()}, args...)
	result, err := r.db.ExecContext(ctx, query, all...)
	if err != nil {
		return fmt.Errorf("update analysis job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return analysis.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	return nil
}

func toDBJob(job *analysis.AnalysisJob) *dbJob {
	var analysisID *string
	if job.AnalysisID != nil {
		s := job.AnalysisID.String()
		analysisID = &s
	}

	return &dbJob{
		ID:           job.ID.String(),
		CandidateID:  job.CandidateID.String(),
		AnalysisID:   analysisID,
		Status:       string(job.Status),
		AttemptCount: job.AttemptCount,
		MaxAttempts:  job.MaxAttempts,
		LastError:    job.LastError,
		CreatedAt:    job.CreatedAt,
		StartedAt:    job.StartedAt,
		CompletedAt:  job.CompletedAt,
		FailedAt:     job.FailedAt,
		NextRetryAt:  job.NextRetryAt,
	}
}

func toDomainJob(row *dbJob) *analysis.AnalysisJob {
	var analysisID *kernel.AnalysisID
	if row.AnalysisID != nil {
		id := kernel.AnalysisID(*row.AnalysisID)
		analysisID = &id
	}

	return &analysis.AnalysisJob{
		ID:           kernel.AnalysisJobID(row.ID),
		CandidateID:  kernel.CandidateID(row.CandidateID),
		AnalysisID:   analysisID,
		Status:       analysis.JobStatus(row.Status),
		AttemptCount: row.AttemptCount,
		MaxAttempts:  row.MaxAttempts,
		LastError:    row.LastError,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		FailedAt:     row.FailedAt,
		NextRetryAt:  row.NextRetryAt,
	}
}
