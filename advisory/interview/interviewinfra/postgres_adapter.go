package interviewinfra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/ascent/advisory/interview"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const sessionColumns = `id, candidate_id, job_id, job_role, questions,
	overall_score, strengths, improvements, feedback, created_at`

type PostgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) interview.Repository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, session *interview.Session) error {
	query := `
		INSERT INTO interview_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	questions, err := json.Marshal(session.Questions)
	if err != nil {
		return fmt.Errorf("marshal session questions: %w", err)
	}

	var jobID *string
	if session.JobID != nil {
		s := session.JobID.String()
		jobID = &s
	}

	_, err = r.db.ExecContext(ctx, query,
		session.ID.String(),
		session.CandidateID.String(),
		jobID,
		session.JobRole,
		questions,
		session.OverallScore,
		pq.StringArray(session.Strengths),
		pq.StringArray(session.Improvements),
		session.Feedback,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create interview session: %w", err)
	}

	return nil
}

func (r *PostgresSessionRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]interview.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM interview_sessions
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, candidateID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list interview sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]interview.Session, 0)
	for rows.Next() {
		var (
			session      interview.Session
			id, candID   string
			jobID        *string
			questions    []byte
			strengths    pq.StringArray
			improvements pq.StringArray
		)

		if err := rows.Scan(
			&id, &candID, &jobID, &session.JobRole, &questions,
			&session.OverallScore, &strengths, &improvements,
			&session.Feedback, &session.CreatedAt,
		); err != nil {
			logx.Errorf("Failed to scan interview session row: %v", err)
			continue
		}

		session.ID = kernel.SessionID(id)
		session.CandidateID = kernel.CandidateID(candID)
		if jobID != nil {
			jid := kernel.JobID(*jobID)
			session.JobID = &jid
		}
		session.Strengths = strengths
		session.Improvements = improvements

		session.Questions = make([]interview.SessionQuestion, 0)
		if len(questions) > 0 {
			if err := json.Unmarshal(questions, &session.Questions); err != nil {
				logx.Warnf("Failed to unmarshal questions for session %s: %v", id, err)
			}
		}

		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
