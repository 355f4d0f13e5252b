package gapinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/ascent/advisory/skillgap"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const reportColumns = `id, candidate_id, job_id, current_skills, required_skills,
	missing_skills, match_percentage, lexical_match_percentage, recommendations, created_at`

type PostgresReportRepository struct {
	db *sqlx.DB
}

func NewPostgresReportRepository(db *sqlx.DB) skillgap.Repository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) Create(ctx context.Context, report *skillgap.Report) error {
	query := `
		INSERT INTO skill_gap_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	recommendations, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		report.ID.String(),
		report.CandidateID.String(),
		report.JobID.String(),
		pq.StringArray(report.CurrentSkills),
		pq.StringArray(report.RequiredSkills),
		pq.StringArray(report.MissingSkills),
		report.MatchPercentage,
		report.LexicalMatchPercentage,
		recommendations,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create skill gap report: %w", err)
	}

	return nil
}

func (r *PostgresReportRepository) GetLatest(ctx context.Context, candidateID kernel.CandidateID, jobID kernel.JobID) (*skillgap.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM skill_gap_reports
		WHERE candidate_id = $1 AND job_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	row := r.db.QueryRowxContext(ctx, query, candidateID.String(), jobID.String())
	report, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, skillgap.ErrReportNotFound()
		}
		return nil, fmt.Errorf("get skill gap report: %w", err)
	}
	return report, nil
}

func (r *PostgresReportRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]skillgap.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM skill_gap_reports
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, candidateID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list skill gap reports: %w", err)
	}
	defer rows.Close()

	reports := make([]skillgap.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			logx.Errorf("Failed to scan skill gap row: %v", err)
			continue
		}
		reports = append(reports, *report)
	}

	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*skillgap.Report, error) {
	var (
		report          skillgap.Report
		id, candID, jID string
		current         pq.StringArray
		required        pq.StringArray
		missing         pq.StringArray
		recommendations []byte
	)

	if err := row.Scan(
		&id, &candID, &jID,
		&current, &required, &missing,
		&report.MatchPercentage, &report.LexicalMatchPercentage,
		&recommendations, &report.CreatedAt,
	); err != nil {
		return nil, err
	}

	report.ID = kernel.ReportID(id)
	report.CandidateID = kernel.CandidateID(candID)
	report.JobID = kernel.JobID(jID)
	report.CurrentSkills = current
	report.RequiredSkills = required
	report.MissingSkills = missing

	report.Recommendations = make([]skillgap.Recommendation, 0)
	if len(recommendations) > 0 {
		if err := json.Unmarshal(recommendations, &report.Recommendations); err != nil {
			logx.Warnf("Failed to unmarshal recommendations for report %s: %v", id, err)
		}
	}

	return &report, nil
}
