package analysisinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const analysisColumns = `id, candidate_id, ats_score, strengths, weaknesses,
	missing_keywords, formatting_issues, suggestions, improved_sections, created_at`

type PostgresAnalysisRepository struct {
	db *sqlx.DB
}

func NewPostgresAnalysisRepository(db *sqlx.DB) analysis.Repository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) Create(ctx context.Context, a *analysis.Analysis) error {
	query := `
		INSERT INTO resume_analyses (` + analysisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	sections, err := json.Marshal(a.ImprovedSections)
	if err != nil {
		return fmt.Errorf("marshal improved sections: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		a.ID.String(),
		a.CandidateID.String(),
		a.ATSScore,
		pq.StringArray(a.Strengths),
		pq.StringArray(a.Weaknesses),
		pq.StringArray(a.MissingKeywords),
		pq.StringArray(a.FormattingIssues),
		pq.StringArray(a.Suggestions),
		sections,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create analysis: %w", err)
	}

	return nil
}

func (r *PostgresAnalysisRepository) GetByID(ctx context.Context, id kernel.AnalysisID) (*analysis.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM resume_analyses WHERE id = $1`

	row := r.db.QueryRowxContext(ctx, query, id.String())
	a, err := scanAnalysis(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, analysis.ErrAnalysisNotFound()
		}
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

func (r *PostgresAnalysisRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) ([]analysis.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM resume_analyses
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, candidateID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]analysis.Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			logx.Errorf("Failed to scan analysis row: %v", err)
			continue
		}
		analyses = append(analyses, *a)
	}

	return analyses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*analysis.Analysis, error) {
	var (
		a        analysis.Analysis
		id       string
		candID   string
		strs     pq.StringArray
		weaks    pq.StringArray
		keywords pq.StringArray
		issues   pq.StringArray
		suggs    pq.StringArray
		sections []byte
	)

	if err := row.Scan(
		&id, &candID, &a.ATSScore,
		&strs, &weaks, &keywords, &issues, &suggs,
		&sections, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.ID = kernel.AnalysisID(id)
	a.CandidateID = kernel.CandidateID(candID)
	a.Strengths = strs
	a.Weaknesses = weaks
	a.MissingKeywords = keywords
	a.FormattingIssues = issues
	a.Suggestions = suggs

	a.ImprovedSections = map[string]string{}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &a.ImprovedSections); err != nil {
			logx.Warnf("Failed to unmarshal improved sections for analysis %s: %v", id, err)
		}
	}

	return &a, nil
}
