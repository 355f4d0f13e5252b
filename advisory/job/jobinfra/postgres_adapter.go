package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) job.Repository {
	return &PostgresJobRepository{db: db}
}

const postingColumns = `
	id, title, description, skills, company, salary, location,
	type, experience, posted_at, is_active
`

// Create creates a new posting
func (r *PostgresJobRepository) Create(ctx context.Context, p *job.Posting) error {
	query := `
		INSERT INTO jobs (` + postingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		p.ID,
		p.Title,
		p.Description,
		pq.StringArray(p.Skills),
		p.Company,
		p.Salary,
		p.Location,
		p.Type,
		p.Experience,
		p.PostedAt,
		p.IsActive,
	)
	if err != nil {
		return errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}
	return nil
}

// CreateBatch inserts several postings at once (seeding)
func (r *PostgresJobRepository) CreateBatch(ctx context.Context, postings []job.Posting) error {
	for i := range postings {
		if err := r.Create(ctx, &postings[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a posting by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM jobs WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id.String())
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get job", errx.TypeInternal)
	}
	return p, nil
}

// Search retrieves active postings matching the filter
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchPostingsRequest) ([]job.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM jobs WHERE is_active = TRUE`
	args := []any{}

	if req.Type != "" {
		args = append(args, req.Type)
		query += ` AND type = $1`
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		query += ` AND (title ILIKE $` + itoa(n) +
			` OR description ILIKE $` + itoa(n) +
			` OR company ILIKE $` + itoa(n) + `)`
	}
	query += ` ORDER BY posted_at DESC`

	return r.queryPostings(ctx, query, args...)
}

// ListActive retrieves active postings up to limit, newest first
func (r *PostgresJobRepository) ListActive(ctx context.Context, limit int) ([]job.Posting, error) {
	query := `
		SELECT ` + postingColumns + `
		FROM jobs
		WHERE is_active = TRUE
		ORDER BY posted_at DESC
		LIMIT $1
	`
	return r.queryPostings(ctx, query, limit)
}

// SetActive flips the active flag
func (r *PostgresJobRepository) SetActive(ctx context.Context, id kernel.JobID, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET is_active = $2 WHERE id = $1`, id.String(), active)
	if err != nil {
		return errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}
	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("id", id.String())
	}
	return nil
}

// DeleteAll removes every posting (seeding support)
func (r *PostgresJobRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return errx.Wrap(err, "failed to delete jobs", errx.TypeInternal)
	}
	return nil
}

func (r *PostgresJobRepository) queryPostings(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errx.Wrap(err, "failed to query jobs", errx.TypeInternal)
	}
	defer rows.Close()

	postings := make([]job.Posting, 0, 16)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, errx.Wrap(err, "failed to scan job", errx.TypeInternal)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, errx.Wrap(err, "failed to query jobs", errx.TypeInternal)
	}
	return postings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (*job.Posting, error) {
	var p job.Posting
	var salary, location, experience sql.NullString
	var skills pq.StringArray

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&skills,
		&p.Company,
		&salary,
		&location,
		&p.Type,
		&experience,
		&p.PostedAt,
		&p.IsActive,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = []string(skills)
	p.Salary = salary.String
	p.Location = location.String
	p.Experience = experience.String

	return &p, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
