package candidateinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/ascent/advisory/candidate"
	"github.com/Abraxas-365/ascent/pkg/errx"
	"github.com/Abraxas-365/ascent/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

// Create creates a new candidate profile
func (r *PostgresCandidateRepository) Create(ctx context.Context, p *candidate.Profile) error {
	query := `
		INSERT INTO candidates (
			id, email, phone, resume_file, resume_text, skills,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		p.ID,
		p.Email,
		p.Phone,
		p.ResumeFile,
		p.ResumeText,
		pq.StringArray(p.Skills),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return candidate.ErrInvalidEmail().
				WithDetail("email", p.Email.String()).
				WithDetail("reason", "already registered")
		}
		return errx.Wrap(err, "failed to create candidate", errx.TypeInternal)
	}

	return nil
}

// Update replaces an existing profile's stored fields
func (r *PostgresCandidateRepository) Update(ctx context.Context, p *candidate.Profile) error {
	query := `
		UPDATE candidates
		SET
			phone = $2,
			resume_file = $3,
			resume_text = $4,
			skills = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		p.ID,
		p.Phone,
		p.ResumeFile,
		p.ResumeText,
		pq.StringArray(p.Skills),
		p.UpdatedAt,
	)
	if err != nil {
		return errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
	}
	if rows == 0 {
		return candidate.ErrCandidateNotFound().WithDetail("id", p.ID.String())
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Profile, error) {
	query := `
		SELECT id, email, phone, resume_file, resume_text, skills,
		       created_at, updated_at
		FROM candidates
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id.String())
}

// GetByEmail retrieves a profile by normalized email
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Profile, error) {
	query := `
		SELECT id, email, phone, resume_file, resume_text, skills,
		       created_at, updated_at
		FROM candidates
		WHERE email = $1
	`

	return r.scanOne(ctx, query, email.String())
}

// List retrieves profiles with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Profile], error) {
	pagination = pagination.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM candidates`); err != nil {
		return nil, errx.Wrap(err, "failed to count candidates", errx.TypeInternal)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize)

	query := `
		SELECT id, email, phone, resume_file, resume_text, skills,
		       created_at, updated_at
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pagination.PageSize, offset)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}
	defer rows.Close()

	items := make([]candidate.Profile, 0, pagination.PageSize)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, errx.Wrap(err, "failed to scan candidate", errx.TypeInternal)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	return &kernel.Paginated[candidate.Profile]{
		Items: items,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(items) == 0,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresCandidateRepository) scanOne(ctx context.Context, query string, arg string) (*candidate.Profile, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, errx.Wrap(err, "failed to get candidate", errx.TypeInternal)
	}
	return p, nil
}

func scanProfile(row rowScanner) (*candidate.Profile, error) {
	var p candidate.Profile
	var phone, resumeFile, resumeText sql.NullString
	var skills pq.StringArray

	err := row.Scan(
		&p.ID,
		&p.Email,
		&phone,
		&resumeFile,
		&resumeText,
		&skills,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Phone = kernel.Phone(phone.String)
	p.ResumeFile = kernel.BucketURL(resumeFile.String)
	p.ResumeText = resumeText.String
	p.Skills = []string(skills)

	return &p, nil
}
