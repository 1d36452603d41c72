package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrJobNotFound = errors.New("job not found")

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// Supabase's pooler (PgBouncer, transaction mode) can't hold prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title        TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	location     TEXT NOT NULL DEFAULT '',
	salary       TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'DRAFT',
	description  TEXT,
	requirements TEXT,
	benefits     TEXT,
	announced_at TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC);`

// Migrate creates the jobs table when it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

const jobColumns = `id::text, title, company, location, salary, status, description, requirements, benefits, announced_at, created_at, updated_at`

func scanJob(row pgx.Row, job *models.Job) error {
	return row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Status,
		&job.Description, &job.Requirements, &job.Benefits, &job.AnnouncedAt, &job.CreatedAt, &job.UpdatedAt)
}

// ---------------- JOB OPERATIONS ----------------

// CreateJob inserts job and fills in the generated id and timestamps.
func (r *Repository) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.Status == "" {
		job.Status = models.StatusDraft
	}
	query := `
		INSERT INTO jobs (title, company, location, salary, status, description, requirements, benefits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query, job.Title, job.Company, job.Location, job.Salary, job.Status,
		job.Description, job.Requirements, job.Benefits)
	if err := scanJob(row, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (r *Repository) GetJobByID(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id::text = $1`
	if err := scanJob(r.db.QueryRow(ctx, query, jobID), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &job, nil
}

// UpdateJob overwrites every editable column of job.
func (r *Repository) UpdateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		UPDATE jobs SET title = $2, company = $3, location = $4, salary = $5, status = $6,
			description = $7, requirements = $8, benefits = $9, updated_at = now()
		WHERE id::text = $1
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query, job.ID, job.Title, job.Company, job.Location, job.Salary, job.Status,
		job.Description, job.Requirements, job.Benefits)
	if err := scanJob(row, job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, job.ID)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// UpdateJobContent writes only the three content columns.
func (r *Repository) UpdateJobContent(ctx context.Context, jobID string, description, requirements, benefits string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs SET description = $2, requirements = $3, benefits = $4, updated_at = now()
		WHERE id::text = $1`, jobID, description, requirements, benefits)
	if err != nil {
		return fmt.Errorf("failed to update job content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return nil
}

func (r *Repository) ListJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListUnannounced returns published jobs that were never sent to Telegram.
func (r *Repository) ListUnannounced(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs
		WHERE announced_at IS NULL AND status = $1 ORDER BY created_at`, models.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to list unannounced jobs: %w", err)
	}
	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]models.Job, error) {
	defer rows.Close()
	var out []models.Job
	for rows.Next() {
		var job models.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return out, nil
}

func (r *Repository) DeleteJob(ctx context.Context, jobID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id::text = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return nil
}

func (r *Repository) MarkAnnounced(ctx context.Context, jobID string, at time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE jobs SET announced_at = $2 WHERE id::text = $1", jobID, at)
	if err != nil {
		return fmt.Errorf("failed to mark job announced: %w", err)
	}
	return nil
}
