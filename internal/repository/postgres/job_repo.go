package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type jobRepo struct {
	db database.DBTX
}

func NewJobRepository(db database.DBTX) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, created_at, updated_at`

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(&job.ID, &job.Title, &job.Description, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, translatePgError(err)
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, job.ID, job.Title, job.Description, job.CreatedAt, job.UpdatedAt)
	return translatePgError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, updated_at = $4 WHERE id = $1 RETURNING created_at`
	err := r.db.QueryRow(ctx, query, job.ID, job.Title, job.Description, job.UpdatedAt).Scan(&job.CreatedAt)
	return translatePgError(err)
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM jobs WHERE id = $1`, id)
}
