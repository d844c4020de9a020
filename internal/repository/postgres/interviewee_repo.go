package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type intervieweeRepo struct {
	db database.DBTX
}

func NewIntervieweeRepository(db database.DBTX) domain.IntervieweeRepository {
	return &intervieweeRepo{db: db}
}

const intervieweeColumns = `id, name, email, resume, comments, created_at, updated_at`

func scanInterviewee(row rowScanner) (*domain.Interviewee, error) {
	var iv domain.Interviewee
	err := row.Scan(&iv.ID, &iv.Name, &iv.Email, &iv.Resume, &iv.Comments, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return nil, translatePgError(err)
	}
	return &iv, nil
}

func (r *intervieweeRepo) Create(ctx context.Context, iv *domain.Interviewee) error {
	query := `INSERT INTO interviewees (id, name, email, resume, comments, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, iv.ID, iv.Name, iv.Email, iv.Resume, iv.Comments, iv.CreatedAt, iv.UpdatedAt)
	return translatePgError(err)
}

func (r *intervieweeRepo) GetByID(ctx context.Context, id string) (*domain.Interviewee, error) {
	query := `SELECT ` + intervieweeColumns + ` FROM interviewees WHERE id = $1`
	return scanInterviewee(r.db.QueryRow(ctx, query, id))
}

func (r *intervieweeRepo) Fetch(ctx context.Context) ([]domain.Interviewee, error) {
	query := `SELECT ` + intervieweeColumns + ` FROM interviewees ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviewees := []domain.Interviewee{}
	for rows.Next() {
		iv, err := scanInterviewee(rows)
		if err != nil {
			return nil, err
		}
		interviewees = append(interviewees, *iv)
	}
	return interviewees, rows.Err()
}

func (r *intervieweeRepo) Update(ctx context.Context, iv *domain.Interviewee) error {
	query := `UPDATE interviewees SET name = $2, email = $3, resume = $4, comments = $5, updated_at = $6
              WHERE id = $1 RETURNING created_at`
	err := r.db.QueryRow(ctx, query, iv.ID, iv.Name, iv.Email, iv.Resume, iv.Comments, iv.UpdatedAt).Scan(&iv.CreatedAt)
	return translatePgError(err)
}

func (r *intervieweeRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM interviewees WHERE id = $1`, id)
}
