package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type interviewerRepo struct {
	db database.DBTX
}

func NewInterviewerRepository(db database.DBTX) domain.InterviewerRepository {
	return &interviewerRepo{db: db}
}

const interviewerColumns = `id, name, email, designation, business_area_id, employee_id, password_hash, created_at, updated_at`

func scanInterviewer(row rowScanner) (*domain.Interviewer, error) {
	var iv domain.Interviewer
	err := row.Scan(
		&iv.ID, &iv.Name, &iv.Email, &iv.Designation, &iv.BusinessAreaID,
		&iv.EmployeeID, &iv.PasswordHash, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, translatePgError(err)
	}
	return &iv, nil
}

func (r *interviewerRepo) Create(ctx context.Context, iv *domain.Interviewer) error {
	query := `INSERT INTO interviewers (id, name, email, designation, business_area_id, employee_id, password_hash, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		iv.ID, iv.Name, iv.Email, iv.Designation, iv.BusinessAreaID,
		iv.EmployeeID, iv.PasswordHash, iv.CreatedAt, iv.UpdatedAt,
	)
	return translatePgError(err)
}

func (r *interviewerRepo) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	query := `SELECT ` + interviewerColumns + ` FROM interviewers WHERE id = $1`
	return scanInterviewer(r.db.QueryRow(ctx, query, id))
}

func (r *interviewerRepo) GetByEmail(ctx context.Context, email string) (*domain.Interviewer, error) {
	query := `SELECT ` + interviewerColumns + ` FROM interviewers WHERE email = $1`
	return scanInterviewer(r.db.QueryRow(ctx, query, email))
}

func (r *interviewerRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Interviewer, error) {
	if len(ids) == 0 {
		return []domain.Interviewer{}, nil
	}
	query := `SELECT ` + interviewerColumns + ` FROM interviewers WHERE id = ANY($1::uuid[])`
	return r.list(ctx, query, ids)
}

func (r *interviewerRepo) Fetch(ctx context.Context) ([]domain.Interviewer, error) {
	return r.list(ctx, `SELECT `+interviewerColumns+` FROM interviewers ORDER BY created_at`)
}

func (r *interviewerRepo) list(ctx context.Context, query string, args ...any) ([]domain.Interviewer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviewers := []domain.Interviewer{}
	for rows.Next() {
		iv, err := scanInterviewer(rows)
		if err != nil {
			return nil, err
		}
		interviewers = append(interviewers, *iv)
	}
	return interviewers, rows.Err()
}

func (r *interviewerRepo) Update(ctx context.Context, iv *domain.Interviewer) error {
	query := `UPDATE interviewers
                 SET name = $2, email = $3, designation = $4, business_area_id = $5,
                     employee_id = COALESCE($6, employee_id), updated_at = $7
               WHERE id = $1
           RETURNING employee_id, created_at`
	err := r.db.QueryRow(ctx, query,
		iv.ID, iv.Name, iv.Email, iv.Designation, iv.BusinessAreaID, iv.EmployeeID, iv.UpdatedAt,
	).Scan(&iv.EmployeeID, &iv.CreatedAt)
	return translatePgError(err)
}

func (r *interviewerRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM interviewers WHERE id = $1`, id)
}
