package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type businessAreaRepo struct {
	db database.DBTX
}

func NewBusinessAreaRepository(db database.DBTX) domain.BusinessAreaRepository {
	return &businessAreaRepo{db: db}
}

const businessAreaColumns = `id, name, created_at, updated_at`

func scanBusinessArea(row rowScanner) (*domain.BusinessArea, error) {
	var area domain.BusinessArea
	if err := row.Scan(&area.ID, &area.Name, &area.CreatedAt, &area.UpdatedAt); err != nil {
		return nil, translatePgError(err)
	}
	return &area, nil
}

func (r *businessAreaRepo) Create(ctx context.Context, area *domain.BusinessArea) error {
	query := `INSERT INTO business_areas (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, area.ID, area.Name, area.CreatedAt, area.UpdatedAt)
	return translatePgError(err)
}

func (r *businessAreaRepo) GetByID(ctx context.Context, id string) (*domain.BusinessArea, error) {
	query := `SELECT ` + businessAreaColumns + ` FROM business_areas WHERE id = $1`
	return scanBusinessArea(r.db.QueryRow(ctx, query, id))
}

func (r *businessAreaRepo) Fetch(ctx context.Context) ([]domain.BusinessArea, error) {
	query := `SELECT ` + businessAreaColumns + ` FROM business_areas ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []domain.BusinessArea{}
	for rows.Next() {
		area, err := scanBusinessArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, *area)
	}
	return areas, rows.Err()
}

func (r *businessAreaRepo) Update(ctx context.Context, area *domain.BusinessArea) error {
	query := `UPDATE business_areas SET name = $2, updated_at = $3 WHERE id = $1 RETURNING created_at`
	err := r.db.QueryRow(ctx, query, area.ID, area.Name, area.UpdatedAt).Scan(&area.CreatedAt)
	return translatePgError(err)
}

func (r *businessAreaRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM business_areas WHERE id = $1`, id)
}
