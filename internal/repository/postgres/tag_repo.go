package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type tagRepo struct {
	db database.DBTX
}

func NewTagRepository(db database.DBTX) domain.TagRepository {
	return &tagRepo{db: db}
}

const tagColumns = `id, tag_name, created_at, updated_at`

func scanTag(row rowScanner) (*domain.Tag, error) {
	var tag domain.Tag
	if err := row.Scan(&tag.ID, &tag.TagName, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
		return nil, translatePgError(err)
	}
	return &tag, nil
}

func (r *tagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	query := `INSERT INTO tags (id, tag_name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, tag.ID, tag.TagName, tag.CreatedAt, tag.UpdatedAt)
	return translatePgError(err)
}

func (r *tagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`
	return scanTag(r.db.QueryRow(ctx, query, id))
}

func (r *tagRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = ANY($1::uuid[]) ORDER BY tag_name`
	return r.list(ctx, query, ids)
}

func (r *tagRepo) Fetch(ctx context.Context) ([]domain.Tag, error) {
	return r.list(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY created_at`)
}

func (r *tagRepo) list(ctx context.Context, query string, args ...any) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, rows.Err()
}

func (r *tagRepo) Update(ctx context.Context, tag *domain.Tag) error {
	query := `UPDATE tags SET tag_name = $2, updated_at = $3 WHERE id = $1 RETURNING created_at`
	err := r.db.QueryRow(ctx, query, tag.ID, tag.TagName, tag.UpdatedAt).Scan(&tag.CreatedAt)
	return translatePgError(err)
}

func (r *tagRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM tags WHERE id = $1`, id)
}
