package postgres

import (
	"context"
	"errors"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// translatePgError maps constraint violations onto domain errors, keeping the
// constraint name for logs.
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &domain.ConstraintError{Err: domain.ErrConflict, Constraint: pgErr.ConstraintName}
		case foreignKeyViolationCode:
			return &domain.ConstraintError{Err: domain.ErrInvalidReference, Constraint: pgErr.ConstraintName}
		}
	}
	return err
}

// execAffectingOne runs a write that must touch a row; zero rows is ErrNotFound.
func execAffectingOne(ctx context.Context, db database.DBTX, query string, args ...any) error {
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
