package domain

import "errors"

// Store-level errors. Repositories return these; usecases translate them into
// apperror values with entity-specific messages.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("unique constraint violated")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// ConstraintError carries the database constraint behind ErrConflict or
// ErrInvalidReference.
type ConstraintError struct {
	Err        error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return e.Err.Error() + ": " + e.Constraint
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ConstraintOf returns the constraint name carried by err, if any.
func ConstraintOf(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
