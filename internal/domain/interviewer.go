package domain

import (
	"context"
	"time"
)

type Interviewer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Designation    *string   `json:"designation"`
	BusinessAreaID *string   `json:"business_area_id"`
	EmployeeID     *string   `json:"employee_id"`
	PasswordHash   *string   `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type InterviewerRepository interface {
	Create(ctx context.Context, interviewer *Interviewer) error
	GetByID(ctx context.Context, id string) (*Interviewer, error)
	GetByEmail(ctx context.Context, email string) (*Interviewer, error)
	// GetByIDs returns the interviewers whose id is in ids, in no particular
	// order. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Interviewer, error)
	Fetch(ctx context.Context) ([]Interviewer, error)
	// Update replaces the profile columns. The password hash is never touched
	// and a nil EmployeeID keeps the stored value.
	Update(ctx context.Context, interviewer *Interviewer) error
	Delete(ctx context.Context, id string) error
}

type InterviewerUsecase interface {
	Create(ctx context.Context, interviewer *Interviewer) error
	GetByID(ctx context.Context, id string) (*Interviewer, error)
	List(ctx context.Context) ([]Interviewer, error)
	Update(ctx context.Context, interviewer *Interviewer) error
	Delete(ctx context.Context, id string) error
}
