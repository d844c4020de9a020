package domain

import (
	"context"
	"time"
)

// Interview is the stored form. Interviewer holds interviewer ids in the
// order they were submitted.
type Interview struct {
	ID           string    `json:"id"`
	Interviewer  []string  `json:"interviewer"`
	BusinessArea *string   `json:"business_area"`
	Job          *string   `json:"job"`
	DateTime     time.Time `json:"date_time"`
	Duration     *int      `json:"duration"`
	Location     *string   `json:"location"`
	Status       *string   `json:"status"`
	Notes        *string   `json:"notes"`
	Interviewee  *string   `json:"interviewee"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HydratedInterview replaces the reference ids of an Interview with the
// referenced records. Unresolved references are nil.
type HydratedInterview struct {
	ID           string        `json:"id"`
	Interviewer  []Interviewer `json:"interviewer"`
	BusinessArea *BusinessArea `json:"business_area"`
	Job          *Job          `json:"job"`
	DateTime     time.Time     `json:"date_time"`
	Duration     *int          `json:"duration"`
	Location     *string       `json:"location"`
	Status       *string       `json:"status"`
	Notes        *string       `json:"notes"`
	Interviewee  *Interviewee  `json:"interviewee"`
	Tags         []string      `json:"tags"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// FieldCondition is an equality match on one interviews column.
type FieldCondition struct {
	Field string
	Value any
}

// InterviewFilter narrows a search. The date range applies only when both
// bounds are set. Interviewers must all be linked to a matching interview.
type InterviewFilter struct {
	From         *time.Time
	To           *time.Time
	Interviewers []string
	Equals       []FieldCondition
}

type InterviewRepository interface {
	// Create and Update persist the row and its interviewer links atomically.
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	Fetch(ctx context.Context) ([]Interview, error)
	Filter(ctx context.Context, filter InterviewFilter) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
}

type InterviewUsecase interface {
	Create(ctx context.Context, interview *Interview) error
	GetHydrated(ctx context.Context, id string) (*HydratedInterview, error)
	List(ctx context.Context) ([]Interview, error)
	Filter(ctx context.Context, payload map[string]any) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
}
