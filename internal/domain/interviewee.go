package domain

import (
	"context"
	"time"
)

type Interviewee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Resume    *string   `json:"resume"`
	Comments  *string   `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IntervieweeRepository interface {
	Create(ctx context.Context, interviewee *Interviewee) error
	GetByID(ctx context.Context, id string) (*Interviewee, error)
	Fetch(ctx context.Context) ([]Interviewee, error)
	Update(ctx context.Context, interviewee *Interviewee) error
	Delete(ctx context.Context, id string) error
}

type IntervieweeUsecase interface {
	Create(ctx context.Context, interviewee *Interviewee) error
	GetByID(ctx context.Context, id string) (*Interviewee, error)
	List(ctx context.Context) ([]Interviewee, error)
	Update(ctx context.Context, interviewee *Interviewee) error
	Delete(ctx context.Context, id string) error
}
