package domain

import (
	"context"
	"time"
)

// Identity is the public view of an interviewer account.
type Identity struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	EmployeeID *string `json:"employee_id"`
}

func NewIdentity(i *Interviewer) Identity {
	return Identity{ID: i.ID, Name: i.Name, Email: i.Email, EmployeeID: i.EmployeeID}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Designation    *string
	BusinessAreaID *string
	EmployeeID     string
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      Identity  `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*Identity, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CurrentUser(ctx context.Context, id string) (*Identity, error)
}
