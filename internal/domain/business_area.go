package domain

import (
	"context"
	"time"
)

type BusinessArea struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BusinessAreaRepository interface {
	Create(ctx context.Context, area *BusinessArea) error
	GetByID(ctx context.Context, id string) (*BusinessArea, error)
	Fetch(ctx context.Context) ([]BusinessArea, error)
	Update(ctx context.Context, area *BusinessArea) error
	Delete(ctx context.Context, id string) error
}

type BusinessAreaUsecase interface {
	Create(ctx context.Context, area *BusinessArea) error
	GetByID(ctx context.Context, id string) (*BusinessArea, error)
	List(ctx context.Context) ([]BusinessArea, error)
	Update(ctx context.Context, area *BusinessArea) error
	Delete(ctx context.Context, id string) error
}
