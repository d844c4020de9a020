package domain

import (
	"context"
	"time"
)

type Tag struct {
	ID        string    `json:"id"`
	TagName   string    `json:"tag_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id string) (*Tag, error)
	// GetByIDs returns the tags whose id is in ids. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Tag, error)
	Fetch(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id string) error
}

type TagUsecase interface {
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id string) (*Tag, error)
	List(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id string) error
}
