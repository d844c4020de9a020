package usecase

import (
	"context"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
)

const tagEntity = "Tag"

type tagUsecase struct {
	repo domain.TagRepository
}

func NewTagUsecase(repo domain.TagRepository) domain.TagUsecase {
	return &tagUsecase{repo: repo}
}

func (u *tagUsecase) Create(ctx context.Context, tag *domain.Tag) error {
	now := time.Now().UTC()
	tag.ID = uuid.NewString()
	tag.CreatedAt = now
	tag.UpdatedAt = now
	return storeError(tagEntity, u.repo.Create(ctx, tag))
}

func (u *tagUsecase) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	tag, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(tagEntity, err)
	}
	return tag, nil
}

func (u *tagUsecase) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tags, nil
}

func (u *tagUsecase) Update(ctx context.Context, tag *domain.Tag) error {
	tag.UpdatedAt = time.Now().UTC()
	return storeError(tagEntity, u.repo.Update(ctx, tag))
}

func (u *tagUsecase) Delete(ctx context.Context, id string) error {
	return storeError(tagEntity, u.repo.Delete(ctx, id))
}
