package usecase

import (
	"context"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
)

const businessAreaEntity = "Business Area"

type businessAreaUsecase struct {
	repo domain.BusinessAreaRepository
}

func NewBusinessAreaUsecase(repo domain.BusinessAreaRepository) domain.BusinessAreaUsecase {
	return &businessAreaUsecase{repo: repo}
}

func (u *businessAreaUsecase) Create(ctx context.Context, area *domain.BusinessArea) error {
	now := time.Now().UTC()
	area.ID = uuid.NewString()
	area.CreatedAt = now
	area.UpdatedAt = now
	return storeError(businessAreaEntity, u.repo.Create(ctx, area))
}

func (u *businessAreaUsecase) GetByID(ctx context.Context, id string) (*domain.BusinessArea, error) {
	area, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(businessAreaEntity, err)
	}
	return area, nil
}

func (u *businessAreaUsecase) List(ctx context.Context) ([]domain.BusinessArea, error) {
	areas, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return areas, nil
}

func (u *businessAreaUsecase) Update(ctx context.Context, area *domain.BusinessArea) error {
	area.UpdatedAt = time.Now().UTC()
	return storeError(businessAreaEntity, u.repo.Update(ctx, area))
}

func (u *businessAreaUsecase) Delete(ctx context.Context, id string) error {
	return storeError(businessAreaEntity, u.repo.Delete(ctx, id))
}
