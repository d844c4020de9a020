package usecase

import (
	"context"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
)

const intervieweeEntity = "Interviewee"

type intervieweeUsecase struct {
	repo domain.IntervieweeRepository
}

func NewIntervieweeUsecase(repo domain.IntervieweeRepository) domain.IntervieweeUsecase {
	return &intervieweeUsecase{repo: repo}
}

func (u *intervieweeUsecase) Create(ctx context.Context, iv *domain.Interviewee) error {
	now := time.Now().UTC()
	iv.ID = uuid.NewString()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	return storeError(intervieweeEntity, u.repo.Create(ctx, iv))
}

func (u *intervieweeUsecase) GetByID(ctx context.Context, id string) (*domain.Interviewee, error) {
	iv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(intervieweeEntity, err)
	}
	return iv, nil
}

func (u *intervieweeUsecase) List(ctx context.Context) ([]domain.Interviewee, error) {
	interviewees, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviewees, nil
}

func (u *intervieweeUsecase) Update(ctx context.Context, iv *domain.Interviewee) error {
	iv.UpdatedAt = time.Now().UTC()
	return storeError(intervieweeEntity, u.repo.Update(ctx, iv))
}

func (u *intervieweeUsecase) Delete(ctx context.Context, id string) error {
	return storeError(intervieweeEntity, u.repo.Delete(ctx, id))
}
