package usecase

import (
	"context"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
)

const jobEntity = "Job"

type jobUsecase struct {
	repo domain.JobRepository
}

func NewJobUsecase(repo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{repo: repo}
}

func (u *jobUsecase) Create(ctx context.Context, job *domain.Job) error {
	now := time.Now().UTC()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now
	return storeError(jobEntity, u.repo.Create(ctx, job))
}

func (u *jobUsecase) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(jobEntity, err)
	}
	return job, nil
}

func (u *jobUsecase) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) Update(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now().UTC()
	return storeError(jobEntity, u.repo.Update(ctx, job))
}

func (u *jobUsecase) Delete(ctx context.Context, id string) error {
	return storeError(jobEntity, u.repo.Delete(ctx, id))
}
