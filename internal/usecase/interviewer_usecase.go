package usecase

import (
	"context"
	"errors"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
)

const interviewerEntity = "Interviewer"

type interviewerUsecase struct {
	repo domain.InterviewerRepository
}

func NewInterviewerUsecase(repo domain.InterviewerRepository) domain.InterviewerUsecase {
	return &interviewerUsecase{repo: repo}
}

func (u *interviewerUsecase) Create(ctx context.Context, iv *domain.Interviewer) error {
	now := time.Now().UTC()
	iv.ID = uuid.NewString()
	iv.PasswordHash = nil
	iv.CreatedAt = now
	iv.UpdatedAt = now
	return interviewerStoreError(u.repo.Create(ctx, iv))
}

func (u *interviewerUsecase) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	iv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(interviewerEntity, err)
	}
	return iv, nil
}

func (u *interviewerUsecase) List(ctx context.Context) ([]domain.Interviewer, error) {
	interviewers, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviewers, nil
}

func (u *interviewerUsecase) Update(ctx context.Context, iv *domain.Interviewer) error {
	iv.UpdatedAt = time.Now().UTC()
	return interviewerStoreError(u.repo.Update(ctx, iv))
}

func (u *interviewerUsecase) Delete(ctx context.Context, id string) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrInvalidReference) &&
		domain.ConstraintOf(err) == "interview_interviewers_interviewer_id_fkey" {
		return apperror.BadRequest("Interviewer is assigned to interviews")
	}
	return storeError(interviewerEntity, err)
}

// interviewerStoreError names the unique column that collided.
func interviewerStoreError(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		switch domain.ConstraintOf(err) {
		case "interviewers_email_key":
			return apperror.Conflict("Interviewer with this email already exists")
		case "interviewers_employee_id_key":
			return apperror.Conflict("Interviewer with this employee ID already exists")
		}
	}
	return storeError(interviewerEntity, err)
}
