package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"interview-tracker/internal/domain"
	"interview-tracker/internal/usecase"
	"interview-tracker/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func requireAppError(t *testing.T, err error, code int, message string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
	return appErr
}

func TestBusinessAreaUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns id and timestamps", func(t *testing.T) {
		repo := new(MockBusinessAreaRepo)
		uc := usecase.NewBusinessAreaUsecase(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.BusinessArea")).Return(nil)

		area := &domain.BusinessArea{Name: "Engineering"}
		require.NoError(t, uc.Create(ctx, area))

		assert.NotEmpty(t, area.ID)
		assert.False(t, area.CreatedAt.IsZero())
		assert.Equal(t, area.CreatedAt, area.UpdatedAt)
		repo.AssertExpectations(t)
	})

	t.Run("GetByID missing row is 404", func(t *testing.T) {
		repo := new(MockBusinessAreaRepo)
		uc := usecase.NewBusinessAreaUsecase(repo)
		repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		_, err := uc.GetByID(ctx, "missing")
		requireAppError(t, err, http.StatusNotFound, "Business Area not found")
	})

	t.Run("Delete missing row is 404", func(t *testing.T) {
		repo := new(MockBusinessAreaRepo)
		uc := usecase.NewBusinessAreaUsecase(repo)
		repo.On("Delete", ctx, "missing").Return(domain.ErrNotFound)

		requireAppError(t, uc.Delete(ctx, "missing"), http.StatusNotFound, "Business Area not found")
	})

	t.Run("List failure is 500 with cause", func(t *testing.T) {
		repo := new(MockBusinessAreaRepo)
		uc := usecase.NewBusinessAreaUsecase(repo)
		repo.On("Fetch", ctx).Return(nil, errors.New("connection reset"))

		_, err := uc.List(ctx)
		appErr := requireAppError(t, err, http.StatusInternalServerError, "Internal Server Error")
		assert.Equal(t, "connection reset", appErr.Detail)
	})
}

func TestJobUsecaseUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(domain.ErrNotFound)

	job := &domain.Job{ID: "id", Title: "Backend Engineer"}
	requireAppError(t, uc.Update(ctx, job), http.StatusNotFound, "Job not found")
	assert.False(t, job.UpdatedAt.IsZero())
}

func TestTagUsecaseDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTagRepo)
	uc := usecase.NewTagUsecase(repo)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Tag")).
		Return(&domain.ConstraintError{Err: domain.ErrConflict, Constraint: "tags_tag_name_key"})

	requireAppError(t, uc.Create(ctx, &domain.Tag{TagName: "golang"}), http.StatusBadRequest, "Tag already exists")
}

func TestIntervieweeUsecaseGet(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIntervieweeRepo)
	uc := usecase.NewIntervieweeUsecase(repo)
	want := &domain.Interviewee{ID: "iv-1", Name: "Ada"}
	repo.On("GetByID", ctx, "iv-1").Return(want, nil)

	got, err := uc.GetByID(ctx, "iv-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInterviewerUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create never stores a password hash", func(t *testing.T) {
		repo := new(MockInterviewerRepo)
		uc := usecase.NewInterviewerUsecase(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(iv *domain.Interviewer) bool {
			return iv.PasswordHash == nil && iv.ID != ""
		})).Return(nil)

		iv := &domain.Interviewer{Name: "Grace", Email: "grace@example.com", PasswordHash: strPtr("smuggled")}
		require.NoError(t, uc.Create(ctx, iv))
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate email names the column", func(t *testing.T) {
		repo := new(MockInterviewerRepo)
		uc := usecase.NewInterviewerUsecase(repo)
		repo.On("Create", ctx, mock.Anything).
			Return(&domain.ConstraintError{Err: domain.ErrConflict, Constraint: "interviewers_email_key"})

		err := uc.Create(ctx, &domain.Interviewer{Name: "Grace", Email: "grace@example.com"})
		requireAppError(t, err, http.StatusBadRequest, "Interviewer with this email already exists")
	})

	t.Run("Dangling business area is a validation error", func(t *testing.T) {
		repo := new(MockInterviewerRepo)
		uc := usecase.NewInterviewerUsecase(repo)
		repo.On("Update", ctx, mock.Anything).
			Return(&domain.ConstraintError{Err: domain.ErrInvalidReference, Constraint: "interviewers_business_area_id_fkey"})

		err := uc.Update(ctx, &domain.Interviewer{ID: "x", Name: "Grace", Email: "grace@example.com"})
		appErr := requireAppError(t, err, http.StatusBadRequest, "Validation Error")
		assert.Equal(t, `"business_area_id" references a record that does not exist`, appErr.Detail)
	})

	t.Run("Delete refuses an interviewer still on interviews", func(t *testing.T) {
		repo := new(MockInterviewerRepo)
		uc := usecase.NewInterviewerUsecase(repo)
		repo.On("Delete", ctx, "iv-1").
			Return(&domain.ConstraintError{Err: domain.ErrInvalidReference, Constraint: "interview_interviewers_interviewer_id_fkey"})

		err := uc.Delete(ctx, "iv-1")
		requireAppError(t, err, http.StatusBadRequest, "Interviewer is assigned to interviews")
	})

	t.Run("Delete missing interviewer", func(t *testing.T) {
		repo := new(MockInterviewerRepo)
		uc := usecase.NewInterviewerUsecase(repo)
		repo.On("Delete", ctx, "gone").Return(domain.ErrNotFound)

		err := uc.Delete(ctx, "gone")
		requireAppError(t, err, http.StatusNotFound, "Interviewer not found")
	})
}
