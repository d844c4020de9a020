package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens for an authenticated interviewer.
type TokenIssuer interface {
	Issue(id, email string) (string, time.Time, error)
}

type authUsecase struct {
	interviewerRepo domain.InterviewerRepository
	tokens          TokenIssuer
	bcryptCost      int
	// compared against on unknown emails so both failure paths cost one bcrypt run
	dummyHash []byte
}

func NewAuthUsecase(interviewerRepo domain.InterviewerRepository, tokens TokenIssuer, bcryptCost int) (domain.AuthUsecase, error) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth: bcrypt cost %d out of range", bcryptCost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth: dummy hash: %w", err)
	}
	return &authUsecase{
		interviewerRepo: interviewerRepo,
		tokens:          tokens,
		bcryptCost:      bcryptCost,
		dummyHash:       dummy,
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.Identity, error) {
	_, err := u.interviewerRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, apperror.Conflict("User already exists with this email")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.Validation(`"password" length must be less than or equal to 72 characters long`)
		}
		return nil, apperror.Internal(err)
	}
	hashStr := string(hash)
	employeeID := in.EmployeeID

	now := time.Now().UTC()
	iv := &domain.Interviewer{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Email:          in.Email,
		Designation:    in.Designation,
		BusinessAreaID: in.BusinessAreaID,
		EmployeeID:     &employeeID,
		PasswordHash:   &hashStr,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.interviewerRepo.Create(ctx, iv); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			if domain.ConstraintOf(err) == "interviewers_employee_id_key" {
				return nil, apperror.Conflict("User already exists with this employee ID")
			}
			return nil, apperror.Conflict("User already exists with this email")
		}
		return nil, storeError(interviewerEntity, err)
	}

	identity := domain.NewIdentity(iv)
	return &identity, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	iv, err := u.interviewerRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if iv == nil || iv.PasswordHash == nil {
		_ = bcrypt.CompareHashAndPassword(u.dummyHash, []byte(password))
		return nil, apperror.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*iv.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.InvalidCredentials()
	}

	token, expiresAt, err := u.tokens.Issue(iv.ID, iv.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      domain.NewIdentity(iv),
	}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, id string) (*domain.Identity, error) {
	iv, err := u.interviewerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("User", err)
	}
	identity := domain.NewIdentity(iv)
	return &identity, nil
}
