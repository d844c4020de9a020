package v1_test

import (
	"context"

	"interview-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockBusinessAreaUC struct {
	mock.Mock
}

func (m *MockBusinessAreaUC) Create(ctx context.Context, area *domain.BusinessArea) error {
	return m.Called(ctx, area).Error(0)
}
func (m *MockBusinessAreaUC) GetByID(ctx context.Context, id string) (*domain.BusinessArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessArea), args.Error(1)
}
func (m *MockBusinessAreaUC) List(ctx context.Context) ([]domain.BusinessArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessArea), args.Error(1)
}
func (m *MockBusinessAreaUC) Update(ctx context.Context, area *domain.BusinessArea) error {
	return m.Called(ctx, area).Error(0)
}
func (m *MockBusinessAreaUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobUC struct {
	mock.Mock
}

func (m *MockJobUC) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobUC) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobUC) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobUC) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewerUC struct {
	mock.Mock
}

func (m *MockInterviewerUC) Create(ctx context.Context, iv *domain.Interviewer) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewerUC) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerUC) List(ctx context.Context) ([]domain.Interviewer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerUC) Update(ctx context.Context, iv *domain.Interviewer) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewerUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewUC struct {
	mock.Mock
}

func (m *MockInterviewUC) Create(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewUC) GetHydrated(ctx context.Context, id string) (*domain.HydratedInterview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HydratedInterview), args.Error(1)
}
func (m *MockInterviewUC) List(ctx context.Context) ([]domain.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewUC) Filter(ctx context.Context, payload map[string]any) ([]domain.Interview, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewUC) Update(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewTagUC struct {
	mock.Mock
}

func (m *MockInterviewTagUC) Attach(ctx context.Context, link *domain.InterviewTag) error {
	return m.Called(ctx, link).Error(0)
}
func (m *MockInterviewTagUC) ListTags(ctx context.Context, interviewID string) ([]domain.Tag, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockInterviewTagUC) Detach(ctx context.Context, interviewID, tagID string) error {
	return m.Called(ctx, interviewID, tagID).Error(0)
}

type MockAuthUC struct {
	mock.Mock
}

func (m *MockAuthUC) Register(ctx context.Context, in domain.RegisterInput) (*domain.Identity, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}
func (m *MockAuthUC) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}
func (m *MockAuthUC) CurrentUser(ctx context.Context, id string) (*domain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

type MockTagUC struct {
	mock.Mock
}

func (m *MockTagUC) Create(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}
func (m *MockTagUC) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}
func (m *MockTagUC) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagUC) Update(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}
func (m *MockTagUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockIntervieweeUC struct {
	mock.Mock
}

func (m *MockIntervieweeUC) Create(ctx context.Context, interviewee *domain.Interviewee) error {
	return m.Called(ctx, interviewee).Error(0)
}
func (m *MockIntervieweeUC) GetByID(ctx context.Context, id string) (*domain.Interviewee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewee), args.Error(1)
}
func (m *MockIntervieweeUC) List(ctx context.Context) ([]domain.Interviewee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewee), args.Error(1)
}
func (m *MockIntervieweeUC) Update(ctx context.Context, interviewee *domain.Interviewee) error {
	return m.Called(ctx, interviewee).Error(0)
}
func (m *MockIntervieweeUC) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
