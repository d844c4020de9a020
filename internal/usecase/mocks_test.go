package usecase_test

import (
	"context"
	"time"

	"interview-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockBusinessAreaRepo struct {
	mock.Mock
}

func (m *MockBusinessAreaRepo) Create(ctx context.Context, area *domain.BusinessArea) error {
	return m.Called(ctx, area).Error(0)
}
func (m *MockBusinessAreaRepo) GetByID(ctx context.Context, id string) (*domain.BusinessArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessArea), args.Error(1)
}
func (m *MockBusinessAreaRepo) Fetch(ctx context.Context) ([]domain.BusinessArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessArea), args.Error(1)
}
func (m *MockBusinessAreaRepo) Update(ctx context.Context, area *domain.BusinessArea) error {
	return m.Called(ctx, area).Error(0)
}
func (m *MockBusinessAreaRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockTagRepo struct {
	mock.Mock
}

func (m *MockTagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}
func (m *MockTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}
func (m *MockTagRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagRepo) Fetch(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}
func (m *MockTagRepo) Update(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}
func (m *MockTagRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockIntervieweeRepo struct {
	mock.Mock
}

func (m *MockIntervieweeRepo) Create(ctx context.Context, iv *domain.Interviewee) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockIntervieweeRepo) GetByID(ctx context.Context, id string) (*domain.Interviewee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewee), args.Error(1)
}
func (m *MockIntervieweeRepo) Fetch(ctx context.Context) ([]domain.Interviewee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewee), args.Error(1)
}
func (m *MockIntervieweeRepo) Update(ctx context.Context, iv *domain.Interviewee) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockIntervieweeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewerRepo struct {
	mock.Mock
}

func (m *MockInterviewerRepo) Create(ctx context.Context, iv *domain.Interviewer) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewerRepo) GetByID(ctx context.Context, id string) (*domain.Interviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerRepo) GetByEmail(ctx context.Context, email string) (*domain.Interviewer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Interviewer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerRepo) Fetch(ctx context.Context) ([]domain.Interviewer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interviewer), args.Error(1)
}
func (m *MockInterviewerRepo) Update(ctx context.Context, iv *domain.Interviewer) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewerRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Fetch(ctx context.Context) ([]domain.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Filter(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewTagRepo struct {
	mock.Mock
}

func (m *MockInterviewTagRepo) Create(ctx context.Context, link *domain.InterviewTag) error {
	return m.Called(ctx, link).Error(0)
}
func (m *MockInterviewTagRepo) FetchByInterview(ctx context.Context, interviewID string) ([]domain.InterviewTag, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewTag), args.Error(1)
}
func (m *MockInterviewTagRepo) Delete(ctx context.Context, interviewID, tagID string) error {
	return m.Called(ctx, interviewID, tagID).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(id, email string) (string, time.Time, error) {
	args := m.Called(id, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
