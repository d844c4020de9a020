package domain

import (
	"context"
	"time"
)

type InterviewTag struct {
	TagID       string    `json:"tag_id"`
	InterviewID string    `json:"interview_id"`
	DateTime    time.Time `json:"date_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InterviewTagRepository interface {
	// Create fails with ErrConflict when the pair exists and with
	// ErrInvalidReference when either side is missing.
	Create(ctx context.Context, link *InterviewTag) error
	FetchByInterview(ctx context.Context, interviewID string) ([]InterviewTag, error)
	Delete(ctx context.Context, interviewID, tagID string) error
}

type InterviewTagUsecase interface {
	Attach(ctx context.Context, link *InterviewTag) error
	ListTags(ctx context.Context, interviewID string) ([]Tag, error)
	Detach(ctx context.Context, interviewID, tagID string) error
}
