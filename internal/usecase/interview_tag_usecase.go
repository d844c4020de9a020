package usecase

import (
	"context"
	"errors"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
)

type interviewTagUsecase struct {
	interviewTagRepo domain.InterviewTagRepository
	interviewRepo    domain.InterviewRepository
	tagRepo          domain.TagRepository
}

func NewInterviewTagUsecase(
	interviewTagRepo domain.InterviewTagRepository,
	interviewRepo domain.InterviewRepository,
	tagRepo domain.TagRepository,
) domain.InterviewTagUsecase {
	return &interviewTagUsecase{
		interviewTagRepo: interviewTagRepo,
		interviewRepo:    interviewRepo,
		tagRepo:          tagRepo,
	}
}

// Attach links a tag to an interview. DateTime defaults to now.
func (u *interviewTagUsecase) Attach(ctx context.Context, link *domain.InterviewTag) error {
	now := time.Now().UTC()
	if link.DateTime.IsZero() {
		link.DateTime = now
	}
	link.CreatedAt = now
	link.UpdatedAt = now

	err := u.interviewTagRepo.Create(ctx, link)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConflict):
		return apperror.Conflict("Tag is already attached to this interview")
	case errors.Is(err, domain.ErrInvalidReference):
		if domain.ConstraintOf(err) == "interview_tags_tag_id_fkey" {
			return apperror.NotFound("Tag not found")
		}
		return apperror.NotFound("Interview not found")
	default:
		return apperror.Internal(err)
	}
}

func (u *interviewTagUsecase) ListTags(ctx context.Context, interviewID string) ([]domain.Tag, error) {
	if _, err := u.interviewRepo.GetByID(ctx, interviewID); err != nil {
		return nil, storeError(interviewEntity, err)
	}

	links, err := u.interviewTagRepo.FetchByInterview(ctx, interviewID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}

	tags, err := u.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tags, nil
}

func (u *interviewTagUsecase) Detach(ctx context.Context, interviewID, tagID string) error {
	err := u.interviewTagRepo.Delete(ctx, interviewID, tagID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Tag is not attached to this interview")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
