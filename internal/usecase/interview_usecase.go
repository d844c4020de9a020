package usecase

import (
	"context"
	"errors"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const interviewEntity = "Interview"

type interviewUsecase struct {
	interviewRepo    domain.InterviewRepository
	interviewerRepo  domain.InterviewerRepository
	intervieweeRepo  domain.IntervieweeRepository
	jobRepo          domain.JobRepository
	businessAreaRepo domain.BusinessAreaRepository
	interviewTagRepo domain.InterviewTagRepository
	tagRepo          domain.TagRepository
}

// InterviewRepos groups the stores an interview read pulls from.
type InterviewRepos struct {
	Interviews    domain.InterviewRepository
	Interviewers  domain.InterviewerRepository
	Interviewees  domain.IntervieweeRepository
	Jobs          domain.JobRepository
	BusinessAreas domain.BusinessAreaRepository
	InterviewTags domain.InterviewTagRepository
	Tags          domain.TagRepository
}

func NewInterviewUsecase(repos InterviewRepos) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:    repos.Interviews,
		interviewerRepo:  repos.Interviewers,
		intervieweeRepo:  repos.Interviewees,
		jobRepo:          repos.Jobs,
		businessAreaRepo: repos.BusinessAreas,
		interviewTagRepo: repos.InterviewTags,
		tagRepo:          repos.Tags,
	}
}

func (u *interviewUsecase) Create(ctx context.Context, iv *domain.Interview) error {
	now := time.Now().UTC()
	iv.ID = uuid.NewString()
	iv.Interviewer = uniqueIDs(iv.Interviewer)
	iv.CreatedAt = now
	iv.UpdatedAt = now
	return storeError(interviewEntity, u.interviewRepo.Create(ctx, iv))
}

func (u *interviewUsecase) List(ctx context.Context) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (u *interviewUsecase) Filter(ctx context.Context, payload map[string]any) ([]domain.Interview, error) {
	filter, err := BuildInterviewFilter(payload)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	interviews, err := u.interviewRepo.Filter(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

func (u *interviewUsecase) Update(ctx context.Context, iv *domain.Interview) error {
	iv.Interviewer = uniqueIDs(iv.Interviewer)
	iv.UpdatedAt = time.Now().UTC()
	return storeError(interviewEntity, u.interviewRepo.Update(ctx, iv))
}

func (u *interviewUsecase) Delete(ctx context.Context, id string) error {
	return storeError(interviewEntity, u.interviewRepo.Delete(ctx, id))
}

// GetHydrated loads an interview and resolves its references. The lookups
// after the first read are independent and run concurrently without a shared
// snapshot, so related records may reflect slightly different moments.
func (u *interviewUsecase) GetHydrated(ctx context.Context, id string) (*domain.HydratedInterview, error) {
	iv, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(interviewEntity, err)
	}

	h := &domain.HydratedInterview{
		ID:        iv.ID,
		DateTime:  iv.DateTime,
		Duration:  iv.Duration,
		Location:  iv.Location,
		Status:    iv.Status,
		Notes:     iv.Notes,
		CreatedAt: iv.CreatedAt,
		UpdatedAt: iv.UpdatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := u.interviewerRepo.GetByIDs(gctx, iv.Interviewer)
		if err != nil {
			return err
		}
		h.Interviewer = orderInterviewers(iv.Interviewer, found)
		return nil
	})
	g.Go(func() (err error) {
		h.Interviewee, err = optionalLookup(gctx, iv.Interviewee, u.intervieweeRepo.GetByID)
		return err
	})
	g.Go(func() (err error) {
		h.Job, err = optionalLookup(gctx, iv.Job, u.jobRepo.GetByID)
		return err
	})
	g.Go(func() (err error) {
		h.BusinessArea, err = optionalLookup(gctx, iv.BusinessArea, u.businessAreaRepo.GetByID)
		return err
	})
	g.Go(func() (err error) {
		h.Tags, err = u.tagNames(gctx, iv.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}
	return h, nil
}

func (u *interviewUsecase) tagNames(ctx context.Context, interviewID string) ([]string, error) {
	links, err := u.interviewTagRepo.FetchByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	names := []string{}
	if len(links) == 0 {
		return names, nil
	}

	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}
	tags, err := u.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		names = append(names, tag.TagName)
	}
	return names, nil
}

// optionalLookup resolves a nullable reference. A nil id or a dangling one
// yields nil without error.
func optionalLookup[T any](ctx context.Context, id *string, get func(context.Context, string) (*T, error)) (*T, error) {
	if id == nil {
		return nil, nil
	}
	v, err := get(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// orderInterviewers arranges found in the order of ids, skipping ids that
// did not resolve.
func orderInterviewers(ids []string, found []domain.Interviewer) []domain.Interviewer {
	byID := make(map[string]domain.Interviewer, len(found))
	for _, iv := range found {
		byID[iv.ID] = iv
	}
	out := make([]domain.Interviewer, 0, len(ids))
	for _, id := range ids {
		if iv, ok := byID[id]; ok {
			out = append(out, iv)
		}
	}
	return out
}
