package usecase

import (
	"errors"
	"fmt"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
)

// referenceFields maps foreign key constraints to the request field that
// carried the dangling id.
var referenceFields = map[string]string{
	"interviewers_business_area_id_fkey":         "business_area_id",
	"interviews_business_area_fkey":              "business_area",
	"interviews_job_fkey":                        "job",
	"interviews_interviewee_fkey":                "interviewee",
	"interview_interviewers_interviewer_id_fkey": "interviewer",
	"interview_tags_tag_id_fkey":                 "tag_id",
	"interview_tags_interview_id_fkey":           "interview_id",
}

// storeError translates a repository error into the API error for entity.
func storeError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(entity + " not found")
	case errors.Is(err, domain.ErrConflict):
		return apperror.Conflict(entity + " already exists")
	case errors.Is(err, domain.ErrInvalidReference):
		return apperror.Validation(referenceDetail(err))
	default:
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperror.Internal(err)
	}
}

func referenceDetail(err error) string {
	if field, ok := referenceFields[domain.ConstraintOf(err)]; ok {
		return fmt.Sprintf("%q references a record that does not exist", field)
	}
	return "request references a record that does not exist"
}
