package v1

import (
	"interview-tracker/pkg/apperror"
	"interview-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes and validates the body into req. On failure it records a
// validation error naming the first offending field and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(apperror.Validation(validation.FirstError(err)))
		return false
	}
	return true
}

// pathID returns the named path parameter when it is a UUID.
func pathID(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid ID format"))
		return "", false
	}
	return id.String(), true
}
