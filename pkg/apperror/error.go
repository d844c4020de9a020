package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports a rejected request payload. detail names the first
// offending field.
func Validation(detail string) *AppError {
	e := New(http.StatusBadRequest, "Validation Error", nil)
	e.Detail = detail
	return e
}

// Conflict is returned for duplicate unique fields. Clients get a 400, not a
// 409, to match the public API contract.
func Conflict(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// InvalidCredentials carries the same message for an unknown email and a wrong
// password.
func InvalidCredentials() *AppError {
	return New(http.StatusBadRequest, "Invalid credentials", nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal wraps an unexpected failure. The underlying message is surfaced to
// the caller in Detail.
func Internal(err error) *AppError {
	e := New(http.StatusInternalServerError, "Internal Server Error", err)
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}
