package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidRequest     = errors.New("invalid request payload")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden access")
	ErrContestNotFound    = errors.New("contest not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrContestNotActive   = errors.New("contest is not active")
	ErrAlreadySubmitted   = errors.New("answer already submitted")
	ErrInternalServer     = errors.New("internal server error")
)

// ErrorCodeFromError maps domain errors to the wire-level error codes the API
// contract fixes for each failure.
func ErrorCodeFromError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "INVALID_REQUEST"
	case errors.Is(err, ErrEmailAlreadyExists):
		return "EMAIL_ALREADY_EXISTS"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrContestNotFound):
		return "CONTEST_NOT_FOUND"
	case errors.Is(err, ErrQuestionNotFound):
		return "QUESTION_NOT_FOUND"
	case errors.Is(err, ErrProblemNotFound):
		return "PROBLEM_NOT_FOUND"
	case errors.Is(err, ErrContestNotActive):
		return "CONTEST_NOT_ACTIVE"
	case errors.Is(err, ErrAlreadySubmitted):
		return "ALREADY_SUBMITTED"
	}
	return "INTERNAL_SERVER_ERROR"
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrContestNotActive),
		errors.Is(err, ErrAlreadySubmitted):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrContestNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrProblemNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
