// Package errors provides standardized error handling for the activities API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound  ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	ErrCodeNotRegistered     ErrorCode = "NOT_REGISTERED"
	ErrCodeMissingEmail      ErrorCode = "MISSING_EMAIL"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// ServiceError represents a structured application error.
type ServiceError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError reports a signup or unregister against an
// activity name missing from the registry.
func NewActivityNotFoundError(activity string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError reports a duplicate signup.
func NewAlreadyRegisteredError(email, activity string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeAlreadyRegistered,
		Message:   "Student is already registered for this activity",
		Details:   fmt.Sprintf("email: %s, activity: %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports an unregister for an email not on the roster.
func NewNotRegisteredError(email, activity string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeNotRegistered,
		Message:   "Student is not registered for this activity",
		Details:   fmt.Sprintf("email: %s, activity: %s", email, activity),
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingEmailError reports a request without the email query parameter.
func NewMissingEmailError() *ServiceError {
	return &ServiceError{
		Code:      ErrCodeMissingEmail,
		Message:   "email query parameter is required",
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound:  http.StatusNotFound,
	ErrCodeAlreadyRegistered: http.StatusBadRequest,
	ErrCodeNotRegistered:     http.StatusBadRequest,
	ErrCodeMissingEmail:      http.StatusBadRequest,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError checks if an error code maps to a 4xx response.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatus(code)
	return status >= 400 && status < 500
}
