package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error messages surfaced to API clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested ID
	ErrPizzaNotFound = errors.New("pizza not found")
)

// Violation is a single failed validation check
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError carries every violation found while validating a request.
// Clients only ever see the generic message; the violations are for logs and tests.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorResponse is the body returned for not found and server errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a request fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a new single error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates the generic validation error body
func NewValidationErrorResponse() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
