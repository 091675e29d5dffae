package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upstream errors
	ErrExternalService = errors.New("external service error")
)

// Employee errors
var (
	ErrEmployeeNotFound = NewResourceNotFoundError("employee_not_found")
)

// Card errors
var (
	ErrUnknownCard       = NewResourceNotFoundError("unknown_card")
	ErrCardNotFound      = NewResourceNotFoundError("card_not_found")
	ErrCardInactive      = NewBadRequestError("card_inactive")
	ErrCardAlreadyExists = NewConflictError("card_already_registered")
)

// Attendance errors
var (
	ErrAttendanceNotFound = NewResourceNotFoundError("attendance_not_found")
	ErrAlreadyClockedIn   = NewBadRequestError("already_clocked_in")
	ErrAlreadyClockedOut  = NewBadRequestError("already_clocked_out")
)

// Commute template errors
var (
	ErrCommuteTemplateNotFound = NewResourceNotFoundError("commute_template_not_found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewUnauthorizedError wraps ErrInvalidCredentials with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{
		Err:     ErrInvalidCredentials,
		Message: message,
	}
}

// Message returns the CustomError message carried by err, or fallback.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
