package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Admin authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Semester errors
var (
	ErrSemesterNotFound     = errors.New("semester not found")
	ErrSemesterNumberExists = errors.New("semester with this number already exists")
	ErrSemesterNumberRange  = errors.New("semester number must be between 1 and 8")
)

// Subject errors
var (
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrSubjectCodeExists = errors.New("subject with this code already exists")
)

// Note errors
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrNoteHasNoFile = errors.New("note has no file attached")
	ErrFileMissing   = errors.New("stored file missing on disk")
)

// Rating errors
var (
	ErrDuplicateRating = errors.New("a rating by this email already exists for the note")
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")
)

// CustomError carries additional context for application errors.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a field-level message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}
