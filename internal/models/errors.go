package models

import "fmt"

// Error codes carried by AppError. Handlers use these to pick the flash
// message and redirect target; repositories and services use the
// constructors below instead of raw errors.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidState       = "INVALID_STATE"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// NewValidationError reports malformed or missing input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewDuplicateEmailError reports a registration attempt with an email that
// is already taken.
func NewDuplicateEmailError(email string) *AppError {
	return &AppError{
		Code:    CodeDuplicateEmail,
		Message: fmt.Sprintf("Email %s is already registered", email),
	}
}

// NewInvalidCredentialsError reports a failed login. The message never says
// whether the email or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid email or password"}
}

// NewAuthRequiredError reports access to a protected page without a valid session.
func NewAuthRequiredError() *AppError {
	return &AppError{Code: CodeAuthRequired, Message: "Please log in to continue"}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewUnauthorizedError reports an ownership or actor violation.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewInvalidStateError reports an operation on a record whose status forbids it.
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: message}
}

// NewInternalError wraps an unexpected failure from a lower layer.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}
