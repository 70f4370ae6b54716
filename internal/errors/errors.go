package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these (wrapped with context) and the API layer maps them to
// HTTP responses with `errors.Is()`.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource (e.g., signing up with
	// an e-mail address that is already registered).
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the caller is not allowed to perform the
	// requested action.
	// This is typically mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("permission denied")

	// ErrUnauthorized signifies missing or invalid credentials.
	// This is typically mapped to a 401 Unauthorized HTTP status.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrQuotaExceeded signifies that a guest has used up the message quota.
	// This is typically mapped to a 429 Too Many Requests HTTP status.
	ErrQuotaExceeded = errors.New("guest message quota exceeded")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// QuotaError is returned when a guest message is rejected by the quota policy.
// It unwraps to ErrQuotaExceeded.
type QuotaError struct {
	Reason string
	Count  int
	Limit  int
}

func (e *QuotaError) Error() string {
	return ErrQuotaExceeded.Error() + ": " + e.Reason
}

func (e *QuotaError) Unwrap() error { return ErrQuotaExceeded }

// PublicError pairs a sentinel with a message that is safe to show to the
// visitor as-is.
type PublicError struct {
	Kind    error
	Message string
}

// Public wraps kind with a user-facing message.
func Public(kind error, message string) error {
	return &PublicError{Kind: kind, Message: message}
}

func (e *PublicError) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *PublicError) Unwrap() error { return e.Kind }
