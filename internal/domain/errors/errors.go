package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for handlers to map to HTTP status. Each sentinel belongs
// to one of the taxonomy kinds: validation, unauthorized, conflict,
// not-found. Match with errors.Is.
var (
	// Validation (user-fixable input).
	ErrInvalidID        = errors.New("please enter a correct id")
	ErrNameRequired     = errors.New("project name is required")
	ErrTitleRequired    = errors.New("task title is required")
	ErrOwnerFromClient  = errors.New("you cannot pass the owner id")
	ErrMissingProjectID = errors.New("please enter a projectId")

	// Unauthorized (bearer credential problems).
	ErrTokenRequired = errors.New("token is required")
	ErrInvalidToken  = errors.New("invalid token")

	// Conflict (unique field already taken).
	ErrProjectExists = errors.New("project with this name already exists")
	ErrUserExists    = errors.New("user with this email already exists")

	// Not found.
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrUserNotFound    = errors.New("user not found")

	// Auth flows.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

// AggregateError reports a partial failure of a multi-step persist: one side
// of the project/tasks pair was written and the other failed. Already
// completed writes are not rolled back; the cause is carried for logging.
type AggregateError struct {
	Op  string
	Err error
}

// NewAggregateError wraps err as a partial-persist failure of op.
func NewAggregateError(op string, err error) *AggregateError {
	return &AggregateError{Op: op, Err: err}
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *AggregateError) Unwrap() error { return e.Err }

// IsAggregate reports whether err is (or wraps) an AggregateError.
func IsAggregate(err error) bool {
	var ae *AggregateError
	return errors.As(err, &ae)
}
