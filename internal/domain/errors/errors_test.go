package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	if ErrProjectExists == nil {
		t.Error("ErrProjectExists should not be nil")
	}
	if ErrUserExists == nil {
		t.Error("ErrUserExists should not be nil")
	}
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
}

func TestAggregateErrorWrapsCause(t *testing.T) {
	cause := errors.New("insert failed")
	err := NewAggregateError("creating project with tasks", cause)
	if got := err.Error(); got != "error creating project with tasks: insert failed" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("aggregate should unwrap to its cause")
	}
	if !IsAggregate(err) {
		t.Error("IsAggregate(direct) = false")
	}
	wrapped := fmt.Errorf("handler: %w", err)
	if !IsAggregate(wrapped) {
		t.Error("IsAggregate(wrapped) = false")
	}
	if IsAggregate(cause) {
		t.Error("IsAggregate(plain error) = true")
	}
}
