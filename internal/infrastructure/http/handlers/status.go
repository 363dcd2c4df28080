package handlers

import (
	"errors"
	"net/http"

	domerrors "taskboard/internal/domain/errors"
)

// statusFor maps a domain error to its HTTP status and stable error code.
// Unknown errors are internal.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidID),
		errors.Is(err, domerrors.ErrNameRequired),
		errors.Is(err, domerrors.ErrTitleRequired),
		errors.Is(err, domerrors.ErrOwnerFromClient),
		errors.Is(err, domerrors.ErrMissingProjectID):
		return http.StatusBadRequest, ErrCodeInvalidRequest
	case errors.Is(err, domerrors.ErrTokenRequired),
		errors.Is(err, domerrors.ErrInvalidToken):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, domerrors.ErrProjectExists),
		errors.Is(err, domerrors.ErrUserExists):
		return http.StatusUnprocessableEntity, ErrCodeConflict
	case errors.Is(err, domerrors.ErrProjectNotFound),
		errors.Is(err, domerrors.ErrTaskNotFound),
		errors.Is(err, domerrors.ErrUserNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case domerrors.IsAggregate(err):
		return http.StatusInternalServerError, ErrCodeInternal
	}
	return http.StatusInternalServerError, ErrCodeInternal
}
