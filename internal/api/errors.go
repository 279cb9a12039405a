package api

import (
	"errors"
	"net/http"

	"vms/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
// CapacityError shares 409 with ConflictError: both mean the request was
// well-formed but lost against the current ledger state.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var unauthenticated *domain.UnauthenticatedError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var capacity *domain.CapacityError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &capacity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
