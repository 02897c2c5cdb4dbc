// Package apierrors provides the typed errors the interaction layer raises
// for business rule violations. Every error carries an HTTP-ish status code
// so the REST layer can map it without string matching, and a details string
// with the exact user-facing reason.
package apierrors

import (
	"errors"
	"net/http"
)

type Status struct {
	Code    int
	Message string
	Details string
}

// APIStatus is implemented by every error constructed in this package.
type APIStatus interface {
	Status() Status
}

type StatusError struct {
	errStatus Status
}

var _ error = (*StatusError)(nil)
var _ APIStatus = (*StatusError)(nil)

func (e *StatusError) Error() string {
	if e.errStatus.Details != "" {
		return e.errStatus.Details
	}

	return e.errStatus.Message
}

func (e *StatusError) Status() Status {
	return e.errStatus
}

func NewBadRequest(details string) *StatusError {
	return newStatusError(http.StatusBadRequest, "invalid request", details)
}

func NewUnauthorized(details string) *StatusError {
	return newStatusError(http.StatusUnauthorized, "authorization required", details)
}

func NewForbidden(details string) *StatusError {
	return newStatusError(http.StatusForbidden, "operation not allowed", details)
}

func NewNotFound(details string) *StatusError {
	return newStatusError(http.StatusNotFound, "resource not found", details)
}

func NewConflict(details string) *StatusError {
	return newStatusError(http.StatusConflict, "conflicting state", details)
}

// NewServiceUnavailable is used for store-detected contention such as
// deadlocks or lock wait timeouts. Callers may retry these.
func NewServiceUnavailable(details string) *StatusError {
	return newStatusError(http.StatusServiceUnavailable, "temporarily unavailable", details)
}

func NewInternalServerError(details string) *StatusError {
	return newStatusError(http.StatusInternalServerError, "unexpected error", details)
}

func newStatusError(code int, message, details string) *StatusError {
	return &StatusError{
		errStatus: Status{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// AsAPIStatus returns the status carrier within err's chain, or nil if the
// error did not originate from this package.
func AsAPIStatus(err error) APIStatus {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}

	return nil
}

func IsBadRequestError(err error) bool {
	return hasStatusCode(err, http.StatusBadRequest)
}

func IsUnauthorizedError(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized)
}

func IsForbiddenError(err error) bool {
	return hasStatusCode(err, http.StatusForbidden)
}

func IsNotFoundError(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsConflictError(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

func IsServiceUnavailableError(err error) bool {
	return hasStatusCode(err, http.StatusServiceUnavailable)
}

func IsInternalServerError(err error) bool {
	return hasStatusCode(err, http.StatusInternalServerError)
}

// IsRetryable reports whether the failure is transient store contention
// that the caller may retry, as opposed to a business rejection.
func IsRetryable(err error) bool {
	return IsServiceUnavailableError(err)
}

func hasStatusCode(err error, code int) bool {
	if status := AsAPIStatus(err); status != nil {
		return status.Status().Code == code
	}

	return false
}
