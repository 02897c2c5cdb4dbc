package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusErrorCarriesCodeAndDetails(t *testing.T) {
	tests := []struct {
		name         string
		err          *StatusError
		expectedCode int
		predicate    func(error) bool
	}{
		{name: "bad request", err: NewBadRequest("bad input"), expectedCode: http.StatusBadRequest, predicate: IsBadRequestError},
		{name: "unauthorized", err: NewUnauthorized("no token"), expectedCode: http.StatusUnauthorized, predicate: IsUnauthorizedError},
		{name: "forbidden", err: NewForbidden("not yours"), expectedCode: http.StatusForbidden, predicate: IsForbiddenError},
		{name: "not found", err: NewNotFound("gone"), expectedCode: http.StatusNotFound, predicate: IsNotFoundError},
		{name: "conflict", err: NewConflict("already done"), expectedCode: http.StatusConflict, predicate: IsConflictError},
		{name: "service unavailable", err: NewServiceUnavailable("contention"), expectedCode: http.StatusServiceUnavailable, predicate: IsServiceUnavailableError},
		{name: "internal", err: NewInternalServerError("boom"), expectedCode: http.StatusInternalServerError, predicate: IsInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expectedCode, tt.err.Status().Code)
			require.True(t, tt.predicate(tt.err))
			require.False(t, IsBadRequestError(tt.err) && tt.expectedCode != http.StatusBadRequest)
		})
	}
}

func TestErrorStringPrefersDetails(t *testing.T) {
	require.EqualError(t, NewConflict("This invoice has already been paid"), "This invoice has already been paid")
	require.EqualError(t, NewConflict(""), "conflicting state")
}

func TestAsAPIStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while paying: %w", NewNotFound("Invoice not found"))

	status := AsAPIStatus(wrapped)
	require.NotNil(t, status)
	require.Equal(t, http.StatusNotFound, status.Status().Code)
	require.True(t, IsNotFoundError(wrapped))
}

func TestAsAPIStatusIgnoresForeignErrors(t *testing.T) {
	require.Nil(t, AsAPIStatus(errors.New("plain failure")))
	require.Nil(t, AsAPIStatus(nil))
	require.False(t, IsConflictError(errors.New("plain failure")))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(NewServiceUnavailable("deadlock")))
	require.False(t, IsRetryable(NewConflict("already paid")))
	require.False(t, IsRetryable(errors.New("plain failure")))
}
