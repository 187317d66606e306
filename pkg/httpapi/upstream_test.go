package httpapi

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

func TestMapBackendError_RequestErrorKeepsStatusAndMessage(t *testing.T) {
	status, envelope := MapBackendError(&hostelapi.RequestError{Status: http.StatusConflict, Message: "room already assigned"})

	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "upstream_error", envelope.Code)
	require.Equal(t, "room already assigned", envelope.Message)
}

func TestMapBackendError_UnauthorizedGetsDedicatedCode(t *testing.T) {
	status, envelope := MapBackendError(&hostelapi.RequestError{Status: http.StatusUnauthorized, Message: "no active session"})

	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthenticated", envelope.Code)
}

func TestMapBackendError_ValidationErrorIsBadRequest(t *testing.T) {
	status, envelope := MapBackendError(hostelapi.ErrUserIDRequired)

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "validation", envelope.Code)
	require.Equal(t, "User ID is required", envelope.Message)
}

func TestMapBackendError_TransportFailureIsBadGateway(t *testing.T) {
	status, envelope := MapBackendError(errors.New("dial tcp: connection refused"))

	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, "upstream_unavailable", envelope.Code)
}

func TestMapBackendError_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := errors.Wrap(&hostelapi.RequestError{Status: http.StatusNotFound, Message: "not found"}, "fetch profile")

	status, envelope := MapBackendError(wrapped)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not found", envelope.Message)
}
