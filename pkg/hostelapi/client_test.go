package hostelapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "   ", "not-a-url", "/relative/path"} {
		_, err := New(Options{BaseURL: baseURL})
		require.Error(t, err, "base URL %q", baseURL)
	}
}

func TestDo_ErrorWithoutBodyGetsSynthesizedMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.VerifySession(context.Background(), "abc")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusNotFound, reqErr.Status)
	require.Equal(t, "request failed with status 404", reqErr.Message)
}

func TestDo_ErrorBodyMessageIsPreserved(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "x"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusUnauthorized, reqErr.Status)
	require.Equal(t, "Invalid credentials", reqErr.Message)
}

func TestDo_ForwardsSessionCookie(t *testing.T) {
	var gotSid string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("sid"); err == nil {
			gotSid = cookie.Value
		}
		_, _ = w.Write([]byte(`{"user": {"userId": "u1", "role": "student"}}`))
	}))

	_, err := client.VerifySession(context.Background(), "session-value")
	require.NoError(t, err)
	require.Equal(t, "session-value", gotSid)
}
