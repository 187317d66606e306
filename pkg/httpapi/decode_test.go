package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeBody_ValidPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email": "a@b.io", "password": "secret"}`))

	dto, ok := DecodeBody[loginPayload](rec, req)
	require.True(t, ok)
	require.Equal(t, "a@b.io", dto.Email)
}

func TestDecodeBody_MalformedJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email": `))

	_, ok := DecodeBody[loginPayload](rec, req)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "malformed_body", envelope.Code)
}

func TestDecodeBody_ValidationFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email": "not-an-email", "password": ""}`))

	_, ok := DecodeBody[loginPayload](rec, req)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "validation", envelope.Code)
}
