package httpapi

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/hosteldesk/portal/pkg/hostelapi"
)

// MapBackendError translates a hostelapi failure into an envelope. Backend
// rejections keep their status and message; client-side validation failures
// are 400s; transport failures become a 502.
func MapBackendError(err error) (int, *ErrorEnvelope) {
	var reqErr *hostelapi.RequestError
	if errors.As(err, &reqErr) {
		code := "upstream_error"
		if reqErr.Status == http.StatusUnauthorized {
			code = "unauthenticated"
		}
		return reqErr.Status, &ErrorEnvelope{Code: code, Message: reqErr.Message}
	}
	var valErr *hostelapi.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, &ErrorEnvelope{Code: "validation", Message: valErr.Message}
	}
	return http.StatusBadGateway, &ErrorEnvelope{Code: "upstream_unavailable", Message: "hostel backend unreachable"}
}

func WriteBackendError(w http.ResponseWriter, err error) error {
	status, envelope := MapBackendError(err)
	return WriteJSON(w, status, envelope)
}
