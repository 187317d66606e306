package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/hosteldesk/portal/pkg/constants"
)

// DecodeBody decodes and validates a JSON request body. When the payload is
// unusable it writes the error response itself and returns ok=false.
func DecodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var dto T
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = WriteError(w, http.StatusBadRequest, "malformed_body", "request body must be valid JSON", nil)
		return dto, false
	}
	if err := constants.Validate.Struct(dto); err != nil {
		_ = WriteError(w, http.StatusBadRequest, "validation", err.Error(), nil)
		return dto, false
	}
	return dto, true
}
