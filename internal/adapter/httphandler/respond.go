package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// SessionHeader carries the shopper identity. Absent header means a
// guest session shared by all anonymous requests.
const SessionHeader = "Cocoa-Session"

const guestSession = "guest"

var validate = validator.New(validator.WithRequiredStructEnabled())

func sessionID(r *http.Request) string {
	if s := r.Header.Get(SessionHeader); s != "" {
		return s
	}
	return guestSession
}

func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, "invalid request data", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
