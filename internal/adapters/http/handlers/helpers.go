package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/activity-roster/internal/domain"
	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
)

// pathParam returns the decoded value of a chi URL parameter. chi routes on
// RawPath when the request has escapes such as %2F, and then hands back the
// still-encoded segment.
func pathParam(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.NewValidationError(param, "invalid path encoding")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// validateRequest writes a problem response and returns false when dst is
// invalid.
func validateRequest[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeParticipant reads the {name} segment and the email query parameter
// shared by signup and unregister. On failure the problem response is
// already written and ok is false.
func decodeParticipant(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return "", "", false
	}

	q := dto.ParseParticipantQuery(r)
	if !validateRequest(w, r, &q) {
		return "", "", false
	}
	return name, q.Email, true
}
