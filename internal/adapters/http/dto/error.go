package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
)

// Problem codes carried in the "code" extension member. Clients use them to
// tell apart errors that share an HTTP status.
const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodeConflict    = "conflict"
	CodeForbidden   = "forbidden"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal"
	CodeTimeout     = "timeout"
)

const (
	problemType        = "about:blank"
	problemContentType = "application/problem+json"
	internalDetail     = "an unexpected error occurred"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Code     string        `json:"code,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field failure inside an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemMappings is checked in order; the first sentinel matched by
// errors.Is decides the status. A roster conflict is a 400, not a 409.
var problemMappings = []struct {
	sentinel error
	status   int
	code     string
}{
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrConflict, http.StatusBadRequest, CodeConflict},
	{domain.ErrUnavailable, http.StatusBadGateway, CodeUnavailable},
}

// NewErrorResponse maps err onto a problem for r. The detail is the error
// text, except for unmapped errors which get a generic message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := problem(r, http.StatusInternalServerError, CodeInternal, internalDetail)
	for _, m := range problemMappings {
		if errors.Is(err, m.sentinel) {
			resp = problem(r, m.status, m.code, err.Error())
			break
		}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem for a domain error.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem that has no domain error behind it, such as
// a request timeout.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	writeProblem(w, r, problem(r, status, code, detail))
}

func problem(r *http.Request, status int, code, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
		Code:     code,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// fieldDetails orders field failures by location. Roster inputs all arrive
// in the query string.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "query." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
