// Package acl is the anti-corruption layer in front of a remote roster API.
// It owns the request lifecycle and turns the API's problem responses back
// into domain errors; the wire types and their translators live in
// acl/activity.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 1 << 20

// codeConflict in the problem "code" member marks a 400 as a roster conflict.
const codeConflict = "conflict"

// rosterSentinels are returned as-is when a problem detail carries their
// exact text, so callers keep the unknown-activity and absent-participant
// distinction across the wire.
var rosterSentinels = []error{
	activity.ErrActivityNotFound,
	activity.ErrParticipantNotFound,
	activity.ErrAlreadySignedUp,
	activity.ErrActivityFull,
}

// statusSentinels maps the statuses the roster API uses onto domain errors.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
}

// problemDetail is the subset of an RFC 9457 body the client reads. A plain
// {"detail": "..."} body decodes into it too.
type problemDetail struct {
	Detail string        `json:"detail"`
	Code   string        `json:"code"`
	Errors []fieldDetail `json:"errors"`
}

type fieldDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-2xx roster API response to a domain error.
// JSON and problem+json bodies are inspected; a detail naming a roster
// sentinel yields that sentinel, field errors on a 400 or 422 yield a
// *domain.ValidationError and a 400 with code "conflict" yields
// domain.ErrConflict. Anything else is mapped by status.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)
	for _, s := range rosterSentinels {
		if pd.Detail != "" && pd.Detail == s.Error() {
			return s
		}
	}

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusSentinels[resp.StatusCode]
	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		sentinel, ok = domain.ErrUnavailable, true
	case sentinel == domain.ErrValidation && pd.Code == codeConflict:
		sentinel = domain.ErrConflict
	case sentinel == domain.ErrValidation && len(pd.Errors) > 0:
		return fieldErrors(pd.Errors)
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// readProblem returns the zero problemDetail for bodies that are missing,
// not JSON, oversized or malformed.
func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil {
		return pd
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && mt != "application/problem+json") {
		return pd
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || json.Unmarshal(body, &pd) != nil {
		return problemDetail{}
	}
	return pd
}

// fieldErrors keys each failure by its location without the "query." or
// "body." prefix.
func fieldErrors(details []fieldDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		name := d.Location
		for _, prefix := range []string{"query.", "body."} {
			name = strings.TrimPrefix(name, prefix)
		}
		fields[name] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
