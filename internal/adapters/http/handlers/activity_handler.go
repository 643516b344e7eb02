// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

// ActivityHandler handles HTTP requests for the activity roster.
type ActivityHandler struct {
	svc ports.RosterService
}

// NewActivityHandler creates a new ActivityHandler with the given service port.
func NewActivityHandler(svc ports.RosterService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListActivities handles GET /activities.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActivityListResponse(activities))
}

// GetActivity handles GET /activities/{name}.
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	a, err := h.svc.GetActivity(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActivityResponse(a))
}

// Signup handles POST /activities/{name}/signup?email=.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := decodeParticipant(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Signup(r.Context(), name, email); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SignupMessage(name, email))
}

// Unregister handles DELETE /activities/{name}/participants?email=.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := decodeParticipant(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Unregister(r.Context(), name, email); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.UnregisterMessage(name, email))
}
