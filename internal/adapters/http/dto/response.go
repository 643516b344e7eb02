// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

// ActivityResponse represents a single activity in HTTP responses.
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityListResponse maps activity names to their details.
type ActivityListResponse map[string]ActivityResponse

// MessageResponse is the body returned by roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToActivityResponse converts a domain Activity to an HTTP response DTO.
// Participants is always a JSON array, never null.
func ToActivityResponse(a *activity.Activity) ActivityResponse {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return ActivityResponse{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToActivityListResponse converts the roster to an HTTP list response DTO.
func ToActivityListResponse(activities map[string]activity.Activity) ActivityListResponse {
	return lo.MapValues(activities, func(a activity.Activity, _ string) ActivityResponse {
		return ToActivityResponse(&a)
	})
}

// SignupMessage builds the confirmation for a successful signup.
func SignupMessage(name, email string) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)}
}

// UnregisterMessage builds the confirmation for a successful unregister.
func UnregisterMessage(name, email string) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf("Unregistered %s from %s", email, name)}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each checker name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes health check results. The second value is
// false when any check failed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
