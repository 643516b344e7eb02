// Package activity translates between the roster API's JSON representation
// of activities and the domain activity.Activity entity.
package activity

// ActivityDTO is one activity as served by GET /activities. The name is the
// key of the enclosing object, not a field.
type ActivityDTO struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityListDTO is the GET /activities body: activities keyed by name.
type ActivityListDTO map[string]ActivityDTO

// MessageDTO is the confirmation body returned by signup and unregister.
type MessageDTO struct {
	Message string `json:"message"`
}
