package ports

import (
	"context"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

// RosterService defines the service port for activity roster operations.
// Implemented by the application layer (and by the remote API client);
// called by inbound adapters (handlers, CLI).
type RosterService interface {
	// ListActivities returns every activity keyed by name, participants included.
	ListActivities(ctx context.Context) (map[string]activity.Activity, error)

	// GetActivity returns a single activity by name.
	// Returns domain.ErrNotFound if the activity does not exist.
	GetActivity(ctx context.Context, name string) (*activity.Activity, error)

	// Signup adds email to the named activity and returns the updated activity.
	// Returns domain.ErrNotFound if the activity does not exist,
	// domain.ErrConflict if email is already signed up or the activity is full,
	// and domain.ErrValidation if email is blank.
	Signup(ctx context.Context, name, email string) (*activity.Activity, error)

	// Unregister removes email from the named activity and returns the updated
	// activity. Returns domain.ErrNotFound if the activity does not exist or
	// email is not signed up, and domain.ErrValidation if email is blank.
	Unregister(ctx context.Context, name, email string) (*activity.Activity, error)
}
