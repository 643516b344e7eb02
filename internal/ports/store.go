package ports

import (
	"context"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
)

// RosterStore defines the storage port for activity rosters.
// Implemented by storage adapters; called by the application layer.
// Every method returns copies, so callers never alias stored rosters.
type RosterStore interface {
	// List returns every stored activity keyed by name.
	List(ctx context.Context) (map[string]activity.Activity, error)

	// Get returns the named activity.
	// Returns activity.ErrActivityNotFound if it does not exist.
	Get(ctx context.Context, name string) (*activity.Activity, error)

	// AddParticipant adds email to the named activity as one atomic
	// check-then-mutate step and returns the updated activity.
	// Returns activity.ErrActivityNotFound, activity.ErrAlreadySignedUp or
	// activity.ErrActivityFull.
	AddParticipant(ctx context.Context, name, email string) (*activity.Activity, error)

	// RemoveParticipant removes email from the named activity as one atomic
	// check-then-mutate step and returns the updated activity.
	// Returns activity.ErrActivityNotFound or activity.ErrParticipantNotFound.
	RemoveParticipant(ctx context.Context, name, email string) (*activity.Activity, error)
}
