// Package memory provides the in-memory roster store. It is populated once
// from seed data and mutated only through participant signups and removals.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RosterStore   = (*RosterStore)(nil)
	_ ports.HealthChecker = (*RosterStore)(nil)
)

// RosterStore is a mutex-guarded implementation of [ports.RosterStore].
// Activity keys are fixed at construction; only rosters change afterwards.
type RosterStore struct {
	mu         sync.RWMutex
	activities map[string]*activity.Activity
}

// NewRosterStore creates a store holding a copy of the given seed activities.
// Every activity must pass Validate and names must be unique.
func NewRosterStore(seed []activity.Activity) (*RosterStore, error) {
	activities := make(map[string]*activity.Activity, len(seed))
	for i := range seed {
		a := seed[i].Clone()
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
		if _, dup := activities[a.Name]; dup {
			return nil, fmt.Errorf("seed activity %q: duplicate name", a.Name)
		}
		activities[a.Name] = &a
	}
	return &RosterStore{activities: activities}, nil
}

// List returns a deep copy of every activity keyed by name.
func (s *RosterStore) List(_ context.Context) (map[string]activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.MapValues(s.activities, func(a *activity.Activity, _ string) activity.Activity {
		return a.Clone()
	}), nil
}

// Get returns a copy of the named activity.
func (s *RosterStore) Get(_ context.Context, name string) (*activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, activity.ErrActivityNotFound
	}
	c := a.Clone()
	return &c, nil
}

// AddParticipant signs email up for the named activity.
func (s *RosterStore) AddParticipant(_ context.Context, name, email string) (*activity.Activity, error) {
	return s.mutate(name, func(a *activity.Activity) error {
		return a.AddParticipant(email)
	})
}

// RemoveParticipant drops email from the named activity.
func (s *RosterStore) RemoveParticipant(_ context.Context, name, email string) (*activity.Activity, error) {
	return s.mutate(name, func(a *activity.Activity) error {
		return a.RemoveParticipant(email)
	})
}

// mutate runs fn against the named activity under the write lock and returns
// a copy of the result. fn leaves the roster untouched when it fails.
func (s *RosterStore) mutate(name string, fn func(*activity.Activity) error) (*activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, activity.ErrActivityNotFound
	}
	if err := fn(a); err != nil {
		return nil, err
	}
	c := a.Clone()
	return &c, nil
}

// Name returns the identifier used when registering with a [ports.HealthRegistry].
func (s *RosterStore) Name() string {
	return "roster-store"
}

// HealthCheck always succeeds while ctx is live; the store has no external
// dependency that can fail.
func (s *RosterStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
