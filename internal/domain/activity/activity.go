// Package activity defines the Activity entity and the roster rules that
// govern who may join or leave it.
package activity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Roster sentinel errors. Each wraps a domain sentinel so the HTTP edge can
// classify them with errors.Is without knowing about activities.
var (
	ErrActivityNotFound    = fmt.Errorf("activity %w", domain.ErrNotFound)
	ErrParticipantNotFound = fmt.Errorf("participant %w", domain.ErrNotFound)
	ErrAlreadySignedUp     = fmt.Errorf("participant already signed up: %w", domain.ErrConflict)
	ErrActivityFull        = fmt.Errorf("activity is full: %w", domain.ErrConflict)
)

// Activity is a named extracurricular activity with a participant roster.
// Participants holds emails in signup order; each email appears at most once.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Validate checks the static fields of an activity loaded from seed data.
// Returns a *domain.ValidationError with per-field details, or nil.
func (a *Activity) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = msgRequired
	}
	if a.MaxParticipants < 1 {
		fields["max_participants"] = "must be >= 1"
	}
	if len(a.Participants) > a.MaxParticipants && a.MaxParticipants >= 1 {
		fields["participants"] = fmt.Sprintf("exceeds max_participants (%d)", a.MaxParticipants)
	}
	if len(lo.Uniq(a.Participants)) != len(a.Participants) {
		fields["participants"] = "must not contain duplicates"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return lo.Contains(a.Participants, email)
}

// SpotsLeft returns the number of open places, never negative.
func (a *Activity) SpotsLeft() int {
	return max(a.MaxParticipants-len(a.Participants), 0)
}

// IsFull reports whether the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return a.SpotsLeft() == 0
}

// AddParticipant appends email to the roster.
// Returns ErrAlreadySignedUp when email is present and ErrActivityFull when
// no spots are left. The roster is unchanged on error.
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if a.IsFull() {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant drops email from the roster.
// Returns ErrParticipantNotFound when email is not signed up.
func (a *Activity) RemoveParticipant(email string) error {
	idx := lo.IndexOf(a.Participants, email)
	if idx < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}

// Clone returns a deep copy so callers cannot mutate a stored roster.
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return c
}

