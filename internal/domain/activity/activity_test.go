package activity

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
)

func chessClub() Activity {
	return Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 3,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
}

// requireValidationField asserts err wraps domain.ErrValidation and the
// ValidationError carries the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestActivity_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid activity", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		if err := a.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		a.Name = "  "
		requireValidationField(t, a.Validate(), "name")
	})

	t.Run("zero capacity", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		a.MaxParticipants = 0
		requireValidationField(t, a.Validate(), "max_participants")
	})

	t.Run("over capacity", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		a.MaxParticipants = 1
		requireValidationField(t, a.Validate(), "participants")
	})

	t.Run("duplicate participants", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		a.Participants = []string{"a@x.edu", "a@x.edu"}
		requireValidationField(t, a.Validate(), "participants")
	})
}

func TestActivity_AddParticipant(t *testing.T) {
	t.Parallel()

	t.Run("adds new participant", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		if err := a.AddParticipant("test.user@example.com"); err != nil {
			t.Fatalf("AddParticipant() = %v, want nil", err)
		}
		if !a.HasParticipant("test.user@example.com") {
			t.Error("participant missing after AddParticipant")
		}
		if a.SpotsLeft() != 0 {
			t.Errorf("SpotsLeft() = %d, want 0", a.SpotsLeft())
		}
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		err := a.AddParticipant("michael@mergington.edu")
		if !errors.Is(err, ErrAlreadySignedUp) {
			t.Errorf("AddParticipant() = %v, want ErrAlreadySignedUp", err)
		}
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("AddParticipant() = %v, want it to wrap ErrConflict", err)
		}
		if len(a.Participants) != 2 {
			t.Errorf("len(Participants) = %d, want 2", len(a.Participants))
		}
	})

	t.Run("rejects when full", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		a.MaxParticipants = 2
		err := a.AddParticipant("new@mergington.edu")
		if !errors.Is(err, ErrActivityFull) {
			t.Errorf("AddParticipant() = %v, want ErrActivityFull", err)
		}
		if a.HasParticipant("new@mergington.edu") {
			t.Error("participant added to a full activity")
		}
	})
}

func TestActivity_RemoveParticipant(t *testing.T) {
	t.Parallel()

	t.Run("removes present participant", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		if err := a.RemoveParticipant("michael@mergington.edu"); err != nil {
			t.Fatalf("RemoveParticipant() = %v, want nil", err)
		}
		if a.HasParticipant("michael@mergington.edu") {
			t.Error("participant still present after RemoveParticipant")
		}
		if len(a.Participants) != 1 || a.Participants[0] != "daniel@mergington.edu" {
			t.Errorf("Participants = %v, want [daniel@mergington.edu]", a.Participants)
		}
	})

	t.Run("absent participant", func(t *testing.T) {
		t.Parallel()
		a := chessClub()
		err := a.RemoveParticipant("noone@example.com")
		if !errors.Is(err, ErrParticipantNotFound) {
			t.Errorf("RemoveParticipant() = %v, want ErrParticipantNotFound", err)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RemoveParticipant() = %v, want it to wrap ErrNotFound", err)
		}
	})
}

func TestActivity_Clone(t *testing.T) {
	t.Parallel()

	a := chessClub()
	c := a.Clone()
	c.Participants[0] = "changed@example.com"

	if a.Participants[0] != "michael@mergington.edu" {
		t.Error("mutating the clone changed the original roster")
	}

	empty := Activity{Name: "Empty", MaxParticipants: 1}
	if got := empty.Clone().Participants; got == nil {
		t.Error("Clone() of empty roster returned nil Participants, want empty slice")
	}
}

func TestActivity_SpotsLeftNeverNegative(t *testing.T) {
	t.Parallel()

	a := chessClub()
	a.MaxParticipants = 1
	if got := a.SpotsLeft(); got != 0 {
		t.Errorf("SpotsLeft() = %d, want 0", got)
	}
}
