package main

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	adapthttp "github.com/jsamuelsen11/activity-roster/internal/adapters/http"
	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/activity-roster/internal/adapters/memory"
	"github.com/jsamuelsen11/activity-roster/internal/app"
	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
	"github.com/jsamuelsen11/activity-roster/internal/platform/health"
)

func newRosterServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := memory.NewRosterStore([]activity.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 1,
			Participants:    []string{},
		},
	})
	if err != nil {
		t.Fatalf("NewRosterStore() error = %v", err)
	}
	svc := app.NewRosterService(store, nil, nil)
	ts := httptest.NewServer(adapthttp.NewRouter(handlers.NewActivityHandler(svc), handlers.NewHealthHandler(health.New())))
	t.Cleanup(ts.Close)
	return ts
}

func execute(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--base-url", baseURL, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	t.Parallel()
	ts := newRosterServer(t)

	out, err := execute(t, ts.URL, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	for _, want := range []string{"ACTIVITY", "Chess Club", "michael@mergington.edu", "Art Club"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Art Club") > strings.Index(out, "Chess Club") {
		t.Errorf("activities not sorted by name:\n%s", out)
	}
}

func TestShow(t *testing.T) {
	t.Parallel()
	ts := newRosterServer(t)

	out, err := execute(t, ts.URL, "show", "Chess Club")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "Participants: 1/12") {
		t.Errorf("show output = %q, want participant count", out)
	}
}

func TestSignupAndUnregister(t *testing.T) {
	t.Parallel()
	ts := newRosterServer(t)

	out, err := execute(t, ts.URL, "signup", "Art Club", "emma@mergington.edu")
	if err != nil {
		t.Fatalf("signup error = %v", err)
	}
	if !strings.Contains(out, "Signed up emma@mergington.edu for Art Club (spots left: 0)") {
		t.Errorf("signup output = %q", out)
	}

	_, err = execute(t, ts.URL, "signup", "Art Club", "sophie@mergington.edu")
	if !errors.Is(err, activity.ErrActivityFull) {
		t.Errorf("signup on full activity error = %v, want ErrActivityFull", err)
	}

	out, err = execute(t, ts.URL, "unregister", "Art Club", "emma@mergington.edu")
	if err != nil {
		t.Fatalf("unregister error = %v", err)
	}
	if !strings.Contains(out, "Unregistered emma@mergington.edu from Art Club (spots left: 1)") {
		t.Errorf("unregister output = %q", out)
	}
}

func TestShow_UnknownActivity(t *testing.T) {
	t.Parallel()
	ts := newRosterServer(t)

	_, err := execute(t, ts.URL, "show", "Underwater Basket Weaving")
	if !errors.Is(err, activity.ErrActivityNotFound) {
		t.Errorf("show error = %v, want ErrActivityNotFound", err)
	}
}

func TestArgsValidated(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "http://127.0.0.1:0", "signup", "Chess Club"); err == nil {
		t.Error("signup with one arg succeeded, want error")
	}
}
