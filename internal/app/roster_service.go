// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/activity-roster/internal/domain"
	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
	"github.com/jsamuelsen11/activity-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

// Compile-time check that RosterService implements ports.RosterService.
var _ ports.RosterService = (*RosterService)(nil)

// Metric result labels.
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultConflict = "conflict"
	resultInvalid  = "invalid"
	resultError    = "error"
)

// RosterService implements ports.RosterService on top of a RosterStore. It
// validates input, logs every use case and records roster metrics. The
// roster rules themselves live in the activity package.
type RosterService struct {
	store   ports.RosterStore
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewRosterService creates a RosterService. A nil metrics disables metric
// recording; a nil logger discards log output.
func NewRosterService(store ports.RosterStore, metrics *telemetry.Metrics, logger *slog.Logger) *RosterService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RosterService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// ListActivities returns every activity keyed by name.
func (s *RosterService) ListActivities(ctx context.Context) (map[string]activity.Activity, error) {
	s.logger.DebugContext(ctx, "listing activities")

	activities, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list activities",
			slog.String("operation", "ListActivities"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return activities, nil
}

// GetActivity returns a single activity by name.
func (s *RosterService) GetActivity(ctx context.Context, name string) (*activity.Activity, error) {
	s.logger.DebugContext(ctx, "fetching activity", slog.String("activity", name))

	a, err := s.store.Get(ctx, name)
	if err != nil {
		s.logError(ctx, "failed to fetch activity", "GetActivity", name, "", err)
		return nil, err
	}

	return a, nil
}

// Signup adds email to the named activity.
func (s *RosterService) Signup(ctx context.Context, name, email string) (*activity.Activity, error) {
	s.logger.InfoContext(ctx, "signing up participant",
		slog.String("activity", name),
		logging.Email(email),
	)

	if err := validateEmail(email); err != nil {
		s.record(ctx, s.signupCounter(), name, err)
		return nil, err
	}

	a, err := s.store.AddParticipant(ctx, name, email)
	s.record(ctx, s.signupCounter(), name, err)
	if err != nil {
		s.logError(ctx, "failed to sign up participant", "Signup", name, email, err)
		return nil, err
	}

	return a, nil
}

// Unregister removes email from the named activity.
func (s *RosterService) Unregister(ctx context.Context, name, email string) (*activity.Activity, error) {
	s.logger.InfoContext(ctx, "unregistering participant",
		slog.String("activity", name),
		logging.Email(email),
	)

	if err := validateEmail(email); err != nil {
		s.record(ctx, s.unregisterCounter(), name, err)
		return nil, err
	}

	a, err := s.store.RemoveParticipant(ctx, name, email)
	s.record(ctx, s.unregisterCounter(), name, err)
	if err != nil {
		s.logError(ctx, "failed to unregister participant", "Unregister", name, email, err)
		return nil, err
	}

	return a, nil
}

// validateEmail performs the only input check the roster needs: presence.
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewValidationError("email", "is required")
	}
	return nil
}

// logError logs expected roster outcomes (not found, conflict) at WARN and
// anything else at ERROR.
func (s *RosterService) logError(ctx context.Context, msg, operation, name, email string, err error) {
	attrs := []any{
		slog.String("operation", operation),
		slog.String("activity", name),
	}
	if email != "" {
		attrs = append(attrs, logging.Email(email))
	}
	attrs = append(attrs, slog.Any("error", err))

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		s.logger.WarnContext(ctx, msg, attrs...)
		return
	}
	s.logger.ErrorContext(ctx, msg, attrs...)
}

func (s *RosterService) signupCounter() metric.Int64Counter {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.RosterSignupTotal
}

func (s *RosterService) unregisterCounter() metric.Int64Counter {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.RosterUnregisterTotal
}

// record increments counter with the activity and outcome. Safe with a nil counter.
func (s *RosterService) record(ctx context.Context, counter metric.Int64Counter, name string, err error) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrActivity.String(activityLabel(name, err)),
		telemetry.AttrResult.String(resultOf(err)),
	))
}

// unknownActivity labels operations whose activity the store never confirmed.
const unknownActivity = "unknown"

// activityLabel keeps name only when the store outcome shows the activity
// exists.
func activityLabel(name string, err error) string {
	switch {
	case err == nil,
		errors.Is(err, activity.ErrParticipantNotFound),
		errors.Is(err, activity.ErrAlreadySignedUp),
		errors.Is(err, activity.ErrActivityFull):
		return name
	}
	return unknownActivity
}

// resultOf maps an operation error to a metric result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return resultNotFound
	case errors.Is(err, domain.ErrConflict):
		return resultConflict
	case errors.Is(err, domain.ErrValidation):
		return resultInvalid
	default:
		return resultError
	}
}
