package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	wire "github.com/jsamuelsen11/activity-roster/internal/adapters/clients/acl/activity"
	"github.com/jsamuelsen11/activity-roster/internal/domain/activity"
	"github.com/jsamuelsen11/activity-roster/internal/platform/httpclient"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RosterService = (*RosterClient)(nil)
	_ ports.HealthChecker = (*RosterClient)(nil)
)

// RosterClient is the outbound adapter for a remote roster API. It
// implements [ports.RosterService] so callers such as rosterctl can drive a
// running server through the same port the HTTP handlers use.
//
// Wire bodies are translated by the [wire] subpackage and HTTP errors are
// mapped back to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] supplies circuit breaking, retry, rate limiting and
// tracing for every call.
type RosterClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewRosterClient creates a RosterClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point at the roster
// API root (e.g. "http://localhost:8080").
func NewRosterClient(client *httpclient.Client, logger *slog.Logger) *RosterClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RosterClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListActivities fetches GET /activities.
func (c *RosterClient) ListActivities(ctx context.Context) (map[string]activity.Activity, error) {
	var dto wire.ActivityListDTO
	if err := c.req.Do(ctx, http.MethodGet, "/activities", &dto); err != nil {
		return nil, err
	}
	return wire.ToDomainActivities(dto), nil
}

// GetActivity fetches GET /activities/{name}.
func (c *RosterClient) GetActivity(ctx context.Context, name string) (*activity.Activity, error) {
	var dto wire.ActivityDTO
	if err := c.req.Do(ctx, http.MethodGet, activityPath(name), &dto); err != nil {
		return nil, err
	}
	a := wire.ToDomainActivity(name, &dto)
	return &a, nil
}

// Signup calls POST /activities/{name}/signup?email= and then re-reads the
// activity, since the API answers with a confirmation message only.
func (c *RosterClient) Signup(ctx context.Context, name, email string) (*activity.Activity, error) {
	var msg wire.MessageDTO
	path := activityPath(name) + "/signup?" + emailQuery(email)
	if err := c.req.Do(ctx, http.MethodPost, path, &msg); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "signup confirmed", slog.String("message", msg.Message))
	return c.GetActivity(ctx, name)
}

// Unregister calls DELETE /activities/{name}/participants?email= and then
// re-reads the activity.
func (c *RosterClient) Unregister(ctx context.Context, name, email string) (*activity.Activity, error) {
	var msg wire.MessageDTO
	path := activityPath(name) + "/participants?" + emailQuery(email)
	if err := c.req.Do(ctx, http.MethodDelete, path, &msg); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "unregister confirmed", slog.String("message", msg.Message))
	return c.GetActivity(ctx, name)
}

func activityPath(name string) string {
	return "/activities/" + url.PathEscape(name)
}

func emailQuery(email string) string {
	return url.Values{"email": {email}}.Encode()
}
