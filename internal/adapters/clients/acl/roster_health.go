package acl

import (
	"context"
	"errors"
	"fmt"
)

var (
	errBreakerHalfOpen = errors.New("roster-api: degraded (circuit breaker half-open)")
	errBreakerOpen     = errors.New("roster-api: failing (circuit breaker open)")
)

// Name is the key this client reports under in a [ports.HealthRegistry].
func (c *RosterClient) Name() string {
	return "roster-api"
}

// HealthCheck answers from the circuit breaker state without a network call.
func (c *RosterClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return errBreakerHalfOpen
	case "open":
		return errBreakerOpen
	default:
		return fmt.Errorf("roster-api: unknown circuit breaker state %q", state)
	}
}
