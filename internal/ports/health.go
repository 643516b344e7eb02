package ports

import "context"

// HealthChecker is a dependency that readiness depends on: the roster store
// in the server, the remote roster API in rosterctl.
type HealthChecker interface {
	// Name labels the check in readiness output, e.g. "roster-store".
	Name() string

	// HealthCheck returns nil when healthy. It must give up when ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness probe out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
