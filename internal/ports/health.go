package ports

import "context"

// HealthChecker is a dependency the readiness check asks about: the admin
// backend client, the draft session store.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness body.
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must give up once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans readiness checks out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps checker name to result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
