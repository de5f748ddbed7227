package acl

import "context"

// Name returns the service name given to the underlying
// [httpclient.Client], so health output and client telemetry agree.
func (c *AdminClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the admin backend's availability from the circuit
// breaker, without a network call. This is downstream status, not
// readiness of this service: drafts can still be edited while the backend
// is down.
func (c *AdminClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
