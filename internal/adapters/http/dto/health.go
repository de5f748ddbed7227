package dto

import (
	"context"
	"errors"
)

// Health check states reported per component.
const (
	CheckOK      = "ok"
	CheckFailed  = "failed"
	CheckTimeout = "timeout"
)

// Overall readiness states.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the outcome of one component's health check.
type CheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ToHealthResponse folds registry results into a readiness body and
// reports whether every component is healthy.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{
		Status: StatusReady,
		Checks: make(map[string]CheckResponse, len(results)),
	}

	healthy := true
	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = CheckResponse{Status: CheckOK}
			continue
		case errors.Is(err, context.DeadlineExceeded):
			resp.Checks[name] = CheckResponse{Status: CheckTimeout, Error: err.Error()}
		default:
			resp.Checks[name] = CheckResponse{Status: CheckFailed, Error: err.Error()}
		}
		healthy = false
	}

	if !healthy {
		resp.Status = StatusNotReady
	}
	return resp, healthy
}
