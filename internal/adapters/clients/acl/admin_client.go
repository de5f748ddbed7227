package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/clients/acl/action"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ActionInvoker = (*AdminClient)(nil)
	_ ports.HealthChecker = (*AdminClient)(nil)
)

// AdminClient is the outbound adapter for the admin backend's resource
// action API. It implements [ports.ActionInvoker].
//
// Responses are translated by the [action] subpackage and HTTP errors are
// mapped to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] provides circuit breaking, rate limiting, retry and
// OpenTelemetry tracing for every call.
type AdminClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewAdminClient creates an AdminClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the admin
// backend root (e.g. "http://localhost:3000").
func NewAdminClient(client *httpclient.Client, logger *slog.Logger) *AdminClient {
	return &AdminClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// PerformAction sends POST /api/resources/{resourceId}/actions/{action}
// with the encoded payload. A 200 response is decoded whether it carries a
// redirect or a rejected record; everything else is an error.
func (c *AdminClient) PerformAction(ctx context.Context, req ports.ActionRequest) (*ports.ActionResponse, error) {
	if strings.TrimSpace(req.ResourceID) == "" || strings.TrimSpace(req.ActionName) == "" {
		return nil, fmt.Errorf("resource and action are required: %w", domain.ErrValidation)
	}

	path := fmt.Sprintf("/api/resources/%s/actions/%s",
		url.PathEscape(req.ResourceID), url.PathEscape(req.ActionName))

	payload := req.Payload
	var dto action.ResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusOK, &payload, &dto); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "admin action performed",
		slog.String("resource", req.ResourceID),
		slog.String("action", req.ActionName),
		slog.Bool("redirect", dto.RedirectURL != ""),
	)

	return action.ToDomainResponse(&dto), nil
}
