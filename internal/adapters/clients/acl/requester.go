package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/draftdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// A nil payload sends no body. A payload without a content type is sent as
// multipart/form-data. The response is decoded into respBody (if non-nil)
// when the status code matches wantStatus; any other status is passed to
// TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, payload *ports.Payload, respBody any) error {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	if payload != nil {
		contentType := payload.ContentType
		if contentType == "" {
			contentType = ports.ContentTypeMultipart
		}
		req.Header.Set("Content-Type", contentType)
	}

	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Name returns the downstream service name the client was built with.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the client's circuit breaker status.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// maxResponseSize bounds the decoded action response.
const maxResponseSize = 4 << 20

// closeBody closes resp.Body, logging a failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

// execute sends req, checks the status and decodes the body into respBody
// when it is non-nil. resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != wantStatus:
		// Also reached when retries ran out on a retryable status: the
		// backend's message on the last answer is kept.
		r.logFailure(ctx, req, slog.Int("status", resp.StatusCode), slog.Int("want_status", wantStatus))
		return TranslateHTTPError(resp)
	case err != nil:
		r.logFailure(ctx, req, slog.Any("error", err))
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (r *Requester) logFailure(ctx context.Context, req *http.Request, attrs ...any) {
	args := append([]any{
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
	}, attrs...)
	r.logger.ErrorContext(ctx, "admin backend request failed", args...)
}
