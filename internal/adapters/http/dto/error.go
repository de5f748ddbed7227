package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
)

// ProblemTypeBase prefixes the type URI of every problem this service
// emits.
const ProblemTypeBase = "https://draftdesk.dev/problems/"

// internalDetail replaces the detail of unmapped errors so internals stay
// in the logs.
const internalDetail = "an unexpected error occurred"

// ErrMethodNotAllowed is answered for a known path hit with the wrong
// method.
var ErrMethodNotAllowed = errors.New("method not allowed")

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation error.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// problem maps a sentinel to its status and type slug. Order matters: the
// first match wins.
type problem struct {
	target error
	status int
	slug   string
}

var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not-found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrSubmissionInFlight, http.StatusConflict, "submission-in-flight"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrClosed, http.StatusGone, "draft-closed"},
	{domain.ErrLimitExceeded, http.StatusTooManyRequests, "draft-limit"},
	{domain.ErrUnavailable, http.StatusBadGateway, "backend-unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method-not-allowed"},
}

func classify(err error) problem {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError, slug: "internal"}
}

// NewErrorResponse builds the problem body for err. The backend's own
// message is preferred as the detail when the error carries one; unmapped
// errors get a generic detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := classify(err)

	detail := err.Error()
	switch {
	case domain.RemoteMessage(err) != "":
		detail = domain.RemoteMessage(err)
	case p.target == nil:
		detail = internalDetail
	}

	resp := ErrorResponse{
		Type:     ProblemTypeBase + p.slug,
		Title:    http.StatusText(p.status),
		Status:   p.status,
		Detail:   detail,
		Instance: r.URL.RequestURI(),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json. Server-side
// failures are logged with the original error.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if resp.Status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

// fieldDetails turns validation fields into entries sorted by location.
// The empty field stands for the body as a whole.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body"
		if field != "" {
			loc += "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
