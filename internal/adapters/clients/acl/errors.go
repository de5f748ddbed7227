// Package acl implements the Anti-Corruption Layer between the admin
// backend's REST action API and the domain. Response translators live in
// the action subpackage and the multipart encoder in formdata; shared error
// mapping and the request lifecycle live here.
package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/clients/acl/action"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the union of the error shapes the backend and the proxies
// in front of it produce: RFC 7807 problems with an errors array, and the
// backend's own {"message": ..., "errors": {field: ...}}.
type errorBody struct {
	Detail  string          `json:"detail"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// problemError is one entry of an RFC 7807 errors array.
type problemError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-success response to a domain error.
//
// The status picks the sentinel. 400 and 422 answers that list field
// errors, in either shape, become a *domain.ValidationError. A top-level
// message wraps the result in a *domain.RemoteError so the user sees the
// backend's own words.
func TranslateHTTPError(resp *http.Response) error {
	body := decodeErrorBody(readErrorBody(resp))

	detail := body.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	err := statusError(resp.StatusCode, detail, body.fieldErrors())

	if msg := strings.TrimSpace(body.Message); msg != "" {
		return &domain.RemoteError{StatusCode: resp.StatusCode, Message: msg, Err: err}
	}
	return err
}

func statusError(status int, detail string, fields map[string]string) error {
	var sentinel error
	switch {
	case status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		sentinel = domain.ErrValidation
	case status == http.StatusConflict:
		sentinel = domain.ErrConflict
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", status, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// readErrorBody reads at most maxErrorBodySize bytes; nil when there is
// nothing readable.
func readErrorBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return nil
	}
	return body
}

// decodeErrorBody returns the zero value for non-JSON bodies.
func decodeErrorBody(raw []byte) errorBody {
	var b errorBody
	if len(raw) == 0 || json.Unmarshal(raw, &b) != nil {
		return errorBody{}
	}
	return b
}

// fieldErrors flattens either errors shape to field → message. Problem
// locations lose their "body." prefix.
func (b errorBody) fieldErrors() map[string]string {
	raw := bytes.TrimSpace(b.Errors)
	if len(raw) == 0 {
		return nil
	}

	fields := make(map[string]string)
	switch raw[0] {
	case '[':
		var list []problemError
		if json.Unmarshal(raw, &list) != nil {
			return nil
		}
		for _, e := range list {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
	case '{':
		var byField map[string]action.FieldErrorDTO
		if json.Unmarshal(raw, &byField) != nil {
			return nil
		}
		for name, e := range byField {
			fields[name] = e.Message
		}
	}
	return fields
}
