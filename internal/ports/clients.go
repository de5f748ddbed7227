package ports

import (
	"context"

	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
)

// ContentTypeMultipart is the content type declared for "new record"
// payloads. Records may carry file-like fields.
const ContentTypeMultipart = "multipart/form-data"

// ActionNew is the admin backend action that creates a record.
const ActionNew = "new"

// ActionRequest describes one call of a resource action on the admin backend.
type ActionRequest struct {
	ResourceID string
	ActionName string
	Payload    Payload
}

// ActionResponse is the recognised shape of a successful action call.
// RedirectURL is empty when the backend rejected the record; Record then
// carries the per-field errors.
type ActionResponse struct {
	Notice      *notice.Notice
	RedirectURL string
	Record      *record.Record
}

// Payload is an encoded record ready for transport. ContentType includes
// any parameters the encoding needs (e.g. the multipart boundary).
type Payload struct {
	Body        []byte
	ContentType string
}

// ActionInvoker defines the client port for invoking admin resource actions.
// Implemented by the ACL adapter; called by the draft controller.
type ActionInvoker interface {
	// PerformAction invokes the action and returns the decoded response.
	// A backend that rejects the record with field errors is a successful
	// call (RedirectURL empty). Transport failures and non-2xx statuses are
	// returned as errors; a server-supplied message is available through
	// domain.RemoteMessage.
	PerformAction(ctx context.Context, req ActionRequest) (*ActionResponse, error)
}

// PayloadEncoder converts a draft record into the transport payload the
// ActionInvoker sends. Implementations are pure.
type PayloadEncoder interface {
	Encode(r record.Record) (Payload, error)
}
