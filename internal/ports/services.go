package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
)

// DraftService defines the service port for hosted draft sessions.
// Implemented by the application layer; called by inbound adapters (handlers).
// Each session backs one open "new record" form and owns one draft
// controller.
type DraftService interface {
	// CreateDraft opens a session for resourceID seeded from an optional
	// initial record. Returns domain.ErrLimitExceeded when the session cap
	// is reached.
	CreateDraft(ctx context.Context, resourceID string, initial *record.Record) (*DraftSnapshot, error)

	// GetDraft returns the current state of a session.
	// Returns domain.ErrNotFound if the session does not exist.
	GetDraft(ctx context.Context, id string) (*DraftSnapshot, error)

	// SetField merges a single param into the session's draft.
	// Returns domain.ErrNotFound if the session does not exist.
	SetField(ctx context.Context, id, field string, value any) (*DraftSnapshot, error)

	// ReplaceRecord replaces the session's whole draft.
	// Returns domain.ErrNotFound if the session does not exist.
	ReplaceRecord(ctx context.Context, id string, r record.Record) (*DraftSnapshot, error)

	// SubmitDraft starts a submission and returns the state observed right
	// after it started (Loading is true). Returns domain.ErrSubmissionInFlight
	// when a submission is outstanding or already succeeded.
	SubmitDraft(ctx context.Context, id string) (*DraftSnapshot, error)

	// DiscardDraft tears the session down; an in-flight submission resolves
	// as a no-op. Returns domain.ErrNotFound if the session does not exist.
	DiscardDraft(ctx context.Context, id string) error
}

// DraftSnapshot is the externally visible state of a draft session.
type DraftSnapshot struct {
	ID          string
	ResourceID  string
	Record      record.Record
	Loading     bool
	Submission  submission.State
	Version     uint64
	Notices     []notice.Notice
	RedirectURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
