// Package draft implements the draft record controller: the local edit
// buffer of a "new record" form and the protocol that submits it to the
// admin backend and reconciles the result.
//
// A Controller lives as long as the form it backs. Edits are synchronous
// and never validated locally. A submission runs in the background; its
// resolution either hands a redirect to the navigator (the controller is
// then expected to be discarded), replaces the draft's field errors, or
// emits an error notice.
//
//	c := draft.New("users", nil, draft.Deps{...})
//	c.SetField("email", "a@b.c")
//	c.HandleSubmit(ctx, ev) // always false; ev default suppressed
//	v := c.View()           // v.Loading is already true
package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/draftdesk/internal/app/context"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
	"github.com/jsamuelsen11/draftdesk/internal/platform/telemetry"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// MsgErrorFetchingRecord is the translation key of the fallback notice
// emitted when a submission fails without a server-supplied message.
const MsgErrorFetchingRecord = "errorFetchingRecord"

// Event is the UI event that triggered a submit. Its default action (a full
// page form post in a browser) is always suppressed.
type Event interface {
	PreventDefault()
}

// Deps are the collaborators a Controller reports to. Invoker and Encoder
// are required; nil Navigator and Notices discard their input and a nil
// Translator returns keys unchanged.
type Deps struct {
	Invoker    ports.ActionInvoker
	Encoder    ports.PayloadEncoder
	Navigator  ports.Navigator
	Notices    ports.NoticeSink
	Translator ports.Translator
}

// View is the read model exposed to callers. A new View is produced on
// every state change; Version increases monotonically so callers can
// detect changes without comparing records.
type View struct {
	Record     record.Record
	Loading    bool
	Submission submission.State
	Version    uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for submission diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnChange registers a callback invoked with every new View. Views are
// delivered one at a time in Version order. The callback runs on the
// goroutine that caused the change and must not call back into the
// controller synchronously.
func WithOnChange(fn func(View)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithMetrics records submission outcomes. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithRefreshMarker overrides the generator of force-refresh marker values.
func WithRefreshMarker(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.marker = fn
		}
	}
}

// state is everything guarded by the controller's SafeRef. Transitions
// replace fields wholesale; records are never mutated in place.
type state struct {
	record  record.Record
	sub     submission.State
	version uint64
	seq     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	closed  bool
}

// Controller is the draft record controller for one "new record" form.
// All methods are safe for concurrent use.
type Controller struct {
	resourceID string
	deps       Deps
	state      *appctx.SafeRef[state]
	onChange   func(View)
	publish    sync.Mutex // orders onChange calls with commits
	metrics    *telemetry.Metrics
	marker     func() string
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// New seeds a controller for resourceID from an optional initial record.
// Missing mappings on the initial record default to empty. No network
// call is made.
func New(resourceID string, initial *record.Record, deps Deps, opts ...Option) *Controller {
	if deps.Navigator == nil {
		deps.Navigator = ports.NavigatorFunc(func(string) {})
	}
	if deps.Notices == nil {
		deps.Notices = ports.NoticeSinkFunc(func(notice.Notice) {})
	}
	if deps.Translator == nil {
		deps.Translator = identityTranslator{}
	}

	c := &Controller{
		resourceID: resourceID,
		deps:       deps,
		state: appctx.NewRef(state{
			record: record.New(initial),
			sub:    submission.Idle(),
		}),
		marker: uuid.NewString,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logging.ResourceID(resourceID))

	return c
}

// ResourceID returns the resource the draft belongs to.
func (c *Controller) ResourceID() string {
	return c.resourceID
}

// View returns the current read model. The returned record is a copy.
func (c *Controller) View() View {
	return c.state.Get().view()
}

// SetField merges {name: value} into the draft's params. Other params and
// the errors/populated mappings are preserved. Ignored after Close.
func (c *Controller) SetField(name string, value any) {
	_, _ = c.transition(func(s *state) error {
		s.record = s.record.WithField(name, value)
		return nil
	})
}

// ReplaceRecord replaces the whole draft, typically with the output of a
// nested editor. Missing mappings default to empty. Ignored after Close.
func (c *Controller) ReplaceRecord(r record.Record) {
	_, _ = c.transition(func(s *state) error {
		s.record = record.New(&r)
		return nil
	})
}

// HandleChange applies a tagged change: FieldChange or RecordChange.
func (c *Controller) HandleChange(ch Change) {
	switch ch := ch.(type) {
	case FieldChange:
		c.SetField(ch.Name, ch.Value)
	case RecordChange:
		c.ReplaceRecord(ch.Record)
	}
}

// HandleSubmit is the form's submit handler. It suppresses the event's
// default action, starts a submission and returns false for every outcome;
// the result arrives asynchronously through the View, the navigator and
// the notice sink. A submit that cannot start (one already in flight, or
// the controller closed) is dropped.
func (c *Controller) HandleSubmit(ctx context.Context, ev Event) bool {
	if ev != nil {
		ev.PreventDefault()
	}

	if _, err := c.Start(ctx); err != nil {
		c.logger.WarnContext(ctx, "submit ignored",
			logging.Operation("HandleSubmit"),
			slog.Any("error", err),
		)
	}
	return false
}

// Start begins a submission and returns a channel closed when it resolves.
// Loading is true before Start returns. The remote call keeps the values of
// ctx (logger, trace, request IDs) but not its cancellation: it ends when it
// resolves or when the controller is closed.
//
// Returns domain.ErrSubmissionInFlight while a submission is outstanding or
// after one succeeded, and domain.ErrClosed after Close.
func (c *Controller) Start(ctx context.Context) (<-chan struct{}, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	var (
		snapshot record.Record
		seq      uint64
		done     chan struct{}
	)
	_, err := c.transition(func(s *state) error {
		if s.closed {
			return domain.ErrClosed
		}
		if !s.sub.CanSubmit() {
			return domain.ErrSubmissionInFlight
		}
		s.seq++
		s.sub = submission.Submitting()
		s.cancel = cancel
		s.done = make(chan struct{})

		snapshot = s.record.Clone()
		seq = s.seq
		done = s.done
		c.wg.Add(1)
		return nil
	})
	if err != nil {
		cancel()
		return nil, err
	}

	c.logger.InfoContext(ctx, "submitting draft", slog.Uint64("submission", seq))

	go c.run(runCtx, seq, snapshot, done)

	return done, nil
}

// Submit starts a submission and blocks until it resolves or ctx is done,
// returning the View after resolution. Cancelling ctx stops the wait, not
// the submission.
func (c *Controller) Submit(ctx context.Context) (View, error) {
	done, err := c.Start(ctx)
	if err != nil {
		return c.View(), err
	}

	select {
	case <-done:
		return c.View(), nil
	case <-ctx.Done():
		return c.View(), ctx.Err()
	}
}

// Wait blocks until every started submission has resolved.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close tears the controller down: the in-flight call, if any, is
// cancelled and its resolution becomes a no-op. Later edits are ignored
// and submits fail with domain.ErrClosed. Close is idempotent.
func (c *Controller) Close() {
	var cancel context.CancelFunc
	c.state.Update(func(s *state) {
		if s.closed {
			return
		}
		s.closed = true
		cancel = s.cancel
		s.cancel = nil
	})
	if cancel != nil {
		cancel()
	}
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.state.Get().closed
}

// run performs the remote call of submission seq and reconciles the result.
func (c *Controller) run(ctx context.Context, seq uint64, snapshot record.Record, done chan struct{}) {
	defer c.wg.Done()
	defer close(done)

	payload, err := c.deps.Encoder.Encode(snapshot)
	if err != nil {
		c.fail(ctx, seq, fmt.Errorf("encoding record: %w", err))
		return
	}

	resp, err := c.deps.Invoker.PerformAction(ctx, ports.ActionRequest{
		ResourceID: c.resourceID,
		ActionName: ports.ActionNew,
		Payload:    payload,
	})
	if err != nil {
		c.fail(ctx, seq, err)
		return
	}
	if resp == nil {
		c.fail(ctx, seq, errors.New("empty action response"))
		return
	}

	c.succeed(ctx, seq, resp)
}

// succeed reconciles a successful action call. The notice, if any, is
// forwarded before navigation so it survives the view change.
func (c *Controller) succeed(ctx context.Context, seq uint64, resp *ports.ActionResponse) {
	if resp.RedirectURL != "" {
		target := AppendForceRefresh(resp.RedirectURL, c.marker())
		_, err := c.transition(func(s *state) error {
			if err := s.current(seq); err != nil {
				return err
			}
			s.sub = submission.Succeeded(target, resp.Notice)
			s.cancel = nil
			return nil
		})
		if err != nil {
			return
		}

		c.recordOutcome(ctx, submission.PhaseSucceeded)
		c.logger.InfoContext(ctx, "draft created", slog.String("redirect_url", target))
		if resp.Notice != nil {
			c.deps.Notices.OnNotice(*resp.Notice)
		}
		c.deps.Navigator.Navigate(target)
		return
	}

	if resp.Record == nil {
		if resp.Notice != nil {
			c.deps.Notices.OnNotice(*resp.Notice)
		}
		c.fail(ctx, seq, errNoOutcome)
		return
	}

	errs := resp.Record.Errors
	_, err := c.transition(func(s *state) error {
		if err := s.current(seq); err != nil {
			return err
		}
		s.record = s.record.WithErrors(errs)
		s.sub = submission.Rejected(errs)
		s.cancel = nil
		return nil
	})
	if err != nil {
		return
	}

	c.recordOutcome(ctx, submission.PhaseRejected)
	c.logger.InfoContext(ctx, "draft rejected by backend", slog.Int("error_fields", len(errs)))
	if resp.Notice != nil {
		c.deps.Notices.OnNotice(*resp.Notice)
	}
}

// fail reconciles a transport or unexpected failure. The draft's params
// and errors are left untouched so the user can retry.
func (c *Controller) fail(ctx context.Context, seq uint64, cause error) {
	if s := c.state.Get(); s.closed || s.current(seq) != nil {
		return
	}

	key := domain.RemoteMessage(cause)
	if key == "" {
		key = MsgErrorFetchingRecord
	}
	n := notice.Error(c.deps.Translator.TranslateMessage(key))

	_, err := c.transition(func(s *state) error {
		if err := s.current(seq); err != nil {
			return err
		}
		s.sub = submission.Failed(n)
		s.cancel = nil
		return nil
	})
	if err != nil {
		return
	}

	c.recordOutcome(ctx, submission.PhaseFailed)
	c.logger.ErrorContext(ctx, "draft submission failed",
		logging.Operation("Submit"),
		slog.Uint64("submission", seq),
		slog.Any("error", cause),
	)
	c.deps.Notices.OnNotice(n)
}

// transition applies fn to the state under the write lock. When fn returns
// nil the version is bumped and the new View is published to onChange
// before any later transition can commit.
func (c *Controller) transition(fn func(*state) error) (View, error) {
	c.publish.Lock()
	defer c.publish.Unlock()

	v, err := appctx.Commit(c.state, func(s *state) (View, error) {
		if s.closed {
			return View{}, domain.ErrClosed
		}
		if err := fn(s); err != nil {
			return View{}, err
		}
		s.version++
		return s.view(), nil
	})
	if err != nil {
		return View{}, err
	}

	if c.onChange != nil {
		c.onChange(v)
	}
	return v, nil
}

func (c *Controller) recordOutcome(ctx context.Context, phase submission.Phase) {
	if c.metrics == nil || c.metrics.DraftSubmissionTotal == nil {
		return
	}
	c.metrics.DraftSubmissionTotal.Add(ctx, 1, telemetry.ResultAttrs(c.resourceID, phase.String()))
}

// current reports whether seq is still the outstanding submission.
func (s *state) current(seq uint64) error {
	if s.seq != seq || s.sub.Phase != submission.PhaseSubmitting {
		return errStale
	}
	return nil
}

func (s state) view() View {
	return View{
		Record:     s.record.Clone(),
		Loading:    s.sub.Loading(),
		Submission: s.sub,
		Version:    s.version,
	}
}

var (
	errStale     = errors.New("stale submission")
	errNoOutcome = errors.New("action response carried neither redirect nor record")
)

type identityTranslator struct{}

func (identityTranslator) TranslateMessage(key string) string { return key }
