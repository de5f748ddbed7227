// Package session hosts draft controllers server-side. Each session backs
// one open "new record" form: the client edits and submits through the
// session and polls it for the outcome.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/draftdesk/internal/app/draft"
	"github.com/jsamuelsen11/draftdesk/internal/app/fanout"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
	"github.com/jsamuelsen11/draftdesk/internal/platform/config"
	"github.com/jsamuelsen11/draftdesk/internal/platform/i18n"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
	"github.com/jsamuelsen11/draftdesk/internal/platform/telemetry"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.DraftService  = (*Service)(nil)
	_ ports.HealthChecker = (*Service)(nil)
)

// shutdownWorkers bounds how many sessions are torn down concurrently.
const shutdownWorkers = 16

// Service implements ports.DraftService with an in-memory session store.
type Service struct {
	deps    draft.Deps
	cfg     config.DraftsConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger

	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService creates a Service. deps.Invoker and deps.Encoder are shared by
// every session; Navigator and Notices are replaced per session. A nil
// logger discards output and nil metrics disable recording.
func NewService(deps draft.Deps, cfg *config.DraftsConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		deps:     deps,
		cfg:      *cfg,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*session),
	}
}

// CreateDraft opens a session for resourceID seeded from initial. A
// translator carried by ctx (see i18n.WithTranslator) localizes the
// session's notices in place of the service default.
func (s *Service) CreateDraft(ctx context.Context, resourceID string, initial *record.Record) (*ports.DraftSnapshot, error) {
	if resourceID == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"resource_id": "must not be empty"}}
	}

	sess := newSession(s.newID(), s.cfg.NoticeLimit, s.now())

	deps := s.deps
	deps.Navigator = sess
	deps.Notices = sess
	if t, ok := i18n.TranslatorFromContext(ctx); ok {
		deps.Translator = t
	}
	sess.ctrl = draft.New(resourceID, initial, deps,
		draft.WithLogger(s.logger.With(logging.DraftID(sess.id))),
		draft.WithMetrics(s.metrics),
	)

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		sess.ctrl.Close()
		s.logger.WarnContext(ctx, "draft session limit reached",
			logging.Operation("CreateDraft"),
			slog.Int("max_sessions", s.cfg.MaxSessions),
		)
		return nil, fmt.Errorf("%d open drafts: %w", s.cfg.MaxSessions, domain.ErrLimitExceeded)
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.trackActive(ctx, 1)
	s.logger.InfoContext(ctx, "draft opened",
		logging.DraftID(sess.id),
		logging.ResourceID(resourceID),
	)

	return sess.snapshot(), nil
}

// GetDraft returns the current state of a session.
func (s *Service) GetDraft(_ context.Context, id string) (*ports.DraftSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(), nil
}

// SetField merges a single param into the session's draft.
func (s *Service) SetField(_ context.Context, id, field string, value any) (*ports.DraftSnapshot, error) {
	if field == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"field": "must not be empty"}}
	}
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.ctrl.HandleChange(draft.FieldChange{Name: field, Value: value})
	return s.afterEdit(sess)
}

// ReplaceRecord replaces the session's whole draft.
func (s *Service) ReplaceRecord(_ context.Context, id string, r record.Record) (*ports.DraftSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.ctrl.HandleChange(draft.RecordChange{Record: r})
	return s.afterEdit(sess)
}

// afterEdit reports an edit the controller ignored because the draft was
// closed after lookup found it.
func (s *Service) afterEdit(sess *session) (*ports.DraftSnapshot, error) {
	if sess.ctrl.Closed() {
		return nil, fmt.Errorf("draft %s: %w", sess.id, domain.ErrClosed)
	}
	return sess.snapshot(), nil
}

// SubmitDraft starts a submission. The remote call outlives ctx; its
// outcome is read back with GetDraft.
func (s *Service) SubmitDraft(ctx context.Context, id string) (*ports.DraftSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if _, err := sess.ctrl.Start(ctx); err != nil {
		s.logger.WarnContext(ctx, "draft submit rejected",
			logging.Operation("SubmitDraft"),
			logging.DraftID(id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return sess.snapshot(), nil
}

// DiscardDraft removes the session and closes its controller.
func (s *Service) DiscardDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	sess.ctrl.Close()
	s.trackActive(ctx, -1)
	s.logger.InfoContext(ctx, "draft discarded", logging.DraftID(id))
	return nil
}

// Len returns the number of open sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Name identifies the session store in readiness results.
func (s *Service) Name() string {
	return "drafts"
}

// HealthCheck reports the store as failing once it holds MaxSessions
// drafts, since every further CreateDraft would be rejected.
func (s *Service) HealthCheck(_ context.Context) error {
	if s.cfg.MaxSessions <= 0 {
		return nil
	}
	if n := s.Len(); n >= s.cfg.MaxSessions {
		return fmt.Errorf("%d of %d drafts open: %w", n, s.cfg.MaxSessions, domain.ErrLimitExceeded)
	}
	return nil
}

// Sweep evicts sessions idle for longer than the configured TTL and
// returns how many were removed. Sessions with a submission in flight are
// kept until it resolves.
func (s *Service) Sweep(ctx context.Context) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.IdleTTL)

	var evicted []*session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if !sess.idleSince(cutoff) || sess.ctrl.View().Submission.Phase == submission.PhaseSubmitting {
			continue
		}
		delete(s.sessions, id)
		evicted = append(evicted, sess)
	}
	s.mu.Unlock()

	for _, sess := range evicted {
		sess.ctrl.Close()
	}
	if len(evicted) > 0 {
		s.trackActive(ctx, -int64(len(evicted)))
		s.logger.InfoContext(ctx, "evicted idle drafts", slog.Int("count", len(evicted)))
	}
	return len(evicted)
}

// Run sweeps idle sessions every sweep interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if s.cfg.SweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Shutdown closes every session and waits for their in-flight submissions
// to settle, or for ctx to expire.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	all := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.ctrl.Close()
	}

	err := fanout.Each(ctx, shutdownWorkers, all, func(ctx context.Context, sess *session) error {
		if err := fanout.Wait(ctx, sess.ctrl.Wait); err != nil {
			return fmt.Errorf("draft %s: %w", sess.id, err)
		}
		return nil
	})

	s.trackActive(ctx, -int64(len(all)))
	return err
}

func (s *Service) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	sess.touch(s.now())
	return sess, nil
}

func (s *Service) trackActive(ctx context.Context, delta int64) {
	if s.metrics == nil || s.metrics.DraftSessionsActive == nil || delta == 0 {
		return
	}
	s.metrics.DraftSessionsActive.Add(context.WithoutCancel(ctx), delta)
}
