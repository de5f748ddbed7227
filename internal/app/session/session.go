package session

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/draftdesk/internal/app/draft"
	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// session is one open form. It is the navigator and notice sink of its
// own controller, so everything the controller emits stays readable by
// the client that polls the session.
type session struct {
	id        string
	ctrl      *draft.Controller
	createdAt time.Time
	limit     int

	mu       sync.Mutex
	notices  []notice.Notice
	redirect string
	lastSeen time.Time
}

func newSession(id string, limit int, now time.Time) *session {
	return &session{
		id:        id,
		createdAt: now,
		lastSeen:  now,
		limit:     limit,
	}
}

// Navigate records the redirect target handed over by the controller.
func (s *session) Navigate(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = url
}

// OnNotice appends n to the notice log, dropping the oldest entries past
// the limit.
func (s *session) OnNotice(n notice.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
	if s.limit > 0 && len(s.notices) > s.limit {
		s.notices = append([]notice.Notice(nil), s.notices[len(s.notices)-s.limit:]...)
	}
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// idleSince reports whether the session was last used before cutoff.
func (s *session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

func (s *session) snapshot() *ports.DraftSnapshot {
	v := s.ctrl.View()

	s.mu.Lock()
	defer s.mu.Unlock()

	return &ports.DraftSnapshot{
		ID:          s.id,
		ResourceID:  s.ctrl.ResourceID(),
		Record:      v.Record,
		Loading:     v.Loading,
		Submission:  v.Submission,
		Version:     v.Version,
		Notices:     append([]notice.Notice(nil), s.notices...),
		RedirectURL: s.redirect,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.lastSeen,
	}
}
