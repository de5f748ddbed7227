// Package submission models the lifecycle of one "new record" submission
// as an explicit tagged state:
//
//	Idle ─► Submitting ─┬─► Succeeded(redirect)   terminal, about to navigate
//	                    ├─► Rejected(errors)      form interactive again
//	                    └─► Failed(notice)        form interactive again
//
// Rejected and Failed may start a new submission; Succeeded may not.
package submission

import (
	"maps"

	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
)

// Phase identifies which variant of State is active.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseRejected   Phase = "rejected"
	PhaseFailed     Phase = "failed"
)

// IsValid returns true if the phase is one of the defined constants.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseIdle, PhaseSubmitting, PhaseSucceeded, PhaseRejected, PhaseFailed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}

// State is the submission state. Only the fields belonging to Phase are
// meaningful: RedirectURL for Succeeded, Errors for Rejected, Notice for
// Failed (and optionally Succeeded when the backend sent one).
type State struct {
	Phase       Phase
	RedirectURL string
	Errors      map[string]string
	Notice      *notice.Notice
}

// Idle is the initial state.
func Idle() State { return State{Phase: PhaseIdle} }

// Submitting is the state while the remote call is outstanding.
func Submitting() State { return State{Phase: PhaseSubmitting} }

// Succeeded is the terminal state after the backend returned a redirect.
func Succeeded(redirectURL string, n *notice.Notice) State {
	return State{Phase: PhaseSucceeded, RedirectURL: redirectURL, Notice: n}
}

// Rejected is the state after the backend reported field errors.
func Rejected(errs map[string]string) State {
	return State{Phase: PhaseRejected, Errors: maps.Clone(errs)}
}

// Failed is the state after a transport or unexpected failure.
func Failed(n notice.Notice) State {
	return State{Phase: PhaseFailed, Notice: &n}
}

// Loading reports whether submit controls should be disabled. It stays
// true after Succeeded because the caller is expected to navigate away.
func (s State) Loading() bool {
	return s.Phase == PhaseSubmitting || s.Phase == PhaseSucceeded
}

// CanSubmit reports whether a new submission may start from this state.
func (s State) CanSubmit() bool {
	switch s.Phase {
	case PhaseSubmitting, PhaseSucceeded:
		return false
	default:
		return true
	}
}
