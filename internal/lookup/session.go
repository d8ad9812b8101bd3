// Package lookup implements the search and fetch lifecycle of a profile lookup.
//
// A Session is an explicit state machine over the committed query, the
// fetch status and the last successful profile:
//
//	Submit(raw)          Idle|Error|Loading -> Loading   (seq++)
//	Complete(t, p, nil)  Loading -> Idle                 (profile replaced)
//	Complete(t, nil, e)  Loading -> Error                (profile kept)
//
// Completions carry the Ticket issued at dispatch; a completion whose
// sequence is not the latest is discarded, so an older response can never
// overwrite a newer one.
package lookup

import (
	"errors"
	"strings"
	"sync"

	"github.com/vilaca/devfinder/internal/domain"
)

// Ticket identifies one dispatched fetch.
type Ticket struct {
	Query string
	Seq   uint64
}

// Snapshot is a point-in-time copy of the session state, safe to render.
type Snapshot struct {
	Query   string              `json:"query"`
	Status  domain.Status       `json:"status"`
	Err     *domain.LookupError `json:"-"`
	Profile *domain.Profile     `json:"profile"`
	Seq     uint64              `json:"seq"`
}

// ErrorMessage returns the user-facing error message, or "".
func (s Snapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Message()
}

// Committed reports whether a query has ever been submitted.
func (s Snapshot) Committed() bool {
	return s.Query != ""
}

// Session holds the lookup state shared by a frontend.
type Session struct {
	mu      sync.Mutex
	query   string
	status  domain.Status
	err     *domain.LookupError
	profile *domain.Profile
	seq     uint64
}

// NewSession creates an idle session with no committed query.
func NewSession() *Session {
	return &Session{status: domain.StatusIdle}
}

// Submit trims raw and, when non-empty, commits it and dispatches a new fetch.
// Blank input is a no-op. Resubmitting the current query dispatches again.
func (s *Session) Submit(raw string) (Ticket, bool) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return Ticket{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.seq++
	s.status = domain.StatusLoading
	s.err = nil

	return Ticket{Query: query, Seq: s.seq}, true
}

// Complete applies the outcome of the fetch identified by t.
// It returns false, changing nothing, when t has been superseded or
// was already completed.
func (s *Session) Complete(t Ticket, profile *domain.Profile, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Seq != s.seq || s.status != domain.StatusLoading {
		return false
	}

	if err == nil && profile == nil {
		err = &domain.LookupError{Kind: domain.ErrorKindTransport, Err: errors.New("empty profile response")}
	}
	if err != nil {
		s.status = domain.StatusError
		s.err = asLookupError(err)
		return true
	}

	copied := *profile
	s.profile = &copied
	s.status = domain.StatusIdle
	return true
}

// Latest reports whether t is the most recent dispatch.
func (s *Session) Latest(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Seq == s.seq
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Query:  s.query,
		Status: s.status,
		Err:    s.err,
		Seq:    s.seq,
	}
	if s.profile != nil {
		copied := *s.profile
		snap.Profile = &copied
	}
	return snap
}

func asLookupError(err error) *domain.LookupError {
	var lookupErr *domain.LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}
	return &domain.LookupError{Kind: domain.ErrorKindTransport, Err: err}
}
