package usecase

import (
	"slices"
	"sync"
)

// SessionRegistry holds per-customer state that lives only as long as a
// login: prompts ignored for this session and the unread-orders flag.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	ignored []string
	unread  bool
	// settled is false until the unread flag has been set by a login, an
	// order event or a derivation from stored orders.
	settled bool
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*session)}
}

// Start replaces any previous session of phone.
func (r *SessionRegistry) Start(phone string, unread bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[phone] = &session{unread: unread, settled: true}
}

// End forgets the session of phone.
func (r *SessionRegistry) End(phone string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, phone)
}

// get returns the session of phone, creating an unsettled one for tokens
// that outlived a restart.
func (r *SessionRegistry) get(phone string) *session {
	s, ok := r.sessions[phone]
	if !ok {
		s = &session{}
		r.sessions[phone] = s
	}
	return s
}

// Ignore hides the awaiting-info prompt of orderID until the next login.
func (r *SessionRegistry) Ignore(phone, orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.get(phone)
	if !slices.Contains(s.ignored, orderID) {
		s.ignored = append(s.ignored, orderID)
	}
}

// Ignored returns a copy of the order ids hidden for this session.
func (r *SessionRegistry) Ignored(phone string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.get(phone).ignored)
}

// SetUnread raises or clears the unread-orders flag of phone.
func (r *SessionRegistry) SetUnread(phone string, unread bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.get(phone)
	s.unread = unread
	s.settled = true
}

// Unread reports the unread-orders flag of phone as last set.
func (r *SessionRegistry) Unread(phone string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(phone).unread
}

// UnreadOr reports the unread-orders flag of phone. A session that has not
// been settled yet adopts pending, so the flag stays cleared once Mine ran.
func (r *SessionRegistry) UnreadOr(phone string, pending bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.get(phone)
	if !s.settled {
		s.unread = pending
		s.settled = true
	}
	return s.unread
}
