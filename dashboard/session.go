// Package dashboard holds the per-admin UI state that the original
// single-page dashboard kept in component state: the modal dialog, the
// current selection, and the enrollment group disclosure flags. One
// Session exists per login and expires with it.
package dashboard

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/google/uuid"
)

// Session is one admin's dashboard state
type Session struct {
	ID     string
	Token  string
	UserID uint

	mu          sync.Mutex
	dialog      Dialog
	selection   Selection
	activeGroup string
	showAll     map[string]bool
}

// Registry maps session ids to live sessions, expiring them with the
// login TTL so a stale cookie cannot resurrect old UI state.
type Registry struct {
	sessions *gocache.Cache
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{sessions: gocache.New(ttl, 2*ttl)}
}

// Create registers a fresh session for a login token
func (r *Registry) Create(token string, userID uint) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Token:   token,
		UserID:  userID,
		showAll: make(map[string]bool),
	}
	r.sessions.SetDefault(s.ID, s)
	return s
}

// Get returns the session for an id, or nil when expired or unknown
func (r *Registry) Get(id string) *Session {
	if v, ok := r.sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

// Delete drops a session on logout
func (r *Registry) Delete(id string) {
	r.sessions.Delete(id)
}
