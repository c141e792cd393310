package usecase

import (
	"sync"

	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
)

// SessionEventKind distinguishes session state transitions.
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
)

// SessionEvent describes one session state transition.
type SessionEvent struct {
	Kind    SessionEventKind
	Session *entity.Session
}

// SessionBroadcaster fans session state transitions out to registered
// handlers. It replaces ambient global session state with an explicit
// subscription interface: anything that needs to track the current
// identity subscribes instead of reading a shared variable.
type SessionBroadcaster struct {
	mu       sync.RWMutex
	handlers []func(SessionEvent)
}

// NewSessionBroadcaster creates an empty broadcaster.
func NewSessionBroadcaster() *SessionBroadcaster {
	return &SessionBroadcaster{}
}

// Subscribe registers a handler invoked on every session transition.
// Handlers run synchronously on the publishing goroutine and must not block.
func (b *SessionBroadcaster) Subscribe(handler func(SessionEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers the event to all registered handlers.
func (b *SessionBroadcaster) Publish(event SessionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers {
		h(event)
	}
}
