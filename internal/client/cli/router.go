package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/logging"
)

// Router tracks the current view. It is shared with the session guard, which
// may navigate from the debouncer's goroutine.
type Router struct {
	mu      sync.RWMutex
	current session.View
	log     logging.Logger
}

func NewRouter(start session.View, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop()
	}
	return &Router{current: start, log: log}
}

func (r *Router) Current() session.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) Navigate(v session.View) {
	r.mu.Lock()
	from := r.current
	r.current = v
	r.mu.Unlock()

	if from != v {
		r.log.Debug(context.Background(), "navigate", "from", string(from), "to", string(v))
	}
}

// protected reports whether v needs a session.
func protected(v session.View) bool {
	switch v {
	case session.ViewLogin, session.ViewRegister:
		return false
	}
	return true
}
