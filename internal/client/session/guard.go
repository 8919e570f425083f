package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/logging"
)

// View names a screen of the client.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewCalendar View = "calendar"
	ViewList     View = "list"
	ViewDetail   View = "detail"
	ViewCompose  View = "compose"
	ViewProfile  View = "profile"
)

// Navigator switches between views.
type Navigator interface {
	Current() View
	Navigate(v View)
}

// Guard gates protected views on the presence of a token and performs the
// forced logout when the backend rejects the session.
type Guard struct {
	store Store
	nav   Navigator
	log   logging.Logger
}

func NewGuard(store Store, nav Navigator, log logging.Logger) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	return &Guard{store: store, nav: nav, log: log}
}

// IsAuthenticated reports whether a token is stored. A store failure counts
// as not authenticated.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	s, err := g.store.Load(ctx)
	if err != nil {
		g.log.Warn(ctx, "session load failed", "error", err)
		return false
	}
	return s.Authenticated()
}

// Require returns nil when authenticated. Otherwise it navigates to the
// login view and returns common.ErrLoginRequired.
func (g *Guard) Require(ctx context.Context) error {
	if g.IsAuthenticated(ctx) {
		return nil
	}
	g.nav.Navigate(ViewLogin)
	return common.ErrLoginRequired
}

// HandleRejection inspects err from a backend call. On an authentication
// rejection outside the login and register views it clears the session and
// navigates to login. err is returned unchanged.
func (g *Guard) HandleRejection(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, common.ErrUnauthorized) {
		return err
	}

	switch g.nav.Current() {
	case ViewLogin, ViewRegister:
		return err
	}

	g.log.Info(ctx, "session rejected, signing out", "view", string(g.nav.Current()))
	if cerr := g.store.Clear(ctx); cerr != nil {
		g.log.Error(ctx, "session clear failed", "error", cerr)
	}
	g.nav.Navigate(ViewLogin)
	return err
}
