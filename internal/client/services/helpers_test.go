package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/backendtest"
	"github.com/dmitrijs2005/moodiary/internal/client/cache"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/stretchr/testify/require"
)

type fakeNav struct{ current session.View }

func (f *fakeNav) Current() session.View    { return f.current }
func (f *fakeNav) Navigate(v session.View) { f.current = v }

type env struct {
	be     *backendtest.Server
	client *client.HTTPClient
	store  *session.MemoryStore
	nav    *fakeNav
	guard  *session.Guard
	cache  *cache.Cache
}

func newEnv(t *testing.T) *env {
	t.Helper()
	be := backendtest.New(t)
	store := session.NewMemoryStore()
	c, err := client.NewHTTPClient(be.URL, store, client.WithTimeout(5*time.Second))
	require.NoError(t, err)

	nav := &fakeNav{current: session.ViewCalendar}
	return &env{
		be:     be,
		client: c,
		store:  store,
		nav:    nav,
		guard:  session.NewGuard(store, nav, nil),
		cache:  cache.New(),
	}
}

// signIn registers alice on the fake backend and stores her token.
func (e *env) signIn(t *testing.T) {
	t.Helper()
	e.be.AddUser("alice", "alice@example.com", "secret1")
	require.NoError(t, e.store.Save(context.Background(), session.Session{
		Token:     e.be.Token("alice@example.com"),
		TokenType: "bearer",
		User:      session.User{Name: "alice", Email: "alice@example.com"},
	}))
}

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}
