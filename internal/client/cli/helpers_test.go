package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/backendtest"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/config"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/logging"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	be    *backendtest.Server
	store *session.MemoryStore
	buf   *bytes.Buffer
}

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()
	plainPasswords(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AutoAnalyze = false
	for _, m := range mutate {
		m(cfg)
	}

	be := backendtest.New(t)
	store := session.NewMemoryStore()
	api, err := client.NewHTTPClient(be.URL, store, client.WithTimeout(5*time.Second))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	a := newApp(cfg, logging.Nop(), store, api, strings.NewReader(""), buf)
	t.Cleanup(a.Close)
	return &testApp{App: a, be: be, store: store, buf: buf}
}

// feed replaces the input with lines, one answer per prompt.
func (ta *testApp) feed(lines ...string) {
	ta.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// signIn registers alice on the fake backend and stores her token.
func (ta *testApp) signIn(t *testing.T) {
	t.Helper()
	ta.be.AddUser("alice", "alice@example.com", "secret1")
	require.NoError(t, ta.store.Save(context.Background(), session.Session{
		Token:     ta.be.Token("alice@example.com"),
		TokenType: "bearer",
		User:      session.User{Name: "alice", Email: "alice@example.com"},
	}))
	ta.router.Navigate(session.ViewCalendar)
}

func (ta *testApp) output() string {
	return ta.buf.String()
}

// plainPasswords makes password prompts read from the line reader.
func plainPasswords(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}
