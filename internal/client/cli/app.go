package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/cache"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/config"
	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/logging"
	"github.com/dmitrijs2005/moodiary/internal/mood"
	"github.com/dmitrijs2005/moodiary/internal/schedule"
)

// now is the clock used for the default calendar month.
var now = time.Now

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	router   *Router
	guard    *session.Guard
	auth     services.AuthService
	entries  services.EntryService
	analyzer services.Analyzer
	stats    services.StatsService
	debounce *schedule.Debouncer

	reader *bufio.Reader
	out    io.Writer

	year  int
	month time.Month
}

// NewApp opens the state database at c.StatePath and wires the services
// against the backend at c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := client.InitDatabase(ctx, c.StatePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StatePath, "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	api, err := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "api")))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(c, log, store, api, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

// newApp wires everything except the database, so tests can pass a memory
// store and a fake backend.
func newApp(c *config.Config, log logging.Logger, store session.Store, api client.Client, in io.Reader, out io.Writer) *App {
	router := NewRouter(session.ViewLogin, log.With("component", "router"))
	guard := session.NewGuard(store, router, log.With("component", "guard"))
	entries := cache.New()

	t := now()
	return &App{
		config:   c,
		log:      log,
		router:   router,
		guard:    guard,
		auth:     services.NewAuthService(api, store, guard, entries, log.With("component", "auth")),
		entries:  services.NewEntryService(api, guard, entries, c.Intensity, log.With("component", "entries")),
		analyzer: services.NewAnalyzer(api, guard, mood.New(nil), c.RemoteAnalysis, c.Intensity, log.With("component", "analyzer")),
		stats:    services.NewStatsService(api, guard, entries),
		debounce: schedule.NewDebouncer(c.AnalyzeDelay),
		reader:   bufio.NewReader(in),
		out:      &syncWriter{w: out},
		year:     t.Year(),
		month:    t.Month(),
	}
}

// Run shows the landing view and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to moodiary (type 'help' for commands)")
	if a.isLoggedIn(ctx) {
		if err := a.Calendar(ctx, nil); err != nil {
			a.println(describeError("calendar", err))
		}
	} else {
		a.router.Navigate(session.ViewLogin)
		a.println("Type 'login' to sign in or 'register' to create an account.")
	}

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

// Close stops background analysis and releases the state database.
func (a *App) Close() {
	a.debounce.Stop()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close state database", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.guard.IsAuthenticated(ctx)
}

// status is the prompt decoration: the signed-in user and the current view.
func (a *App) status(ctx context.Context) string {
	view := a.router.Current()
	if protected(view) && !a.isLoggedIn(ctx) {
		a.router.Navigate(session.ViewLogin)
		view = session.ViewLogin
	}

	sess, err := a.auth.Session(ctx)
	if err != nil || !sess.Authenticated() || sess.User.Name == "" {
		return fmt.Sprintf("(%s)", view)
	}
	return fmt.Sprintf("(%s %s)", sess.User.Name, view)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// syncWriter serialises writes from the REPL and the debouncer goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
