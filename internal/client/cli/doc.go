// Package cli provides the interactive moodiary terminal client.
//
// It wires configuration, the local session store, the backend API client
// and the application services into a line-oriented REPL. The REPL keeps a
// current view (login, register, calendar, list, detail, compose, profile)
// in a Router, which the session guard uses to send the user back to login
// when the backend rejects the stored token.
//
// Key features:
//   - Register / Login / Logout
//   - Month calendar with per-day mood colours and monthly mood counts
//   - List, show, write, edit and delete diary entries
//   - Mood suggestion while composing, debounced after the last edit
//   - Profile statistics, profile editing and account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
