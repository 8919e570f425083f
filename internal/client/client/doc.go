// Package client contains the client-side transport for the diary backend.
//
// # Overview
//
// The package provides:
//  1. The Client interface: authentication, profile, entry CRUD and the
//     server-side emotion analysis call.
//  2. HTTPClient, a JSON-over-HTTP implementation that reads the session
//     token from a session.Store for every request, stamps each request with
//     an X-Request-ID, applies a per-request timeout, and maps non-2xx
//     responses to *APIError.
//  3. Local state bootstrap (InitDatabase, RunMigrations) that opens the
//     SQLite state file and applies the embedded goose migrations.
//
// # Error Handling
//
// *APIError unwraps to the sentinels in package common, so callers match with
// errors.Is: 401/403 ErrUnauthorized, 404 ErrNotFound, 409 ErrConflict,
// 400 ErrRejected, 422 ErrValidation, 5xx ErrServer. Transport failures wrap
// ErrUnavailable. Nothing is retried.
package client
