// Package common defines shared constants and sentinel errors used across
// the client layers of moodiary. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Authentication errors: rejected credentials or a missing/expired token.
	ErrUnauthorized  = errors.New("unauthorized")
	ErrLoginRequired = errors.New("login required")

	// Upstream rejections. ErrConflict covers the one-entry-per-date rule.
	ErrConflict = errors.New("conflict")
	ErrRejected = errors.New("request rejected")

	// ErrValidation marks input refused before or by the backend.
	ErrValidation = errors.New("validation error")

	// Transport and server failures.
	ErrUnavailable = errors.New("server unavailable")
	ErrServer      = errors.New("server error")
)

// ValidationError captures field level validation issues that callers can
// surface to users. It matches ErrValidation via errors.Is.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for f := range v.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v.FieldErrors[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records a field level validation error. The first message for a
// field wins.
func (v *ValidationError) Add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	if _, ok := v.FieldErrors[field]; ok {
		return
	}
	v.FieldErrors[field] = message
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// Err returns v when it holds errors and nil otherwise, so callers can
// write `return v.Err()` without the typed-nil trap.
func (v *ValidationError) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}
