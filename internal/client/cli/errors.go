package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/common"
)

const genericFailure = "Something went wrong. Please try again."

// describeError turns a command error into the message shown to the user.
// cmd is the REPL command that failed; an authentication error means bad
// credentials during login and an expired session everywhere else.
func describeError(cmd string, err error) string {
	if err == nil {
		return ""
	}

	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return describeValidation(verr)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, common.ErrLoginRequired):
		return "Please log in first (type 'login')."
	case errors.Is(err, common.ErrUnauthorized):
		if cmd == "login" {
			return "Invalid email or password."
		}
		return "Your session has expired. Please log in again."
	case errors.Is(err, services.ErrNoChanges):
		return "Nothing to update."
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrRejected), errors.Is(err, common.ErrValidation):
		if d := client.DetailOf(err); d != "" {
			return d
		}
		return "The server rejected the request."
	case errors.Is(err, common.ErrNotFound):
		return "Entry not found."
	case errors.Is(err, common.ErrUnavailable):
		return "Could not reach the server. Please try again later."
	}
	return genericFailure
}

func describeValidation(v *common.ValidationError) string {
	fields := make([]string, 0, len(v.FieldErrors))
	for f := range v.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("Please check your input:")
	for _, f := range fields {
		b.WriteString("\n  - ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(v.FieldErrors[f])
	}
	return b.String()
}
