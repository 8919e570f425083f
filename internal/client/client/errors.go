package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/common"
)

// APIError is a non-2xx backend response. It unwraps to the common sentinel
// matching its status code.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status == http.StatusConflict:
		return common.ErrConflict
	case e.Status == http.StatusBadRequest:
		return common.ErrRejected
	case e.Status == http.StatusUnprocessableEntity:
		return common.ErrValidation
	case e.Status >= 500:
		return common.ErrServer
	}
	return nil
}

// DetailOf returns the backend's detail message carried by err, if any.
func DetailOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// parseDetail extracts the "detail" field of a FastAPI error body. Validation
// errors carry a list of {loc, msg}; their messages are joined.
func parseDetail(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &env) != nil || len(env.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var s string
	if json.Unmarshal(env.Detail, &s) == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(env.Detail, &items) == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return string(env.Detail)
}
