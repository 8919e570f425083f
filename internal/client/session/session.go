// Package session holds the signed-in user's credentials and the guard that
// protects views requiring authentication.
//
// Session state is an explicit value loaded from and saved to a Store; no
// component reads persisted credentials directly.
package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/common"
)

// Keys under which the session is persisted.
const (
	KeyToken     = "token"
	KeyTokenType = "token_type"
	KeyUser      = "user"
)

// User is the cached record of the signed-in user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the persisted client session.
type Session struct {
	Token     string
	TokenType string
	User      User
}

// Authenticated reports whether a token is present. Signature and expiry
// are not checked.
func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

// Authorization returns the value of the Authorization header, or "" when
// there is no token.
func (s Session) Authorization() string {
	if !s.Authenticated() {
		return ""
	}
	tt := strings.TrimSpace(s.TokenType)
	if tt == "" {
		tt = common.DefaultTokenType
	}
	return tt + " " + s.Token
}

// Store persists a Session across restarts.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
