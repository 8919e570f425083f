package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/common"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation request body. The backend's user
// name field is "username"; older clients sent "name", which is not
// supported.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries only the fields that changed.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Username == "" && u.Email == "" && u.Password == ""
}

// Token is the login response.
type Token struct {
	AccessToken string
	TokenType   string
}

type tokenWire struct {
	AccessToken *string `json:"access_token"`
	TokenType   *string `json:"token_type"`
}

// UnmarshalJSON requires access_token and defaults token_type to bearer.
func (t *Token) UnmarshalJSON(b []byte) error {
	var w tokenWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.AccessToken == nil || strings.TrimSpace(*w.AccessToken) == "" {
		return fmt.Errorf("login response without access_token: %w", common.ErrValidation)
	}
	t.AccessToken = *w.AccessToken
	t.TokenType = common.DefaultTokenType
	if w.TokenType != nil && strings.TrimSpace(*w.TokenType) != "" {
		t.TokenType = *w.TokenType
	}
	return nil
}

// Profile is the user profile as returned by the backend. Every field is
// optional on the wire and zero when absent.
type Profile struct {
	ID        string
	Username  string
	Nickname  string
	Email     string
	CreatedAt time.Time
}

type profileWire struct {
	ID        FlexID  `json:"id"`
	Username  *string `json:"username"`
	Nickname  *string `json:"nickname"`
	Email     *string `json:"email"`
	CreatedAt *string `json:"created_at"`
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	var w profileWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*p = Profile{
		ID:       string(w.ID),
		Username: deref(w.Username),
		Nickname: deref(w.Nickname),
		Email:    deref(w.Email),
	}
	if w.CreatedAt != nil {
		if ts, ok := ParseTimestamp(*w.CreatedAt); ok {
			p.CreatedAt = ts
		}
	}
	return nil
}

// DisplayName returns the first non-empty of username and nickname.
func (p Profile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Nickname
}

// DaysSince returns the number of started days between the account creation
// and now, or 0 when the creation time is unknown.
func (p Profile) DaysSince(now time.Time) int {
	if p.CreatedAt.IsZero() {
		return 0
	}
	d := now.Sub(p.CreatedAt)
	if d < 0 {
		d = -d
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// LocalPart returns the part of an e-mail address before '@'.
func LocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
