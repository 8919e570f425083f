// Package services contains the application services of the diary client.
// This file defines the authentication service: login with profile fallback,
// registration, logout, and profile maintenance.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/client/cache"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/logging"
)

// ErrNoChanges is returned by UpdateProfile when the input matches the
// current profile.
var ErrNoChanges = errors.New("nothing to update")

// RegisterInput is the registration form.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// ProfileInput is the profile edit form. Username and Email carry the
// desired values; Password is changed only when non-empty.
type ProfileInput struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login: validate, authenticate, persist the token, then the user record.
//   - Register: validate and create the account; does not sign in.
//   - Logout: forget the session and the cached entries.
//   - UpdateProfile: send only changed fields; ErrNoChanges when none.
//   - DeleteAccount: remove the account and sign out.
type AuthService interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, in RegisterInput) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (session.Session, error)
	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, in ProfileInput) error
	DeleteAccount(ctx context.Context) error
}

type authService struct {
	client  client.Client
	store   session.Store
	guard   *session.Guard
	entries *cache.Cache
	log     logging.Logger
}

func NewAuthService(c client.Client, store session.Store, guard *session.Guard, entries *cache.Cache, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, store: store, guard: guard, entries: entries, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)

	v := &common.ValidationError{}
	checkEmail(v, email)
	checkRequired(v, "password", password)
	if err := v.Err(); err != nil {
		return session.Session{}, err
	}

	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, fmt.Errorf("login: %w", err)
	}

	sess := session.Session{Token: tok.AccessToken, TokenType: tok.TokenType}
	if err := a.store.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}

	profile, err := a.client.Profile(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile unavailable after login, using fallback user", "error", err)
	}
	sess.User = userFor(profile, tok.AccessToken, email)

	if err := a.store.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	a.entries.Reset()
	a.log.Info(ctx, "signed in", "user", sess.User.Name)
	return sess, nil
}

// userFor builds the cached user record. Missing profile fields fall back to
// the token subject and then to the login e-mail.
func userFor(p models.Profile, token, loginEmail string) session.User {
	u := session.User{ID: p.ID, Name: p.DisplayName(), Email: p.Email}
	if u.Name == "" {
		if sub, ok := session.SubjectFromToken(token); ok {
			u.Name = models.LocalPart(sub)
		} else {
			u.Name = models.LocalPart(loginEmail)
		}
	}
	if u.Email == "" {
		u.Email = loginEmail
	}
	return u
}

func (a *authService) Register(ctx context.Context, in RegisterInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	v := &common.ValidationError{}
	checkRequired(v, "username", in.Username)
	checkEmail(v, in.Email)
	checkNewPassword(v, in.Password, in.Confirm)
	if err := v.Err(); err != nil {
		return err
	}

	err := a.client.Register(ctx, models.Registration{Username: in.Username, Email: in.Email, Password: in.Password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.entries.Reset()
	return a.store.Clear(ctx)
}

func (a *authService) Session(ctx context.Context) (session.Session, error) {
	return a.store.Load(ctx)
}

func (a *authService) Profile(ctx context.Context) (models.Profile, error) {
	if err := a.guard.Require(ctx); err != nil {
		return models.Profile{}, err
	}
	p, err := a.client.Profile(ctx)
	if err != nil {
		return models.Profile{}, a.guard.HandleRejection(ctx, fmt.Errorf("profile: %w", err))
	}
	return p, nil
}

func (a *authService) UpdateProfile(ctx context.Context, in ProfileInput) error {
	current, err := a.Profile(ctx)
	if err != nil {
		return err
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	v := &common.ValidationError{}
	checkRequired(v, "username", in.Username)
	checkEmail(v, in.Email)
	if in.Password != "" {
		checkNewPassword(v, in.Password, in.Confirm)
	}
	if err := v.Err(); err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if in.Username != current.Username {
		upd.Username = in.Username
	}
	if in.Email != current.Email {
		upd.Email = in.Email
	}
	upd.Password = in.Password
	if upd.Empty() {
		return ErrNoChanges
	}

	if err := a.client.UpdateProfile(ctx, current.Username, upd); err != nil {
		return a.guard.HandleRejection(ctx, fmt.Errorf("update profile: %w", err))
	}

	sess, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	sess.User.Name = in.Username
	sess.User.Email = in.Email
	return a.store.Save(ctx, sess)
}

func (a *authService) DeleteAccount(ctx context.Context) error {
	current, err := a.Profile(ctx)
	if err != nil {
		return err
	}

	username := current.Username
	if username == "" {
		sess, err := a.store.Load(ctx)
		if err != nil {
			return err
		}
		username = sess.User.Name
	}

	if err := a.client.DeleteAccount(ctx, username); err != nil {
		return a.guard.HandleRejection(ctx, fmt.Errorf("delete account: %w", err))
	}
	a.log.Info(ctx, "account deleted", "user", username)
	return a.Logout(ctx)
}
