package cli

import (
	"context"

	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to the interactive input helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for a username, e-mail, password and confirmation and
// creates the account. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	a.router.Navigate(session.ViewRegister)

	var (
		in  services.RegisterInput
		err error
	)
	if in.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if in.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if in.Confirm, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, in); err != nil {
		return err
	}

	a.router.Navigate(session.ViewLogin)
	a.println("Account created. Type 'login' to sign in.")
	return nil
}

// Login prompts for credentials, stores the session and opens the calendar.
func (a *App) Login(ctx context.Context) error {
	a.router.Navigate(session.ViewLogin)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.println("Welcome, " + sess.User.Name + "!")
	return a.Calendar(ctx, nil)
}

// Logout forgets the session and the cached entries.
func (a *App) Logout(ctx context.Context) error {
	a.debounce.Cancel()
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.router.Navigate(session.ViewLogin)
	a.println("Signed out.")
	return nil
}
