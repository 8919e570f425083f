package cli

import (
	"context"

	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
)

func (a *App) Profile(ctx context.Context) error {
	o, err := a.stats.Overview(ctx)
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewProfile)
	a.println(renderOverview(o))
	return nil
}

// EditProfile prompts for new values; Enter keeps the current one and an
// empty password leaves it unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewProfile)

	in := services.ProfileInput{Username: current.Username, Email: current.Email}
	if v, err := getSimpleText(a.reader, "Username ["+current.Username+"]", a.out); err != nil {
		return err
	} else if v != "" {
		in.Username = v
	}
	if v, err := getSimpleText(a.reader, "Email ["+current.Email+"]", a.out); err != nil {
		return err
	} else if v != "" {
		in.Email = v
	}
	if in.Password, err = getPassword(a.reader, "New password (Enter to keep)", a.out); err != nil {
		return err
	}
	if in.Password != "" {
		if in.Confirm, err = getPassword(a.reader, "Confirm new password", a.out); err != nil {
			return err
		}
	}

	if err := a.auth.UpdateProfile(ctx, in); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}

// DeleteAccount removes the account after the user types "delete".
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.guard.Require(ctx); err != nil {
		return err
	}
	a.router.Navigate(session.ViewProfile)

	answer, err := getSimpleText(a.reader, "This removes your account and every entry. Type 'delete' to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "delete" {
		a.println("Kept your account.")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx); err != nil {
		return err
	}
	a.router.Navigate(session.ViewLogin)
	a.println("Account deleted.")
	return nil
}
