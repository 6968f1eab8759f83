package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/shared"
)

// getSimpleText, getPassword and getSecret are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getSecret     = GetSecret
)

// Register prompts for a name, email and password and creates an account.
// On success the session starts and the router shows the dashboard.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Register(ctx, name, email, password); err != nil {
		a.report(ctx, "Registration failed", err)
		return err
	}

	a.setUserName(email)
	fmt.Fprintln(a.out, "Account created")
	return nil
}

// Login prompts for credentials and starts a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.report(ctx, "Login unsuccessful", err)
		return err
	}

	a.setUserName(email)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Forgot requests a password reset link for an email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		a.report(ctx, "Password reset request failed", err)
		return err
	}

	fmt.Fprintln(a.out, "If the account exists, a reset link has been sent")
	return nil
}

// Reset sets a new password with a reset token and starts a session.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	password, err := getSecret("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.ResetPassword(ctx, token, password); err != nil {
		a.report(ctx, "Password reset failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Password updated")
	return nil
}

// Logout ends the session. The router then shows the entry view.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.setUserName("")
	return nil
}

// report prints a user-facing failure and logs the cause.
func (a *App) report(ctx context.Context, what string, err error) {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(a.out, "%s: server unavailable\n", what)
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintf(a.out, "%s: invalid credentials\n", what)
	default:
		fmt.Fprintf(a.out, "%s: %v\n", what, err)
	}
	a.logger.Debug(ctx, what, "error", err)
}
