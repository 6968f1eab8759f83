package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
	"github.com/dmitrijs2005/cryptotracker/internal/client/router"
	"github.com/dmitrijs2005/cryptotracker/internal/client/session"
	"github.com/dmitrijs2005/cryptotracker/internal/shared"
)

func (a *App) registerRoutes() {
	routes := map[string]router.ViewFunc{
		"/":                a.entryView,
		"/register":        a.hintView("Create an account with 'register'."),
		"/forgot-password": a.hintView("Request a reset link with 'forgot'."),
		"/reset-password":  a.hintView("Set a new password with 'reset' and the token from the email."),
		"/dashboard":       a.dashboardView,
		"/holdings":        a.holdingsView,
		"/trades":          a.tradesView,
		"/pricing":         a.pricingView,
		"/risk-alerts":     a.riskAlertsView,
		"/pnl-reports":     a.pnlView,
		"/exchange":        a.exchangeView,
		"/profile":         a.profileView,
		"/ai-assistant":    a.assistantView,
		"/add-exchange":    a.addExchangeView,
	}
	for path, v := range routes {
		a.router.Handle(path, v)
	}
}

func (a *App) entryView(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to CryptoTracker.")
	fmt.Fprintln(a.out, "Sign in with 'login', create an account with 'register' or explore with 'demo on'.")
	return nil
}

func (a *App) hintView(text string) router.ViewFunc {
	return func(ctx context.Context) error {
		fmt.Fprintln(a.out, text)
		return nil
	}
}

// fetchFailed reports a data request failure. An unauthorized response means
// the stored credential is no longer accepted, so the session ends here.
func (a *App) fetchFailed(ctx context.Context, err error) error {
	if !errors.Is(err, client.ErrUnauthorized) {
		a.report(ctx, "Request failed", err)
		return err
	}

	m, mErr := session.FromContext(ctx)
	if mErr != nil {
		return errors.Join(err, mErr)
	}
	if m.State().Authenticated() {
		fmt.Fprintln(a.out, "Your session has expired, please log in again")
	} else {
		fmt.Fprintln(a.out, "Log in to see this page")
	}
	a.setUserName("")
	m.Logout()
	return err
}

func (a *App) demoBanner() {
	if a.demo.Active() {
		fmt.Fprintln(a.out, "[demo data]")
	}
}

func (a *App) dashboardView(ctx context.Context) error {
	holdings, err := a.portfolio.Holdings(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}
	pnl, err := a.portfolio.PnL(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	fmt.Fprintln(a.out, "Dashboard")
	fmt.Fprintf(a.out, "  Assets held: %d\n", len(holdings))
	fmt.Fprintf(a.out, "  Total P&L:   %s\n", pnl)
	return nil
}

func (a *App) holdingsView(ctx context.Context) error {
	holdings, err := a.portfolio.Holdings(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	if len(holdings) == 0 {
		fmt.Fprintln(a.out, "No holdings")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "CRYPTO\tAMOUNT"); err != nil {
		return err
	}
	for _, h := range holdings {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", h.Crypto, h.Amount.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (a *App) tradesView(ctx context.Context) error {
	trades, err := a.portfolio.Trades(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	if len(trades) == 0 {
		fmt.Fprintln(a.out, "No trades yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "DATE\tSIDE\tCRYPTO\tAMOUNT\tPRICE"); err != nil {
		return err
	}
	for _, t := range trades {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ExecutedAt.Format("2006-01-02 15:04"), t.Side, t.Crypto, t.Amount.String(),
			models.FormatMoney(t.Price, models.DefaultCurrency)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (a *App) pnlView(ctx context.Context) error {
	pnl, err := a.portfolio.PnL(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	fmt.Fprintf(a.out, "Profit & loss: %s\n", pnl)
	return nil
}

func (a *App) riskAlertsView(ctx context.Context) error {
	holdings, err := a.portfolio.Holdings(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	switch len(holdings) {
	case 0:
		fmt.Fprintln(a.out, "No holdings to analyse")
	case 1:
		fmt.Fprintf(a.out, "Concentration risk: the whole portfolio is in %s\n", holdings[0].Crypto)
	default:
		fmt.Fprintln(a.out, "No risk alerts")
	}
	return nil
}

func (a *App) pricingView(ctx context.Context) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAN\tINCLUDES")
	fmt.Fprintln(w, "Free\tholdings, trades, P&L reports")
	fmt.Fprintln(w, "Pro\texchange sync, risk alerts, AI assistant")
	return w.Flush()
}

func (a *App) exchangeView(ctx context.Context) error {
	fmt.Fprintln(a.out, "Supported exchanges:")
	for _, e := range models.Exchanges {
		fmt.Fprintf(a.out, "  %-10s %s\n", e.ID, e.Name)
	}
	fmt.Fprintln(a.out, "Connect one with 'go /add-exchange'.")
	return nil
}

func (a *App) profileView(ctx context.Context) error {
	p, err := a.portfolio.Profile(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	if !a.demo.Active() {
		a.setUserName(p.Email)
	}
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\n", p.Name, p.Email)
	return nil
}

// EditProfile prompts for a new name and email and saves them. A blank answer
// keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.portfolio.Profile(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name (%s)", current.Name), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email (%s)", current.Email), a.out)
	if err != nil {
		return err
	}

	updated := current
	if name != "" {
		updated.Name = name
	}
	if email != "" {
		updated.Email = email
	}

	if err := a.portfolio.UpdateProfile(ctx, updated); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return a.fetchFailed(ctx, err)
		}
		a.report(ctx, "Profile not saved", err)
		return err
	}

	a.setUserName(updated.Email)
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func (a *App) assistantView(ctx context.Context) error {
	holdings, err := a.portfolio.Holdings(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}
	pnl, err := a.portfolio.PnL(ctx)
	if err != nil {
		return a.fetchFailed(ctx, err)
	}

	a.demoBanner()
	fmt.Fprintln(a.out, "AI assistant")
	fmt.Fprintf(a.out, "You hold %d asset(s) with a total P&L of %s.\n", len(holdings), pnl)
	return nil
}

func (a *App) addExchangeView(ctx context.Context) error {
	exchange, err := getSimpleText(a.reader, fmt.Sprintf("Exchange (default %s)", models.DefaultExchange), a.out)
	if err != nil {
		return err
	}
	key, err := getSimpleText(a.reader, "API key", a.out)
	if err != nil {
		return err
	}
	secret, err := getSecret("API secret", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(secret)

	conn := models.ExchangeConnection{Exchange: exchange, APIKey: key, APISecret: string(secret)}
	if err := a.portfolio.AddExchange(ctx, conn); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return a.fetchFailed(ctx, err)
		}
		a.report(ctx, "Exchange not added", err)
		return err
	}

	fmt.Fprintln(a.out, "Exchange connected")
	return nil
}
