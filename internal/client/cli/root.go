package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/client/credstore"
	"github.com/dmitrijs2005/cryptotracker/internal/client/gate"
	"github.com/dmitrijs2005/cryptotracker/internal/client/router"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	userName, mode := a.userName, a.mode
	a.mu.Unlock()

	var parts []string
	if a.isLoggedIn() && userName != "" {
		parts = append(parts, userName)
	}
	if mode != "" {
		parts = append(parts, string(mode))
	}
	if a.demo.Active() {
		parts = append(parts, "demo")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Go opens the view at path, following gate redirects.
func (a *App) Go(ctx context.Context, path string) error {
	shown, err := a.router.Navigate(ctx, path)
	switch {
	case errors.Is(err, router.ErrNotFound):
		fmt.Fprintf(a.out, "No such page: %s\n", path)
		return err
	case shown == "":
		if err != nil {
			a.report(ctx, "Navigation failed", err)
		}
		return err
	}

	if shown != path {
		fmt.Fprintf(a.out, "(redirected to %s)\n", shown)
	}
	return err
}

// Demo switches the demo data overlay.
func (a *App) Demo(ctx context.Context, on bool) error {
	a.demo.SetActive(on)
	if on {
		fmt.Fprintln(a.out, "Demo mode on: views show sample data")
	} else {
		fmt.Fprintln(a.out, "Demo mode off")
	}
	return nil
}

// Status prints the session, connectivity and demo state.
func (a *App) Status(ctx context.Context) error {
	st := "anonymous"
	if a.isLoggedIn() {
		st = "authenticated"
	}
	storage := "persistent"
	switch a.store.(type) {
	case credstore.Disabled:
		storage = "unavailable (session ends with the process)"
	case *credstore.MemoryStore:
		storage = "in memory"
	}
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}

	fmt.Fprintf(a.out, "Session:  %s\n", st)
	fmt.Fprintf(a.out, "Storage:  %s\n", storage)
	fmt.Fprintf(a.out, "Server:   %s\n", mode)
	fmt.Fprintf(a.out, "Demo:     %t\n", a.demo.Active())
	fmt.Fprintf(a.out, "View:     %s\n", a.router.Current())
	return nil
}

// Root shows the entry view or, for a remembered session, the landing view,
// starts the background watchers and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "CryptoTracker CLI (type 'help' for commands)")

	start := gate.EntryPath
	if a.isLoggedIn() {
		start = gate.LandingPath
	}
	_ = a.Go(ctx, start)
	a.rememberUser(ctx)

	if a.config.OnlineCheckInterval > 0 {
		a.checkOnline(ctx)
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}
	if a.config.StoreWatchInterval > 0 {
		go a.session.Watch(ctx, a.config.StoreWatchInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// rememberUser fills the prompt's user name for a session restored from the
// store. Failures are left to the views.
func (a *App) rememberUser(ctx context.Context) {
	if !a.isLoggedIn() || a.demo.Active() {
		return
	}
	p, err := a.portfolio.Profile(ctx)
	if err != nil {
		a.logger.Debug(ctx, "profile not loaded", "error", err)
		return
	}
	a.setUserName(p.Email)
}
