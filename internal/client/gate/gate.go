// Package gate decides whether a view may render for the current session.
//
// The gate only reads session state. It never logs in or out and it does not
// navigate: a Redirect decision tells the caller where to go instead.
package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cryptotracker/internal/client/session"
)

// Paths shared by the gate and the router.
const (
	EntryPath   = "/"
	LandingPath = "/dashboard"
)

// ProtectedViews is the set of paths that need an authenticated session.
// Everything else is public; the backend rejects unauthorized data requests
// made from public views.
var ProtectedViews = []string{"/ai-assistant", "/add-exchange"}

// ErrUnknownRedirect means the redirect target is not in the route table.
var ErrUnknownRedirect = errors.New("gate redirect target is not a known route")

// Outcome is the kind of a Decision.
type Outcome int

const (
	Render Outcome = iota
	Redirect
)

func (o Outcome) String() string {
	if o == Redirect {
		return "redirect"
	}
	return "render"
}

// Decision is the result of evaluating a path.
type Decision struct {
	Outcome Outcome
	// To is set for Redirect decisions.
	To string
}

// Gate guards a fixed set of protected paths.
type Gate struct {
	protected  map[string]struct{}
	redirectTo string
}

// New returns a Gate protecting paths and redirecting anonymous sessions to
// redirectTo.
func New(paths []string, redirectTo string) *Gate {
	protected := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		protected[p] = struct{}{}
	}
	return &Gate{protected: protected, redirectTo: redirectTo}
}

// Default returns the gate for ProtectedViews redirecting to EntryPath.
func Default() *Gate {
	return New(ProtectedViews, EntryPath)
}

// IsProtected reports whether path needs an authenticated session.
func (g *Gate) IsProtected(path string) bool {
	_, ok := g.protected[path]
	return ok
}

// RedirectTarget is where anonymous sessions are sent.
func (g *Gate) RedirectTarget() string {
	return g.redirectTo
}

// Evaluate decides whether path renders for the session carried by ctx.
// A ctx without a session manager is an error, never a default decision.
func (g *Gate) Evaluate(ctx context.Context, path string) (Decision, error) {
	m, err := session.FromContext(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("evaluate %s: %w", path, err)
	}
	return g.decide(path, m.State()), nil
}

func (g *Gate) decide(path string, st session.State) Decision {
	if !g.IsProtected(path) || st.Authenticated() {
		return Decision{Outcome: Render}
	}
	return Decision{Outcome: Redirect, To: g.redirectTo}
}

// Mount keeps path under watch while it is on screen: onChange receives a
// fresh decision after every session event. The returned function stops the
// watch.
func (g *Gate) Mount(ctx context.Context, path string, onChange func(Decision)) (unmount func(), err error) {
	m, err := session.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", path, err)
	}
	return m.Subscribe(func(ev session.Event) {
		onChange(g.decide(path, ev.State))
	}), nil
}

// ValidateRoutes checks that the redirect target exists among routes.
func (g *Gate) ValidateRoutes(routes []string) error {
	for _, r := range routes {
		if r == g.redirectTo {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRedirect, g.redirectTo)
}
