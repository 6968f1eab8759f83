// Package router maps paths to views and applies the access gate.
//
// The router owns the navigation side effects of the session: it subscribes
// to session events and moves to the landing view on login and to the gate's
// redirect target on logout. While a protected view is current, the gate is mounted on
// it so that a session change made elsewhere (Sync) redirects away.
package router

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/cryptotracker/internal/client/gate"
	"github.com/dmitrijs2005/cryptotracker/internal/client/session"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
)

var (
	ErrNotFound        = errors.New("route not found")
	ErrRedirectLoop    = errors.New("redirect loop")
	errAlreadyAttached = errors.New("router is already attached")
)

// View renders one screen.
type View interface {
	Render(ctx context.Context) error
}

// ViewFunc adapts a function to View.
type ViewFunc func(ctx context.Context) error

func (f ViewFunc) Render(ctx context.Context) error { return f(ctx) }

type Router struct {
	gate   *gate.Gate
	logger logging.Logger

	mu      sync.Mutex
	routes  map[string]View
	current string
	ctx     context.Context
	unmount func()
	detach  func()
}

func New(g *gate.Gate, logger logging.Logger) *Router {
	return &Router{
		gate:   g,
		logger: logger.With("module", "router"),
		routes: make(map[string]View),
	}
}

// Handle registers v at path, replacing any previous view.
func (r *Router) Handle(path string, v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[path] = v
}

// Routes returns the registered paths in lexical order.
func (r *Router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Validate checks the route table against the gate's redirect target.
func (r *Router) Validate() error {
	return r.gate.ValidateRoutes(r.Routes())
}

// Current is the path of the view on screen, empty before the first
// navigation.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Attach subscribes the router to the session carried by ctx. ctx is also
// used to render views navigated to from session events.
func (r *Router) Attach(ctx context.Context) error {
	m, err := session.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("attach router: %w", err)
	}

	r.mu.Lock()
	if r.detach != nil {
		r.mu.Unlock()
		return errAlreadyAttached
	}
	r.ctx = ctx
	r.mu.Unlock()

	unsubscribe := m.Subscribe(r.onSession)

	r.mu.Lock()
	r.detach = unsubscribe
	r.mu.Unlock()
	return nil
}

// Detach stops following the session and unmounts the gate.
func (r *Router) Detach() {
	r.mu.Lock()
	detach, unmount := r.detach, r.unmount
	r.detach, r.unmount = nil, nil
	r.mu.Unlock()

	if unmount != nil {
		unmount()
	}
	if detach != nil {
		detach()
	}
}

func (r *Router) onSession(ev session.Event) {
	var target string
	switch ev.Type {
	case session.EventLogin:
		target = gate.LandingPath
	case session.EventLogout:
		target = r.gate.RedirectTarget()
	default:
		// Sync: the mounted gate handles protected views.
		return
	}

	r.mu.Lock()
	ctx := r.ctx
	r.mu.Unlock()

	if _, err := r.Navigate(ctx, target); err != nil {
		r.logger.Error(ctx, "navigation after session change failed", "event", string(ev.Type), "error", err)
	}
}

const maxRedirects = 8

// Navigate resolves path through the gate, makes the resulting view current
// and renders it. It returns the path actually shown. The view's render error
// is returned as is.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	seen := map[string]struct{}{}
	for {
		if _, ok := seen[path]; ok || len(seen) >= maxRedirects {
			return "", fmt.Errorf("%w at %s", ErrRedirectLoop, path)
		}
		seen[path] = struct{}{}

		d, err := r.gate.Evaluate(ctx, path)
		if err != nil {
			return "", err
		}
		if d.Outcome == gate.Redirect {
			r.logger.Debug(ctx, "gate redirect", "from", path, "to", d.To)
			path = d.To
			continue
		}
		break
	}

	r.mu.Lock()
	v, ok := r.routes[path]
	if !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	oldUnmount := r.unmount
	r.unmount = nil
	r.current = path
	r.mu.Unlock()

	if oldUnmount != nil {
		oldUnmount()
	}

	if r.gate.IsProtected(path) {
		if err := r.mount(ctx, path); err != nil {
			return "", err
		}
	}

	r.logger.Debug(ctx, "navigate", "path", path)
	return path, v.Render(ctx)
}

func (r *Router) mount(ctx context.Context, path string) error {
	unmount, err := r.gate.Mount(ctx, path, func(d gate.Decision) {
		if d.Outcome != gate.Redirect || r.Current() != path {
			return
		}
		if _, err := r.Navigate(ctx, d.To); err != nil {
			r.logger.Error(ctx, "gate redirect failed", "from", path, "error", err)
		}
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.current != path {
		// A nested navigation already moved on.
		r.mu.Unlock()
		unmount()
		return nil
	}
	r.unmount = unmount
	r.mu.Unlock()
	return nil
}
