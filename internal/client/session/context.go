package session

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying m.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the Manager carried by ctx, or ErrNoSession.
func FromContext(ctx context.Context) (*Manager, error) {
	m, ok := ctx.Value(ctxKey{}).(*Manager)
	if !ok || m == nil {
		return nil, ErrNoSession
	}
	return m, nil
}
