package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/client/client"
	"github.com/dmitrijs2005/cryptotracker/internal/client/config"
	"github.com/dmitrijs2005/cryptotracker/internal/client/credstore"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	serverconfig "github.com/dmitrijs2005/cryptotracker/internal/server/config"
	"github.com/dmitrijs2005/cryptotracker/internal/server/httpapi"
	"github.com/dmitrijs2005/cryptotracker/internal/server/portfolio"
	"github.com/dmitrijs2005/cryptotracker/internal/server/users"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	token string
}

func (m *captureMailer) SendResetToken(_ context.Context, _, token string) error {
	m.token = token
	return nil
}

// backend is the development API served from an httptest server.
type backend struct {
	ts        *httptest.Server
	users     *users.Service
	portfolio *portfolio.MemoryStore
	mailer    *captureMailer
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	cfg := &serverconfig.Config{}
	cfg.LoadDefaults()

	repo := users.NewMemoryRepository()
	m := &captureMailer{}
	us := users.NewService(repo, repo, m, cfg)
	ps := portfolio.NewMemoryStore()

	ts := httptest.NewServer(httpapi.NewServer(":0", logging.Nop(), us, ps).Handler())
	t.Cleanup(ts.Close)
	return &backend{ts: ts, users: us, portfolio: ps, mailer: m}
}

func (b *backend) register(t *testing.T, email, password string) string {
	t.Helper()
	tok, err := b.users.Register(context.Background(), "Ann", email, []byte(password))
	require.NoError(t, err)
	return tok
}

func newTestApp(t *testing.T, serverURL string, store credstore.Store, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerURL = serverURL
	cfg.OnlineCheckInterval = 0

	var out bytes.Buffer
	api := client.NewHTTPClient(serverURL, store, 2*time.Second)
	a, err := newApp(cfg, logging.Nop(), store, api, nil, strings.NewReader(input), &out)
	require.NoError(t, err)
	return a, &out
}

// attach returns the App context with the router following session events.
func attach(t *testing.T, a *App) context.Context {
	t.Helper()
	ctx := a.Context(context.Background())
	require.NoError(t, a.router.Attach(ctx))
	t.Cleanup(a.router.Detach)
	return ctx
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	origPassword, origSecret := getPassword, getSecret
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	getSecret = func(string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() {
		getPassword, getSecret = origPassword, origSecret
	})
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
