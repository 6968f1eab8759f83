package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/client/authn"
	"github.com/dmitrijs2005/cryptotracker/internal/client/models"
	"github.com/dmitrijs2005/cryptotracker/internal/netx"
)

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the backend at baseURL. Every request
// carries the credential currently held by source, if any.
func NewHTTPClient(baseURL string, source authn.CredentialSource, timeout time.Duration) *HTTPClient {
	transport := authn.NewTransport(source, netx.NewRequestIDTransport(http.DefaultTransport))
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
	}
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	var resp tokenResponse
	req := credentialsRequest{Name: name, Email: email, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.do(ctx, http.MethodPost, "/api/auth/forgot-password", req, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, resetToken string, password []byte) (string, error) {
	var resp tokenResponse
	req := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{Token: resetToken, Password: string(password)}
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &p)
	return p, err
}

func (c *HTTPClient) UpdateMe(ctx context.Context, p models.Profile) error {
	return c.do(ctx, http.MethodPut, "/api/auth/me", p, nil)
}

func (c *HTTPClient) Holdings(ctx context.Context) ([]models.Holding, error) {
	var hs []models.Holding
	err := c.do(ctx, http.MethodGet, "/api/holdings", nil, &hs)
	return hs, err
}

func (c *HTTPClient) Trades(ctx context.Context) ([]models.Trade, error) {
	var ts []models.Trade
	err := c.do(ctx, http.MethodGet, "/api/trades", nil, &ts)
	return ts, err
}

func (c *HTTPClient) PnL(ctx context.Context) (models.PnL, error) {
	var p models.PnL
	err := c.do(ctx, http.MethodGet, "/api/pnl", nil, &p)
	return p, err
}

func (c *HTTPClient) AddExchange(ctx context.Context, conn models.ExchangeConnection) error {
	return c.do(ctx, http.MethodPost, "/api/add-exchange/exchanges", conn, nil)
}

// Ping reports whether GET /health answers {"status":"OK"}.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}

	var er errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&er)
	msg := er.Error
	if msg == "" {
		msg = resp.Status
	}

	// 403 means the credential is valid but not allowed; only 401 ends the session.
	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	}
}
