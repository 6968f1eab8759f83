package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/server/config"
	"github.com/dmitrijs2005/cryptotracker/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	email, token string
	err          error
}

func (m *captureMailer) SendResetToken(_ context.Context, email, token string) error {
	m.email, m.token = email, token
	return m.err
}

func newTestService(t *testing.T) (*Service, *MemoryRepository, *captureMailer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	repo := NewMemoryRepository()
	m := &captureMailer{}
	return NewService(repo, repo, m, cfg), repo, m
}

func TestService_RegisterLoginAuthenticate(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	tok, err := s.Register(ctx, "Ann", "ann@example.com", []byte("secret1"))
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := s.Authenticate(ctx, tok)
	require.NoError(t, err)

	u, err := s.Profile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@example.com", u.Email)

	tok2, err := s.Login(ctx, "ANN@example.com", []byte("secret1"))
	require.NoError(t, err)
	id2, err := s.Authenticate(ctx, tok2)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
}

func TestService_Register_Validation(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "x", "not-an-email", []byte("secret1"))
	assert.ErrorIs(t, err, shared.ErrorInvalidLoginFormat)

	_, err = s.Register(ctx, "x", "x@example.com", []byte("123"))
	assert.ErrorIs(t, err, shared.ErrorInvalidPasswordFormat)

	_, err = s.Register(ctx, "x", "x@example.com", []byte("secret1"))
	require.NoError(t, err)
	_, err = s.Register(ctx, "y", "X@example.com", []byte("secret2"))
	assert.ErrorIs(t, err, shared.ErrorAlreadyExists)
}

func TestService_Login_Failures(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := s.Register(ctx, "", "a@b.io", []byte("secret1"))
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@b.io", []byte("wrong!!"))
	assert.ErrorIs(t, err, shared.ErrorInvalidLoginPassword)

	_, err = s.Login(ctx, "nobody@b.io", []byte("secret1"))
	assert.ErrorIs(t, err, shared.ErrorInvalidLoginPassword)
}

func TestService_Authenticate_Rejects(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)

	// Well-signed token for a user that does not exist.
	tok, err := s.generateAccessToken("ghost")
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)

	s.accessTokenValidityDuration = -time.Second
	tok, err = s.Register(ctx, "", "e@x.io", []byte("secret1"))
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, shared.ErrorTokenExpired)
}

func TestService_UpdateProfile(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	tok, err := s.Register(ctx, "Ann", "ann@x.io", []byte("secret1"))
	require.NoError(t, err)
	id, err := s.Authenticate(ctx, tok)
	require.NoError(t, err)
	_, err = s.Register(ctx, "Bob", "bob@x.io", []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, s.UpdateProfile(ctx, id, "Annie", "annie@x.io"))
	u, err := s.Profile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Annie", u.Name)

	_, err = s.Login(ctx, "annie@x.io", []byte("secret1"))
	assert.NoError(t, err)

	assert.ErrorIs(t, s.UpdateProfile(ctx, id, "Annie", "bob@x.io"), shared.ErrorAlreadyExists)
	assert.ErrorIs(t, s.UpdateProfile(ctx, id, "Annie", "bad"), shared.ErrorInvalidLoginFormat)
}

func TestService_ForgotAndResetPassword(t *testing.T) {
	s, _, m := newTestService(t)
	ctx := context.Background()
	_, err := s.Register(ctx, "Ann", "ann@x.io", []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, s.ForgotPassword(ctx, "nobody@x.io"))
	assert.Empty(t, m.token, "unknown email sends nothing")

	require.NoError(t, s.ForgotPassword(ctx, "ann@x.io"))
	require.NotEmpty(t, m.token)
	assert.Equal(t, "ann@x.io", m.email)

	tok, err := s.ResetPassword(ctx, m.token, []byte("newsecret"))
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, tok)
	require.NoError(t, err)

	_, err = s.Login(ctx, "ann@x.io", []byte("secret1"))
	assert.ErrorIs(t, err, shared.ErrorInvalidLoginPassword)
	_, err = s.Login(ctx, "ann@x.io", []byte("newsecret"))
	assert.NoError(t, err)

	// Tokens are single use.
	_, err = s.ResetPassword(ctx, m.token, []byte("another1"))
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)
}

func TestService_ResetPassword_Expired(t *testing.T) {
	s, _, m := newTestService(t)
	ctx := context.Background()
	_, err := s.Register(ctx, "", "ann@x.io", []byte("secret1"))
	require.NoError(t, err)

	s.resetTokenValidityDuration = -time.Second
	require.NoError(t, s.ForgotPassword(ctx, "ann@x.io"))

	_, err = s.ResetPassword(ctx, m.token, []byte("newsecret"))
	assert.ErrorIs(t, err, shared.ErrorInvalidToken)

	_, err = s.ResetPassword(ctx, "x", []byte("1"))
	assert.ErrorIs(t, err, shared.ErrorInvalidPasswordFormat)
}

func TestService_ForgotPassword_MailerError(t *testing.T) {
	s, _, m := newTestService(t)
	ctx := context.Background()
	_, err := s.Register(ctx, "", "ann@x.io", []byte("secret1"))
	require.NoError(t, err)

	m.err = errors.New("smtp down")
	assert.EqualError(t, s.ForgotPassword(ctx, "ann@x.io"), "smtp down")
}
