package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/cryptox"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	"github.com/dmitrijs2005/cryptotracker/internal/server/auth"
	"github.com/dmitrijs2005/cryptotracker/internal/server/config"
	"github.com/dmitrijs2005/cryptotracker/internal/shared"
)

const minPasswordLength = 6

// Mailer delivers password reset tokens.
type Mailer interface {
	SendResetToken(ctx context.Context, email, token string) error
}

// LogMailer "sends" reset tokens to the log.
type LogMailer struct {
	Logger logging.Logger
}

func (m LogMailer) SendResetToken(ctx context.Context, email, token string) error {
	m.Logger.Info(ctx, "password reset requested", "email", email, "reset_token", token)
	return nil
}

type Service struct {
	repo                        Repository
	resetRepo                   ResetTokenRepository
	mailer                      Mailer
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	resetTokenValidityDuration  time.Duration
}

func NewService(repo Repository, resetRepo ResetTokenRepository, mailer Mailer, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		resetRepo:                   resetRepo,
		mailer:                      mailer,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		resetTokenValidityDuration:  cfg.ResetTokenValidityDuration,
	}
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return shared.ErrorInvalidLoginFormat
	}
	return nil
}

func validatePassword(password []byte) error {
	if len(password) < minPasswordLength {
		return shared.ErrorInvalidPasswordFormat
	}
	return nil
}

// Register creates a user and returns an access token for it.
func (s *Service) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if err := validatePassword(password); err != nil {
		return "", err
	}

	salt := cryptox.NewSalt()
	user := &User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Salt:     salt,
		Verifier: cryptox.MakeVerifier(cryptox.DeriveKey(password, salt)),
	}

	user, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(user.ID)
}

// Login verifies the password and returns a fresh access token. Unknown
// users and wrong passwords both yield shared.ErrorInvalidLoginPassword.
func (s *Service) Login(ctx context.Context, email string, password []byte) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return "", shared.ErrorInvalidLoginPassword
		}
		return "", err
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.Verifier) {
		return "", shared.ErrorInvalidLoginPassword
	}

	return s.generateAccessToken(user.ID)
}

// Authenticate resolves an access token to its user ID.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return "", shared.ErrorInvalidToken
	}
	return userID, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Name = strings.TrimSpace(name)
	user.Email = email
	return s.repo.Update(ctx, user)
}

// ForgotPassword issues a reset token and hands it to the mailer. Unknown
// emails succeed silently so callers cannot enumerate accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetUserByLogin(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil
		}
		return err
	}

	token, err := shared.MakeRandHexString(32)
	if err != nil {
		return err
	}
	rt := ResetToken{Token: token, UserID: user.ID, Expires: time.Now().Add(s.resetTokenValidityDuration)}
	if err := s.resetRepo.CreateResetToken(ctx, rt); err != nil {
		return err
	}

	return s.mailer.SendResetToken(ctx, user.Email, token)
}

// ResetPassword consumes a reset token, sets the new password and returns an
// access token. Unknown or expired tokens yield shared.ErrorInvalidToken.
func (s *Service) ResetPassword(ctx context.Context, resetToken string, password []byte) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}

	rt, err := s.resetRepo.TakeResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return "", shared.ErrorInvalidToken
		}
		return "", err
	}
	if rt.Expires.Before(time.Now()) {
		return "", shared.ErrorInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, rt.UserID)
	if err != nil {
		return "", err
	}
	user.Salt = cryptox.NewSalt()
	user.Verifier = cryptox.MakeVerifier(cryptox.DeriveKey(password, user.Salt))
	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}

	return s.generateAccessToken(user.ID)
}

func (s *Service) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}
