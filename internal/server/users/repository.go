package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// ResetTokenRepository stores single-use password reset tokens.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, t ResetToken) error
	// TakeResetToken returns and deletes the token.
	TakeResetToken(ctx context.Context, token string) (ResetToken, error)
}
