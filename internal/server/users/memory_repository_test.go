package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &User{Email: "A@x.io", Salt: []byte{1}, Verifier: []byte{2}})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetUserByLogin(ctx, "a@X.io")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := r.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A@x.io", byID.Email)

	_, err = r.GetUserByLogin(ctx, "none@x.io")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
	_, err = r.GetUserByID(ctx, "none")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	u, err := r.Create(ctx, &User{Email: "a@x.io", Salt: []byte{1}})
	require.NoError(t, err)

	u.Salt[0] = 9
	u.Name = "changed"

	got, err := r.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got.Salt)
	assert.Empty(t, got.Name)
}

func TestMemoryRepository_UpdateMovesEmailIndex(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	u, err := r.Create(ctx, &User{Email: "old@x.io"})
	require.NoError(t, err)

	u.Email = "new@x.io"
	require.NoError(t, r.Update(ctx, u))

	_, err = r.GetUserByLogin(ctx, "old@x.io")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
	_, err = r.GetUserByLogin(ctx, "new@x.io")
	assert.NoError(t, err)

	assert.ErrorIs(t, r.Update(ctx, &User{ID: "missing"}), shared.ErrorNotFound)
}

func TestMemoryRepository_ResetTokens(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	rt := ResetToken{Token: "t1", UserID: "u1", Expires: time.Now().Add(time.Minute)}
	require.NoError(t, r.CreateResetToken(ctx, rt))

	got, err := r.TakeResetToken(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	_, err = r.TakeResetToken(ctx, "t1")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}
