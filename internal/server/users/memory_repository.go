package users

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/shared"
	"github.com/google/uuid"
)

var (
	_ Repository           = (*MemoryRepository)(nil)
	_ ResetTokenRepository = (*MemoryRepository)(nil)
)

// MemoryRepository keeps users and reset tokens in process memory. Emails
// are matched case-insensitively.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string
	resets  map[string]ResetToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
		resets:  make(map[string]ResetToken),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func clone(u *User) *User {
	c := *u
	c.Salt = append([]byte(nil), u.Salt...)
	c.Verifier = append([]byte(nil), u.Verifier...)
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, fmt.Errorf("user %s: %w", user.Email, shared.ErrorAlreadyExists)
	}

	u := clone(user)
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.byID[u.ID] = u
	r.byEmail[key] = u.ID

	return clone(u), nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	return clone(u), nil
}

// Update replaces the stored user with the same ID. Changing the email to
// one owned by another user fails with shared.ErrorAlreadyExists.
func (r *MemoryRepository) Update(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[user.ID]
	if !ok {
		return shared.ErrorNotFound
	}

	oldKey, newKey := emailKey(old.Email), emailKey(user.Email)
	if oldKey != newKey {
		if _, taken := r.byEmail[newKey]; taken {
			return fmt.Errorf("user %s: %w", user.Email, shared.ErrorAlreadyExists)
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = user.ID
	}

	r.byID[user.ID] = clone(user)
	return nil
}

func (r *MemoryRepository) CreateResetToken(ctx context.Context, t ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets[t.Token] = t
	return nil
}

func (r *MemoryRepository) TakeResetToken(ctx context.Context, token string) (ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.resets[token]
	if !ok {
		return ResetToken{}, shared.ErrorNotFound
	}
	delete(r.resets, token)
	return t, nil
}
