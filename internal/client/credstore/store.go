// Package credstore persists the bearer credential of the client.
//
// The store holds at most one entry. Every operation is synchronous from the
// caller's point of view and never returns an error: when the underlying
// medium fails, Get reports the credential as absent and Set/Clear do
// nothing. A broken store therefore shows up as a user who is always logged
// out, never as a crash.
package credstore

import "sync"

// Key is the fixed name the credential is stored under.
const Key = "token"

// Store is the durable home of the current credential.
type Store interface {
	// Get returns the stored credential and whether one is present.
	Get() (string, bool)
	// Set replaces the stored credential.
	Set(credential string)
	// Clear removes the stored credential.
	Clear()
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = Disabled{}
)

// MemoryStore keeps the credential in process memory. It is not durable and
// is meant for tests and for running without a database (-s :memory:).
type MemoryStore struct {
	mu         sync.Mutex
	credential string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, s.credential != ""
}

func (s *MemoryStore) Set(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
}

// Disabled is the store used when persistence is unavailable.
type Disabled struct{}

func (Disabled) Get() (string, bool) { return "", false }
func (Disabled) Set(string)          {}
func (Disabled) Clear()              {}
