package credstore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/cryptotracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get()
	require.False(t, ok)

	s.Set("tok123")
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "tok123", got)

	s.Clear()
	got, ok = s.Get()
	require.False(t, ok)
	assert.Empty(t, got)
}

func TestDisabled_NeverHoldsACredential(t *testing.T) {
	var s Store = Disabled{}

	s.Set("tok123")
	_, ok := s.Get()
	require.False(t, ok)

	require.NotPanics(t, s.Clear)
}

func TestSQLiteStore_RoundTripAndDurability(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	s, err := OpenSQLite(ctx, path, logging.Nop())
	require.NoError(t, err)

	_, ok := s.Get()
	require.False(t, ok, "fresh store is empty")

	s.Set("tok123")
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "tok123", got)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(ctx, path, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, ok = reopened.Get()
	require.True(t, ok, "credential survives a restart")
	assert.Equal(t, "tok123", got)

	reopened.Clear()
	_, ok = reopened.Get()
	require.False(t, ok)
}

func TestSQLiteStore_SharedFileSeesOtherWriters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := OpenSQLite(ctx, path, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	second, err := OpenSQLite(ctx, path, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	first.Set("tok-a")
	got, ok := second.Get()
	require.True(t, ok)
	assert.Equal(t, "tok-a", got)

	second.Clear()
	_, ok = first.Get()
	require.False(t, ok)
}

func TestSQLiteStore_ClosedDatabaseDegradesToAbsent(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "session.db"), logging.Nop())
	require.NoError(t, err)

	s.Set("tok123")
	require.NoError(t, s.Close())

	require.NotPanics(t, func() {
		_, ok := s.Get()
		assert.False(t, ok)
		s.Set("other")
		s.Clear()
	})
}

func TestOpen_SelectsImplementation(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		_, ok := Open(ctx, MemoryPath, logging.Nop()).(*MemoryStore)
		require.True(t, ok)
	})

	t.Run("sqlite", func(t *testing.T) {
		s := Open(ctx, filepath.Join(t.TempDir(), "session.db"), logging.Nop())
		sq, ok := s.(*SQLiteStore)
		require.True(t, ok)
		t.Cleanup(func() { _ = sq.Close() })
	})

	t.Run("unavailable medium falls back to Disabled", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		s := Open(ctx, filepath.Join(blocker, "sub", "session.db"), logging.Nop())
		require.IsType(t, Disabled{}, s)

		s.Set("tok123")
		_, ok := s.Get()
		require.False(t, ok)
	})
}

func TestSQLiteStore_SetSkipsUnchangedCredential(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "session.db"), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	updatedAt := func() string {
		var v string
		require.NoError(t, s.db.QueryRow(`SELECT updated_at FROM metadata WHERE key = ?`, Key).Scan(&v))
		return v
	}

	s.Set("tok123")
	_, err = s.db.Exec(`UPDATE metadata SET updated_at = '2000-01-01 00:00:00' WHERE key = ?`, Key)
	require.NoError(t, err)

	s.Set("tok123")
	assert.Contains(t, updatedAt(), "2000-01-01")

	s.Set("tok456")
	assert.NotContains(t, updatedAt(), "2000-01-01")
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "tok456", got)
}

func TestSQLiteStore_ConcurrentWritersOnSharedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	const writers = 2
	stores := make([]*SQLiteStore, writers)
	logs := make([]*bytes.Buffer, writers)
	for i := range stores {
		logs[i] = &bytes.Buffer{}
		s, err := OpenSQLite(ctx, path, logging.New(logging.FormatText, "warn", logs[i]))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		stores[i] = s
	}

	written := make(map[string]bool)
	var wg sync.WaitGroup
	for i, s := range stores {
		for j := 0; j < 20; j++ {
			tok := fmt.Sprintf("tok-%d-%d", i, j)
			written[tok] = true
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Set(tok)
			}()
		}
	}
	wg.Wait()

	for i := range logs {
		assert.Empty(t, logs[i].String(), "store %d", i)
	}
	a, ok := stores[0].Get()
	require.True(t, ok)
	b, _ := stores[1].Get()
	assert.Equal(t, a, b)
	assert.True(t, written[a])
}
