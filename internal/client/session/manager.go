package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/cryptotracker/internal/client/credstore"
	"github.com/dmitrijs2005/cryptotracker/internal/logging"
)

// Manager is the process-wide session state container.
type Manager struct {
	mu          sync.Mutex
	store       credstore.Store
	credential  string
	subscribers map[uint64]func(Event)
	nextID      uint64
	logger      logging.Logger
}

// NewManager builds a Manager whose initial state is read from store.
func NewManager(store credstore.Store, logger logging.Logger) *Manager {
	credential, _ := store.Get()
	return &Manager{
		store:       store,
		credential:  credential,
		subscribers: make(map[uint64]func(Event)),
		logger:      logger.With("module", "session"),
	}
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{Credential: m.credential}
}

// Login persists credential and makes the session authenticated. An empty
// credential is ignored: no state change and no event. If the store cannot
// write, this process is still logged in but the session does not survive a
// restart and other processes sharing the store stay anonymous.
func (m *Manager) Login(credential string) {
	if credential == "" {
		m.logger.Debug(context.Background(), "login ignored: empty credential")
		return
	}

	m.mu.Lock()
	m.store.Set(credential)
	m.credential = credential
	ev := Event{Type: EventLogin, State: State{Credential: credential}}
	subs := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Info(context.Background(), "logged in")
	m.publish(subs, ev)
}

// Logout clears the stored credential and the in-memory state. Calling it
// while anonymous only clears the store again; no event is published.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.store.Clear()
	wasAuthenticated := m.credential != ""
	m.credential = ""
	subs := m.snapshotLocked()
	m.mu.Unlock()

	if !wasAuthenticated {
		return
	}

	m.logger.Info(context.Background(), "logged out")
	m.publish(subs, Event{Type: EventLogout, State: State{}})
}

// Sync re-reads the store and adopts its credential when it differs from the
// in-memory one, publishing EventSync. It reports whether the state changed.
func (m *Manager) Sync() bool {
	m.mu.Lock()
	stored, _ := m.store.Get()
	if stored == m.credential {
		m.mu.Unlock()
		return false
	}
	m.credential = stored
	ev := Event{Type: EventSync, State: State{Credential: stored}}
	subs := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Info(context.Background(), "session changed in store", "authenticated", ev.State.Authenticated())
	m.publish(subs, ev)
	return true
}

// Watch calls Sync every interval until ctx is done.
func (m *Manager) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sync()
		case <-ctx.Done():
			return
		}
	}
}

// Subscribe registers fn for every future Event. Subscribers run
// synchronously, in registration order, after the transition is complete and
// outside the Manager's lock, so they may call back into the Manager. The
// returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

func (m *Manager) snapshotLocked() []func(Event) {
	ids := make([]uint64, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	subs := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, m.subscribers[id])
	}
	return subs
}

func (m *Manager) publish(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
