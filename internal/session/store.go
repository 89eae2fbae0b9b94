package session

import "sync"

// Store maps session identifiers to their state, creating sessions lazily
// on first use. The store-level lock only guards the map; per-session
// operations take the session's own mutex, so traffic for different
// sessions does not contend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating an idle one if needed.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = newSession()
	st.sessions[id] = s
	return s
}

// Drop releases a session's map entry. Called when a connection goes away;
// an id that was never seen is a no-op.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len reports how many sessions are live. Used by tests and diagnostics.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
