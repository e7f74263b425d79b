package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zero-day-ai/archstudio/design"
)

// Common errors returned by session stores.
var (
	// ErrNotFound is returned when no design exists for the session ID.
	ErrNotFound = errors.New("session: not found")

	// ErrInvalidID is returned when a session ID is empty.
	ErrInvalidID = errors.New("session: invalid session id")

	// ErrNilState is returned when a nil design is passed to Put.
	ErrNilState = errors.New("session: nil design state")

	// ErrStorageFailed is returned when the underlying backend fails.
	ErrStorageFailed = errors.New("session: storage operation failed")
)

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// Store persists designs keyed by session ID.
//
// Implementations must be safe for concurrent use and must return copies
// from Get: mutating a returned design never affects the stored one until
// it is Put back.
type Store interface {
	// Get returns the design stored for the session ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*design.State, error)

	// Put stores the design under the session ID, replacing any previous
	// design for that session. Returns ErrInvalidID for an empty ID and
	// ErrNilState for a nil design.
	Put(ctx context.Context, id string, state *design.State) error

	// Delete removes the session. Returns ErrNotFound if the session
	// does not exist.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore is an in-process Store backed by a map. The zero value is not
// usable; create one with NewMemoryStore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*design.State
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*design.State)}
}

// Get returns a deep copy of the stored design.
func (s *MemoryStore) Get(_ context.Context, id string) (*design.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

// Put stores a deep copy of the design under the session ID.
func (s *MemoryStore) Put(_ context.Context, id string, state *design.State) error {
	if id == "" {
		return ErrInvalidID
	}
	if state == nil {
		return ErrNilState
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = state.Clone()
	return nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// List returns all session IDs in lexical order.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
