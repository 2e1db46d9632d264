// Package session owns the per-user currency selections of an in-progress
// conversion. The store is the only component allowed to mutate them.
package session

import (
	"errors"
	"sync"

	"github.com/m3rciful/cotabot/exchange"
)

// ErrNoSourceSelected is returned when a destination is set before a source.
var ErrNoSourceSelected = errors.New("session: no source currency selected")

// Selection records the currencies chosen so far. An empty Code means unset.
type Selection struct {
	Source      exchange.Code
	Destination exchange.Code
}

// Store keeps conversion selections keyed by Telegram user ID.
type Store interface {
	// SetSource creates or overwrites the user's selection, clearing any
	// previously chosen destination.
	SetSource(userID int64, c exchange.Code)
	// SetDestination completes the pair. It fails with ErrNoSourceSelected
	// when the user has no selection yet and creates nothing in that case.
	SetDestination(userID int64, c exchange.Code) error
	// Get returns the current selection, if any.
	Get(userID int64) (Selection, bool)
	// Clear removes the selection entirely. Clearing an absent user is a no-op.
	Clear(userID int64)
	// Len reports the number of active selections.
	Len() int
}

type memoryStore struct {
	mu         sync.RWMutex
	selections map[int64]Selection
}

// NewMemoryStore constructs the in-memory Store implementation.
func NewMemoryStore() Store {
	return &memoryStore{selections: make(map[int64]Selection)}
}

func (s *memoryStore) SetSource(userID int64, c exchange.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[userID] = Selection{Source: c}
}

func (s *memoryStore) SetDestination(userID int64, c exchange.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[userID]
	if !ok || sel.Source == "" {
		return ErrNoSourceSelected
	}
	sel.Destination = c
	s.selections[userID] = sel
	return nil
}

func (s *memoryStore) Get(userID int64) (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[userID]
	return sel, ok
}

func (s *memoryStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, userID)
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selections)
}
