package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/cotabot/exchange"
)

const userID int64 = 42

func TestSourceThenDestinationAllPairs(t *testing.T) {
	for _, src := range exchange.All() {
		for _, dst := range exchange.All() {
			store := NewMemoryStore()

			store.SetSource(userID, src)
			sel, ok := store.Get(userID)
			require.True(t, ok)
			assert.Equal(t, src, sel.Source)
			assert.Empty(t, sel.Destination)

			require.NoError(t, store.SetDestination(userID, dst))
			sel, ok = store.Get(userID)
			require.True(t, ok)
			assert.Equal(t, src, sel.Source)
			assert.Equal(t, dst, sel.Destination)
		}
	}
}

func TestDestinationWithoutSource(t *testing.T) {
	store := NewMemoryStore()

	err := store.SetDestination(userID, exchange.USD)
	assert.ErrorIs(t, err, ErrNoSourceSelected)

	_, ok := store.Get(userID)
	assert.False(t, ok, "failed SetDestination must not create a selection")
}

func TestSetSourceOverwritesAndClearsDestination(t *testing.T) {
	store := NewMemoryStore()

	store.SetSource(userID, exchange.USD)
	require.NoError(t, store.SetDestination(userID, exchange.BRL))

	store.SetSource(userID, exchange.EUR)
	sel, ok := store.Get(userID)
	require.True(t, ok)
	assert.Equal(t, exchange.EUR, sel.Source)
	assert.Empty(t, sel.Destination, "a new source must reset the destination")
}

func TestClearRemovesSelection(t *testing.T) {
	store := NewMemoryStore()

	store.SetSource(userID, exchange.USD)
	require.NoError(t, store.SetDestination(userID, exchange.BRL))

	store.Clear(userID)
	_, ok := store.Get(userID)
	assert.False(t, ok)

	err := store.SetDestination(userID, exchange.BRL)
	assert.ErrorIs(t, err, ErrNoSourceSelected)
}

func TestClearThenNewSourceStartsFresh(t *testing.T) {
	store := NewMemoryStore()

	store.SetSource(userID, exchange.USD)
	require.NoError(t, store.SetDestination(userID, exchange.BRL))
	store.Clear(userID)

	store.SetSource(userID, exchange.EUR)
	sel, ok := store.Get(userID)
	require.True(t, ok)
	assert.Equal(t, Selection{Source: exchange.EUR}, sel, "prior state must be fully cleared, not merged")
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	store.Clear(userID)
	store.Clear(userID)
	_, ok := store.Get(userID)
	assert.False(t, ok)
}

func TestLen(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, 0, store.Len())

	store.SetSource(1, exchange.BRL)
	store.SetSource(2, exchange.USD)
	assert.Equal(t, 2, store.Len())

	store.Clear(1)
	assert.Equal(t, 1, store.Len())
}
