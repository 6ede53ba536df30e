package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReadWriteErase(t *testing.T) {
	store := NewMemory()

	_, ok := store.Read("missing")
	assert.False(t, ok)

	require.NoError(t, store.Write("key", []byte("value")))
	value, ok := store.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)

	// Last write wins
	require.NoError(t, store.Write("key", []byte("other")))
	value, _ = store.Read("key")
	assert.Equal(t, []byte("other"), value)

	store.Erase("key")
	_, ok = store.Read("key")
	assert.False(t, ok)

	// Erase of an absent key is a no-op
	store.Erase("key")
}

func TestMemoryCopiesValues(t *testing.T) {
	store := NewMemory()

	input := []byte("original")
	require.NoError(t, store.Write("key", input))
	input[0] = 'X'

	value, ok := store.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte("original"), value)

	// Mutating the read value does not corrupt the stored one
	value[0] = 'Y'
	again, _ := store.Read("key")
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryFailWrites(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Write("key", []byte("value")))

	store.FailWrites = true
	assert.ErrorIs(t, store.Write("key", []byte("new")), ErrWriteFailed)

	// The previous value survives a failed write
	value, ok := store.Read("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)
}
