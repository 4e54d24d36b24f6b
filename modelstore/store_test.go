package modelstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get round trip", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.Put(ctx, "model-a", []byte("payload"))
		require.NoError(t, err)

		data, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("put replaces existing blob", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Put(ctx, "model-a", []byte("v1")))
		require.NoError(t, store.Put(ctx, "model-a", []byte("v2")))

		data, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Put(ctx, "model-a", []byte("abc")))

		data, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		data[0] = 'x'

		again, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Put(ctx, "model-a", []byte("v1")))
		require.NoError(t, store.Delete(ctx, "model-a"))
		require.NoError(t, store.Delete(ctx, "model-a"))

		_, err := store.Get(ctx, "model-a")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list filters by prefix and sorts", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Put(ctx, "regions-v2", nil))
		require.NoError(t, store.Put(ctx, "regions-v1", nil))
		require.NoError(t, store.Put(ctx, "depots-v1", nil))

		names, err := store.List(ctx, "regions-")
		require.NoError(t, err)
		assert.Equal(t, []string{"regions-v1", "regions-v2"}, names)
	})
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get round trip", func(t *testing.T) {
		store := NewLocalStore(t.TempDir())

		err := store.Put(ctx, "model-a", []byte("payload"))
		require.NoError(t, err)

		data, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("creates root on demand", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "nested", "models")
		store := NewLocalStore(root)

		require.NoError(t, store.Put(ctx, "model-a", []byte("v1")))

		data, err := store.Get(ctx, "model-a")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		store := NewLocalStore(t.TempDir())

		_, err := store.Get(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := NewLocalStore(t.TempDir())

		require.NoError(t, store.Put(ctx, "model-a", []byte("v1")))
		require.NoError(t, store.Delete(ctx, "model-a"))
		require.NoError(t, store.Delete(ctx, "model-a"))
	})

	t.Run("list on missing root is empty", func(t *testing.T) {
		store := NewLocalStore(filepath.Join(t.TempDir(), "never-created"))

		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("list filters by prefix and sorts", func(t *testing.T) {
		store := NewLocalStore(t.TempDir())

		require.NoError(t, store.Put(ctx, "regions-v2", nil))
		require.NoError(t, store.Put(ctx, "regions-v1", nil))
		require.NoError(t, store.Put(ctx, "depots-v1", nil))

		names, err := store.List(ctx, "regions-")
		require.NoError(t, err)
		assert.Equal(t, []string{"regions-v1", "regions-v2"}, names)
	})
}
