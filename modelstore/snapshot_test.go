package modelstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/capclust/annealing"
)

func testModel() *annealing.Model {
	return &annealing.Model{
		K:            2,
		Distribution: []float64{0.5, 0.5},
		Metric:       "Euclidean",
		Centers:      [][]float64{{0.1, 0.2}, {5.1, 5.2}},
		Eta:          []float64{0.48, 0.52},
		Demand:       []float64{0.25, 0.25, 0.25, 0.25},
		Beta:         10,
		Labels:       []int{0, 0, 1, 1},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	model := testModel()

	err := Save(ctx, store, "regions-v1", model)
	require.NoError(t, err)

	loaded, err := Load(ctx, store, "regions-v1")
	require.NoError(t, err)
	assert.Equal(t, model, loaded)
}

func TestSnapshotRoundTripLocal(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	model := testModel()

	require.NoError(t, Save(ctx, store, "regions-v1", model))

	loaded, err := Load(ctx, store, "regions-v1")
	require.NoError(t, err)
	assert.Equal(t, model, loaded)
}

func TestSnapshotHeader(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, Save(ctx, store, "regions-v1", testModel()))

	data, err := store.Get(ctx, "regions-v1")
	require.NoError(t, err)

	require.Greater(t, len(data), 10)
	assert.Equal(t, "CCMS", string(data[:4]))
	assert.Equal(t, byte(1), data[4])
	assert.Equal(t, "json", string(data[6:6+int(data[5])]))
}

func TestLoadClampsDeclaredSize(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, Save(ctx, store, "regions-v1", testModel()))

	data, err := store.Get(ctx, "regions-v1")
	require.NoError(t, err)

	// Overwrite the size field with 2^63; the payload stays intact, so the
	// snapshot must still decode without honoring the declared allocation.
	sizeOff := 4 + 1 + 1 + int(data[5])
	for i := 0; i < 8; i++ {
		data[sizeOff+i] = 0
	}
	data[sizeOff+7] = 0x80
	require.NoError(t, store.Put(ctx, "regions-v1", data))

	loaded, err := Load(ctx, store, "regions-v1")
	require.NoError(t, err)
	assert.Equal(t, testModel(), loaded)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	put := func(t *testing.T, data []byte) Store {
		t.Helper()

		store := NewMemoryStore()
		require.NoError(t, store.Put(ctx, "bad", data))
		return store
	}

	t.Run("missing snapshot", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := Load(ctx, store, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("truncated header", func(t *testing.T) {
		store := put(t, []byte("CC"))

		_, err := Load(ctx, store, "bad")
		assert.ErrorContains(t, err, "truncated")
	})

	t.Run("invalid magic", func(t *testing.T) {
		store := put(t, []byte("XXXX\x01\x00"))

		_, err := Load(ctx, store, "bad")
		assert.ErrorContains(t, err, "invalid magic")
	})

	t.Run("unsupported version", func(t *testing.T) {
		store := put(t, []byte("CCMS\x07\x00"))

		_, err := Load(ctx, store, "bad")
		assert.ErrorContains(t, err, "unsupported snapshot version")
	})

	t.Run("unknown codec", func(t *testing.T) {
		store := put(t, append([]byte("CCMS\x01\x03xml"), make([]byte, 8)...))

		_, err := Load(ctx, store, "bad")
		assert.ErrorContains(t, err, "unknown codec")
	})

	t.Run("corrupt payload", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, Save(ctx, store, "regions-v1", testModel()))

		data, err := store.Get(ctx, "regions-v1")
		require.NoError(t, err)

		// Flip bytes inside the zstd frame.
		data[len(data)-1] ^= 0xFF
		data[len(data)-2] ^= 0xFF
		require.NoError(t, store.Put(ctx, "regions-v1", data))

		_, err = Load(ctx, store, "regions-v1")
		assert.Error(t, err)
	})
}
