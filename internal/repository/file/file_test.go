package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/codec"
	"coursework/internal/domain"
)

func items() []domain.InventoryItem {
	added := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	return []domain.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 5, DateAdded: added},
		{ID: 2, Name: "Mouse", Quantity: 20, DateAdded: added},
		{ID: 3, Name: "Keyboard", Quantity: 15, DateAdded: added},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	for _, name := range []string{"inventory.json", "inventory.yaml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "nested", name)

			store, err := NewForPath[domain.InventoryItem](path)
			require.NoError(t, err)
			assert.Equal(t, path, store.Path())

			require.NoError(t, store.Save(ctx, items()))

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

			got, err := store.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, "Keyboard", got[2].Name)
		})
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := New(filepath.Join(t.TempDir(), "inventory.json"), codec.NewJSONCodec[domain.InventoryItem]())

	require.NoError(t, store.Save(ctx, items()))
	require.NoError(t, store.Save(ctx, items()[:1]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.json"), codec.NewJSONCodec[domain.InventoryItem]())

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	store := New(path, codec.NewJSONCodec[domain.InventoryItem]())
	got, err := store.Load(context.Background())

	assert.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := New(filepath.Join(t.TempDir(), "inventory.json"), codec.NewJSONCodec[domain.InventoryItem]())
	assert.ErrorIs(t, store.Save(ctx, items()), context.Canceled)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithPerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := New(path, codec.NewJSONCodec[domain.InventoryItem](), WithPerm[domain.InventoryItem](0o600))
	require.NoError(t, store.Save(context.Background(), items()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
