package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

func TestNewBackendRoundTrip(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	store := NewBackend()
	require.NoError(t, store.Attach(cfg))
	r := types.NewRefrigerator()
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(0, 5))
	require.NoError(t, r.AddItem(0, 5, 0, types.Item{ID: 1, Description: "Milk"}))
	require.NoError(t, store.Save(r))
	require.NoError(t, store.Detach())

	reopened := NewBackend()
	require.NoError(t, reopened.Attach(cfg))
	defer reopened.Detach()
	loaded, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, r.Render(), loaded.Render())
}

func TestNewBackendDetached(t *testing.T) {
	_, err := NewBackend().Load()

	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
