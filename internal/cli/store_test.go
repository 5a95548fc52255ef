package cli

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/fridge/pkg/sqlite"
	"github.com/mesh-intelligence/fridge/pkg/types"
)

var errHistoryUnavailable = errors.New("history unavailable")

// historyFailingStore is a real store whose AppendHistory always fails.
type historyFailingStore struct {
	types.Store
}

func (s historyFailingStore) AppendHistory(types.HistoryEntry) (string, error) {
	return "", errHistoryUnavailable
}

func TestMutateRestoresStateWhenHistoryFails(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("floor", "create", "Dairy")
	env.mustRun("container", "create", "0", "5")

	failing := newRootCmd(&app{
		logger:   log.New(io.Discard, "", 0),
		newStore: func() types.Store { return historyFailingStore{sqlite.NewBackend()} },
	})
	var stderr bytes.Buffer
	code := execute(failing,
		[]string{"--config-dir", env.configDir, "--data-dir", env.dataDir,
			"item", "add", "0", "5", "0", "--id", "1", "--description", "Milk"},
		&bytes.Buffer{}, &stderr)

	assert.Equal(t, exitSysError, code)
	assert.Contains(t, stderr.String(), errHistoryUnavailable.Error())
	assert.Equal(t, "Container 5\n\n", env.mustRun("show"), "the item must not be stored")

	history := env.mustRun("history")
	assert.NotContains(t, history, "add_item")
}

func TestRestoreState(t *testing.T) {
	store := sqlite.NewBackend()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer store.Detach()

	r := types.NewRefrigerator()
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	before := r.Snapshot()
	require.NoError(t, r.CreateContainer(0, 5))
	require.NoError(t, store.Save(r))

	require.NoError(t, restoreState(store, before, r.Limits()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Floors(), 1)
	assert.Empty(t, loaded.Floors()[0].Containers())
}
