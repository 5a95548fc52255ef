package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

// attach opens the configured store. The caller must defer Detach.
func (a *app) attach() (types.Store, error) {
	backend := a.newStore()
	if err := backend.Attach(a.config); err != nil {
		return nil, systemErr("attach store: %w", err)
	}
	a.logger.Printf("attached %s store at %s", a.config.Backend, a.config.DataDir)
	return backend, nil
}

// mutate loads the stored refrigerator, applies fn, then saves the result
// and records entry in the history. Nothing is saved when fn fails, and the
// previous state is saved back when the history entry cannot be recorded.
// fn may fill in fields of entry that are only known after the change.
func (a *app) mutate(entry *types.HistoryEntry, fn func(r *types.Refrigerator) error) error {
	store, err := a.attach()
	if err != nil {
		return err
	}
	defer store.Detach()

	r, err := store.Load()
	if err != nil {
		return systemErr("load refrigerator: %w", err)
	}
	before := r.Snapshot()
	if err := fn(r); err != nil {
		if types.IsUserError(err) {
			a.logger.Printf("%s rejected: %v", entry.Operation, err)
		}
		return err
	}
	if err := store.Save(r); err != nil {
		return systemErr("save refrigerator: %w", err)
	}
	id, err := store.AppendHistory(*entry)
	if err != nil {
		if rbErr := restoreState(store, before, r.Limits()); rbErr != nil {
			return systemErr("record history: %w (restoring previous state: %v)", err, rbErr)
		}
		a.logger.Printf("%s rolled back: %v", entry.Operation, err)
		return systemErr("record history: %w", err)
	}
	entry.HistoryID = id
	a.logger.Printf("%s recorded as %s", entry.Operation, id)
	return nil
}

// restoreState saves the refrigerator described by snap.
func restoreState(store types.Store, snap types.Snapshot, limits types.Limits) error {
	prev, err := types.Restore(snap, limits)
	if err != nil {
		return err
	}
	return store.Save(prev)
}

// load returns the stored refrigerator without modifying it.
func (a *app) load() (*types.Refrigerator, error) {
	store, err := a.attach()
	if err != nil {
		return nil, err
	}
	defer store.Detach()

	r, err := store.Load()
	if err != nil {
		return nil, systemErr("load refrigerator: %w", err)
	}
	return r, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return systemErr("marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// parseInts converts positional arguments to integers, naming the offending
// argument on failure.
func parseInts(names []string, args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: must be an integer", names[i], arg)
		}
		out[i] = n
	}
	return out, nil
}

func intRef(n int) *int {
	return &n
}
