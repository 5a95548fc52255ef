package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

func (a *app) newContainerCmd() *cobra.Command {
	container := &cobra.Command{
		Use:   "container",
		Short: "Manage containers",
	}
	container.AddCommand(&cobra.Command{
		Use:     "create <floor> <container>",
		Short:   "Add a numbered container to a floor",
		Example: `  fridge container create 0 5`,
		Args:    cobra.ExactArgs(2),
		RunE:    a.runContainerCreate,
	})
	container.AddCommand(&cobra.Command{
		Use:     "clear <floor> <container>",
		Short:   "Remove every item from a container",
		Example: `  fridge container clear 0 5`,
		Args:    cobra.ExactArgs(2),
		RunE:    a.runContainerClear,
	})
	return container
}

func (a *app) runContainerCreate(cmd *cobra.Command, args []string) error {
	n, err := parseInts([]string{"floor", "container"}, args)
	if err != nil {
		return err
	}
	floor, container := n[0], n[1]

	entry := &types.HistoryEntry{Operation: types.OpCreateContainer, Floor: &floor, Container: &container}
	if err := a.mutate(entry, func(r *types.Refrigerator) error {
		return r.CreateContainer(floor, container)
	}); err != nil {
		return err
	}

	if a.jsonMode {
		return writeJSON(cmd, entry)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created container %d on floor %d\n", container, floor)
	return nil
}

func (a *app) runContainerClear(cmd *cobra.Command, args []string) error {
	n, err := parseInts([]string{"floor", "container"}, args)
	if err != nil {
		return err
	}
	floor, container := n[0], n[1]

	entry := &types.HistoryEntry{Operation: types.OpClearContainer, Floor: &floor, Container: &container}
	if err := a.mutate(entry, func(r *types.Refrigerator) error {
		return r.ClearContainer(floor, container)
	}); err != nil {
		return err
	}

	if a.jsonMode {
		return writeJSON(cmd, entry)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared container %d on floor %d\n", container, floor)
	return nil
}
