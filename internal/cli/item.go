package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

var locationArgs = []string{"floor", "container", "position"}

func (a *app) newItemCmd() *cobra.Command {
	item := &cobra.Command{
		Use:   "item",
		Short: "Place and remove items",
	}

	var (
		itemID          int
		itemDescription string
	)
	add := &cobra.Command{
		Use:     "add <floor> <container> <position>",
		Short:   "Place an item in an empty position",
		Example: `  fridge item add 0 5 0 --id 1 --description Milk`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runItemAdd(cmd, args, types.Item{ID: itemID, Description: itemDescription})
		},
	}
	add.Flags().IntVar(&itemID, "id", 0, "item identifier")
	add.Flags().StringVar(&itemDescription, "description", "", "item description (required)")
	add.MarkFlagRequired("description")

	item.AddCommand(add)
	item.AddCommand(&cobra.Command{
		Use:     "remove <floor> <container> <position>",
		Short:   "Empty a position",
		Example: `  fridge item remove 0 5 0`,
		Args:    cobra.ExactArgs(3),
		RunE:    a.runItemRemove,
	})
	return item
}

func (a *app) runItemAdd(cmd *cobra.Command, args []string, it types.Item) error {
	n, err := parseInts(locationArgs, args)
	if err != nil {
		return err
	}
	floor, container, position := n[0], n[1], n[2]

	entry := &types.HistoryEntry{
		Operation: types.OpAddItem,
		Floor:     &floor,
		Container: &container,
		Position:  &position,
		Item:      &it,
	}
	if err := a.mutate(entry, func(r *types.Refrigerator) error {
		return r.AddItem(floor, container, position, it)
	}); err != nil {
		return err
	}

	if a.jsonMode {
		return writeJSON(cmd, entry)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s at floor %d, container %d, position %d\n", it.Description, floor, container, position)
	return nil
}

func (a *app) runItemRemove(cmd *cobra.Command, args []string) error {
	n, err := parseInts(locationArgs, args)
	if err != nil {
		return err
	}
	floor, container, position := n[0], n[1], n[2]

	entry := &types.HistoryEntry{
		Operation: types.OpRemoveItem,
		Floor:     &floor,
		Container: &container,
		Position:  &position,
	}
	if err := a.mutate(entry, func(r *types.Refrigerator) error {
		return r.RemoveItem(floor, container, position)
	}); err != nil {
		return err
	}

	if a.jsonMode {
		return writeJSON(cmd, entry)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed item at floor %d, container %d, position %d\n", floor, container, position)
	return nil
}
