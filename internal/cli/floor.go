package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

func (a *app) newFloorCmd() *cobra.Command {
	floor := &cobra.Command{
		Use:   "floor",
		Short: "Manage floors",
	}
	floor.AddCommand(&cobra.Command{
		Use:   "create <description>",
		Short: "Add the next floor",
		Long: `Add a floor. Floors are numbered 0, 1, 2 in creation order and a
refrigerator holds at most three.`,
		Example: `  fridge floor create Dairy`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.runFloorCreate,
	})
	return floor
}

func (a *app) runFloorCreate(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	entry := &types.HistoryEntry{Operation: types.OpCreateFloor, Description: description}

	var created types.FloorSnapshot
	err := a.mutate(entry, func(r *types.Refrigerator) error {
		f, err := r.CreateFloor(description)
		if err != nil {
			return err
		}
		entry.Floor = intRef(f.Number())
		created = types.FloorSnapshot{
			Number:      f.Number(),
			Description: f.Description(),
			Containers:  []types.ContainerSnapshot{},
		}
		return nil
	})
	if err != nil {
		return err
	}

	if a.jsonMode {
		return writeJSON(cmd, created)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created floor %d: %s\n", created.Number, created.Description)
	return nil
}
