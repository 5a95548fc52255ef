package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/fridge/pkg/types"
)

func (a *app) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the changes made to the refrigerator, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attach()
			if err != nil {
				return err
			}
			defer store.Detach()

			entries, err := store.History()
			if err != nil {
				return systemErr("read history: %w", err)
			}
			if a.jsonMode {
				return writeJSON(cmd, entries)
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), formatHistory(e))
			}
			return nil
		},
	}
}

// formatHistory renders one entry as a single line:
// "<time> <operation> floor=0 container=5 position=0 item=1 "Milk"".
func formatHistory(e types.HistoryEntry) string {
	parts := []string{e.CreatedAt.Local().Format(time.DateTime), e.Operation}
	for _, f := range []struct {
		name string
		v    *int
	}{{"floor", e.Floor}, {"container", e.Container}, {"position", e.Position}} {
		if f.v != nil {
			parts = append(parts, fmt.Sprintf("%s=%d", f.name, *f.v))
		}
	}
	if e.Item != nil {
		parts = append(parts, fmt.Sprintf("item=%d %q", e.Item.ID, e.Item.Description))
	}
	if e.Description != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Description))
	}
	return strings.Join(parts, " ")
}
