package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize fridge storage",
		Long:  "Create the configuration and data directories, then initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attach()
			if err != nil {
				return err
			}
			if err := store.Detach(); err != nil {
				return systemErr("finalize storage: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fridge initialized at %s\n", a.config.DataDir)
			return nil
		},
	}
}
