package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the contents of the refrigerator",
		Long: `Print every floor in creation order. Each container is listed with the
items it holds; empty positions are omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.load()
			if err != nil {
				return err
			}
			if a.jsonMode {
				return writeJSON(cmd, r.Snapshot())
			}
			fmt.Fprint(cmd.OutOrStdout(), r.RenderLocalized(a.printer))
			return nil
		},
	}
}
