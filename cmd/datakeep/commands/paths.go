package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the writable and bundled roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "writable: %s\n", appCtx.Paths.Writable())
			fmt.Fprintf(out, "bundled:  %s (%s)\n", appCtx.Paths.Bundled(), appCtx.Config.BundledMode)
			if appCtx.ConfigureErr != nil {
				fmt.Fprintf(out, "warning:  %v\n", appCtx.ConfigureErr)
			}
			return nil
		},
	}
}
