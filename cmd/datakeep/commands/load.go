package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"datakeep/internal/store"
)

func loadCmd() *cobra.Command {
	var opts store.LoadOptions
	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Print a stored record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc json.RawMessage
			err := appCtx.Store.Load(cmd.Context(), args[0], &doc, opts)
			if store.IsAbsent(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "no saved data")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Bundled, "bundled", false, "read from the bundled root")
	cmd.Flags().BoolVarP(&opts.Decrypt, "decrypt", "d", false, "decrypt the record")
	return cmd
}
