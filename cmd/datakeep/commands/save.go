package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datakeep/internal/store"
)

func saveCmd() *cobra.Command {
	var opts store.SaveOptions
	cmd := &cobra.Command{
		Use:   "save <name> [json|-]",
		Short: "Store a JSON document as a record",
		Long:  "Store a JSON document as a record. The document is read from the second argument, or from stdin when it is omitted or \"-\".",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc []byte
			if len(args) == 2 && args[1] != "-" {
				doc = []byte(args[1])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				doc = b
			}
			if !json.Valid(doc) {
				return fmt.Errorf("input is not valid JSON")
			}
			if err := appCtx.Store.Save(args[0], json.RawMessage(doc), opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Data saved successfully.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Bundled, "bundled", false, "target the bundled root")
	cmd.Flags().BoolVarP(&opts.Encrypt, "encrypt", "e", false, "encrypt the record")
	return cmd
}
