package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <text>",
		Short: "Encrypt text with the configured codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := appCtx.Codec.Encrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <text>",
		Short: "Decrypt text with the configured codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := appCtx.Codec.Decrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
}
