package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pubkey <private-key>",
		Short: "Write the SPKI public key for a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = defaultPath("pubkey")
			}
			info, err := appCtx.Keys.ExportPublic(args[0], out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nFingerprint: %s\n", out, info.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <out_dir>/pubkey.<format>)")
	return cmd
}
