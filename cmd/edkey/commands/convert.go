package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// convert <private-key> --out <file>: re-encode as PKCS#8 v1 (seed only) or
// v2 (seed and public key).
func convertCmd() *cobra.Command {
	var (
		out     string
		version int
	)
	cmd := &cobra.Command{
		Use:   "convert <private-key>",
		Short: "Re-encode a private key as PKCS#8 v1 or v2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := versionFlag(cmd, version)
			if err != nil {
				return err
			}
			if _, err := appCtx.Keys.Convert(args[0], out, v); err != nil {
				return fmt.Errorf("converting %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (PKCS#8 %s)\n", out, v)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")
	cmd.Flags().IntVar(&version, "version", 2, "PKCS#8 version, 1 or 2")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
