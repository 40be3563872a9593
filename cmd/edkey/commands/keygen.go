package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var (
		outPriv string
		outPub  string
		version int
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an Ed25519 key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := versionFlag(cmd, version)
			if err != nil {
				return err
			}
			if outPriv == "" {
				outPriv = defaultPath("privkey")
			}
			if outPub == "" {
				outPub = defaultPath("pubkey")
			}

			info, err := appCtx.Keys.Generate(outPriv, outPub, v)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (PKCS#8 %s) and %s\nFingerprint: %s\n",
				outPriv, info.Version, outPub, info.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPriv, "out-priv", "", "private key output path (default <out_dir>/privkey.<format>)")
	cmd.Flags().StringVar(&outPub, "out-pub", "", "public key output path (default <out_dir>/pubkey.<format>)")
	cmd.Flags().IntVar(&version, "version", 2, "PKCS#8 version, 1 or 2")
	return cmd
}
