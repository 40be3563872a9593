package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"edkey/internal/services/keys"
)

// inspect <file>...: decode each key file and print what it holds.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Decode PKCS#8 or SPKI key files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				info, err := appCtx.Keys.Inspect(path)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printInfo(cmd.OutOrStdout(), info)
			}
			return nil
		},
	}
}

func printInfo(w io.Writer, info keys.Info) {
	fmt.Fprintf(w, "File:        %s (%s)\n", info.Path, info.Format)
	if info.Private {
		embedded := "derived from seed"
		if info.EmbeddedPublicKey {
			embedded = "embedded"
		}
		fmt.Fprintf(w, "Type:        PKCS#8 %s private key, public key %s\n", info.Version, embedded)
	} else {
		fmt.Fprintf(w, "Type:        SubjectPublicKeyInfo public key\n")
	}
	fmt.Fprintf(w, "Public key:  %s\n", hex.EncodeToString(info.PublicKey[:]))
	fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)
}
