package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"edkey/internal/app"
	"edkey/internal/pkcs8"
)

var (
	configPath string
	format     string
	verbose    bool
	appCtx     *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "edkey",
		Short:         "Encode and decode Ed25519 keys as PKCS#8 and SPKI DER",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = os.Getenv(app.EnvConfig)
			}
			cfg, err := app.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if format != "" {
				cfg.Format = format
			}

			log, err := app.NewLogger(cfg.LogLevel, verbose)
			if err != nil {
				return fmt.Errorf("log_level: %w", err)
			}
			appCtx, err = app.New(cfg, log)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $"+app.EnvConfig+")")
	root.PersistentFlags().StringVar(&format, "format", "", "output encoding: der or pem (default from config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(keygenCmd(), inspectCmd(), pubkeyCmd(), convertCmd())
	return root
}

// versionFlag resolves a --version flag, falling back to the configured
// private key version when the flag was not given.
func versionFlag(cmd *cobra.Command, n int) (pkcs8.Version, error) {
	if !cmd.Flags().Changed("version") {
		return appCtx.Config.Version()
	}
	return app.ParseVersion(n)
}

// defaultPath places name in the configured output directory with an
// extension matching the output format.
func defaultPath(name string) string {
	return filepath.Join(appCtx.Config.OutDir, name+"."+appCtx.Config.Format)
}
