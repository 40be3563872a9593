package app

import (
	"go.uber.org/zap"

	"edkey/internal/keyfile"
	"edkey/internal/services/keys"
)

// App bundles the configuration, logger and services for the CLI.
type App struct {
	Config Config
	Log    *zap.Logger
	Keys   *keys.Service
}

// New constructs the dependency graph from cfg. A nil logger discards output.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	// Validate has already checked it.
	format, _ := keyfile.ParseFormat(cfg.Format)

	svc := keys.New(keys.Options{
		Format:            format,
		VerifyConsistency: cfg.VerifyConsistency,
	}, log)

	return &App{Config: cfg, Log: log, Keys: svc}, nil
}
