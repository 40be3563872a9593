package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"edkey/internal/keyfile"
	"edkey/internal/pkcs8"
)

// EnvConfig names the environment variable consulted when no --config flag
// is given.
const EnvConfig = "EDKEY_CONFIG"

// Config holds runtime options. Zero-valued fields in a file keep their
// defaults.
type Config struct {
	Format            string `yaml:"format"`              // der or pem
	PrivateKeyVersion int    `yaml:"private_key_version"` // 1 or 2, as PKCS#8 names them
	VerifyConsistency bool   `yaml:"verify_consistency"`
	LogLevel          string `yaml:"log_level"`
	OutDir            string `yaml:"out_dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:            string(keyfile.FormatPEM),
		PrivateKeyVersion: 2,
		VerifyConsistency: true,
		LogLevel:          "info",
		OutDir:            ".",
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := keyfile.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := c.Version(); err != nil {
		return err
	}
	if c.OutDir == "" {
		return fmt.Errorf("out_dir must not be empty")
	}
	return nil
}

// Version maps PrivateKeyVersion to the encoded PKCS#8 version.
func (c Config) Version() (pkcs8.Version, error) {
	return ParseVersion(c.PrivateKeyVersion)
}

// ParseVersion maps a user-facing PKCS#8 version (1 or 2) to its encoding.
func ParseVersion(n int) (pkcs8.Version, error) {
	switch n {
	case 1:
		return pkcs8.V1, nil
	case 2:
		return pkcs8.V2, nil
	default:
		return 0, fmt.Errorf("private_key_version must be 1 or 2, got %d", n)
	}
}
