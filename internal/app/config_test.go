package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"edkey/internal/pkcs8"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edkey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	v, err := cfg.Version()
	require.NoError(t, err)
	require.Equal(t, pkcs8.V2, v)
}

func TestLoadOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("EDKEY_TEST_DIR", "/tmp/keys")
	path := writeConfig(t, "format: der\nprivate_key_version: 1\nverify_consistency: false\nout_dir: ${EDKEY_TEST_DIR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{
		Format:            "der",
		PrivateKeyVersion: 1,
		VerifyConsistency: false,
		LogLevel:          "info",
		OutDir:            "/tmp/keys",
	}, cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"format":  "format: jwk\n",
		"version": "private_key_version: 3\n",
		"yaml":    "format: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewApp(t *testing.T) {
	a, err := New(Default(), nil)
	require.NoError(t, err)
	require.NotNil(t, a.Keys)
	require.NotNil(t, a.Log)

	cfg := Default()
	cfg.Format = "raw"
	_, err = New(cfg, nil)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn", false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger("warn", true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud", false)
	require.Error(t, err)
}
