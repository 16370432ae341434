package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/leapstack-labs/sqlparse/pkg/dialects"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("dialect", "d", "", "")
	fs.Int("recursion-limit", 0, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.RecursionLimit)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := filepath.Join(t.TempDir(), "sqlparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: postgres\nrecursion_limit: 80\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, 80, cfg.RecursionLimit)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Cleanup(ResetConfig)

	path := filepath.Join(t.TempDir(), "sqlparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: postgres\n"), 0o644))
	t.Setenv("SQLPARSE_DIALECT", "mysql")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Dialect)
}

func TestLoadConfigFlagsWinOverEnv(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("SQLPARSE_DIALECT", "mysql")
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--dialect", "duckdb"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, "duckdb", cfg.Dialect)
}

func TestLoadConfigUnsetFlagsDoNotOverride(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("SQLPARSE_DIALECT", "mysql")
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Dialect)
}

func TestLoadConfigRejectsUnknownDialect(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("SQLPARSE_DIALECT", "db2")
	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestLoadConfigRejectsBadOutput(t *testing.T) {
	t.Cleanup(ResetConfig)

	t.Setenv("SQLPARSE_OUTPUT", "yaml")
	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestResolveDialect(t *testing.T) {
	cfg := &Config{Dialect: "postgres"}
	assert.Equal(t, "postgres", cfg.ResolveDialect().Name)

	cfg = &Config{Dialect: "nope"}
	assert.Equal(t, DefaultDialect, cfg.ResolveDialect().Name)
}
