// Package commands tests for CLI command creation and execution.
package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlparse/internal/cli/config"
	"github.com/leapstack-labs/sqlparse/internal/testutil"
	_ "github.com/leapstack-labs/sqlparse/pkg/dialects"
)

// execute runs a command with captured output and a test logger.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	ctx := context.WithValue(context.Background(), config.LoggerKey(), testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestNewParseCommand(t *testing.T) {
	cmd := NewParseCommand()

	assert.Equal(t, "parse [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("sql"), "flag \"sql\" should exist")
}

func TestParseInlineSQL(t *testing.T) {
	out, err := execute(t, NewParseCommand(), "--sql", "select a , b from t")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT a, b FROM t;")
}

func TestParseReportsSyntaxError(t *testing.T) {
	_, err := execute(t, NewParseCommand(), "--sql", "SELECT * FROM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1;\nSELECT 2;"), 0o644))

	out, err := execute(t, NewParseCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "SELECT 1;")
	assert.Contains(t, out, "SELECT 2;")
}

func TestNewTokensCommand(t *testing.T) {
	cmd := NewTokensCommand()

	assert.Equal(t, "tokens [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"sql", "trivia"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestTokensHidesTriviaByDefault(t *testing.T) {
	out, err := execute(t, NewTokensCommand(), "--sql", "SELECT 1 -- one")
	require.NoError(t, err)
	assert.Contains(t, out, "NUMBER")
	assert.NotContains(t, out, "LINE_COMMENT")

	out, err = execute(t, NewTokensCommand(), "--sql", "SELECT 1 -- one", "--trivia")
	require.NoError(t, err)
	assert.Contains(t, out, "LINE_COMMENT")
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check <file>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestCheckMixedFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sql")
	bad := filepath.Join(dir, "bad.sql")
	require.NoError(t, os.WriteFile(good, []byte("SELECT 1"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("SELECT * FROM"), 0o644))

	out, err := execute(t, NewCheckCommand(), good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, "ok")
}

func TestDialectsListsRegistry(t *testing.T) {
	cmd := NewDialectsCommand()
	assert.Equal(t, "dialects", cmd.Use)

	out, err := execute(t, cmd)
	require.NoError(t, err)
	for _, name := range []string{"ansi", "postgres", "mysql", "snowflake"} {
		assert.Contains(t, out, name)
	}
}

func TestNewVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Contains(t, out, "sqlparse v1.2.3")
}
