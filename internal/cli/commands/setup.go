package commands

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlparse/internal/cli/config"
	"github.com/leapstack-labs/sqlparse/pkg/dialect"
	"github.com/leapstack-labs/sqlparse/pkg/parser"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Dialect *dialect.Dialect
}

// NewCommandContext resolves config, logger, and dialect for a command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:     cfg,
		Logger:  config.GetLogger(cmd.Context()),
		Dialect: cfg.ResolveDialect(),
	}
}

// ParserOptions returns the parser options implied by the configuration.
func (c *CommandContext) ParserOptions() []parser.Option {
	if c.Cfg.RecursionLimit > 0 {
		return []parser.Option{parser.WithRecursionLimit(c.Cfg.RecursionLimit)}
	}
	return nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables so commands stay usable in isolation (tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := &config.Config{
		Dialect:      getEnvOrDefault("SQLPARSE_DIALECT", config.DefaultDialect),
		OutputFormat: getEnvOrDefault("SQLPARSE_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("SQLPARSE_VERBOSE") == "true",
	}
	if v := os.Getenv("SQLPARSE_RECURSION_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RecursionLimit = n
		}
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// readInput returns the SQL to operate on: the file named by args[0],
// stdin when args[0] is "-" or no argument is given, or the inline SQL
// passed with --sql.
func readInput(cmd *cobra.Command, args []string, inlineSQL string) (string, string, error) {
	if inlineSQL != "" {
		return inlineSQL, "<sql>", nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), "<stdin>", err
	}
	data, err := os.ReadFile(args[0])
	return string(data), args[0], err
}
