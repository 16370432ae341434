package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlparse/pkg/parser"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var inlineSQL string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse SQL and print the canonical rendering",
		Long: `Parse SQL statements and print each one rendered back from its
syntax tree. Reads from a file, stdin, or the --sql flag.`,
		Example: `  # Parse a file
  sqlparse parse query.sql

  # Parse from stdin with an explicit dialect
  cat query.sql | sqlparse parse -d postgres

  # Parse inline SQL as JSON
  sqlparse parse --sql "SELECT 1" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, inlineSQL)
		},
	}

	cmd.Flags().StringVar(&inlineSQL, "sql", "", "SQL to parse (instead of a file or stdin)")

	return cmd
}

// parseResult is the JSON shape of one parsed statement.
type parseResult struct {
	Index int    `json:"index"`
	SQL   string `json:"sql"`
}

func runParse(cmd *cobra.Command, args []string, inlineSQL string) error {
	cmdCtx := NewCommandContext(cmd)

	sql, source, err := readInput(cmd, args, inlineSQL)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("parsing input", "source", source, "dialect", cmdCtx.Dialect.Name)

	stmts, err := parser.Parse(sql, cmdCtx.Dialect, cmdCtx.ParserOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	out := cmd.OutOrStdout()
	if cmdCtx.Cfg.OutputFormat == "json" {
		results := make([]parseResult, len(stmts))
		for i, s := range stmts {
			results[i] = parseResult{Index: i, SQL: s.String()}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, s := range stmts {
		fmt.Fprintf(out, "%s;\n", s)
	}
	return nil
}
