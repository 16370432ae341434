package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlparse/pkg/parser"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Syntax-check SQL files",
		Long: `Parse each file and report syntax errors with their positions.
Exits non-zero if any file fails to parse.`,
		Example: `  # Check every model file
  sqlparse check models/*.sql

  # Check with a specific dialect
  sqlparse check -d snowflake etl.sql`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	return cmd
}

// checkResult is the outcome of checking one file.
type checkResult struct {
	File       string `json:"file"`
	Statements int    `json:"statements"`
	Error      string `json:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	results := make([]checkResult, 0, len(args))
	failed := 0
	for _, path := range args {
		res := checkResult{File: path}
		data, err := os.ReadFile(path)
		if err != nil {
			res.Error = err.Error()
		} else {
			stmts, err := parser.Parse(string(data), cmdCtx.Dialect, cmdCtx.ParserOptions()...)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Statements = len(stmts)
			}
		}
		if res.Error != "" {
			failed++
			cmdCtx.Logger.Debug("check failed", "file", path, "error", res.Error)
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if cmdCtx.Cfg.OutputFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Statements", "Status"})
		for _, r := range results {
			status := "ok"
			if r.Error != "" {
				status = r.Error
			}
			t.AppendRow(table.Row{r.File, r.Statements, status})
		}
		t.Render()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}
