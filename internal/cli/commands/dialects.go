package commands

import (
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long:  `List every registered dialect with its identifier quoting and feature set.`,
		Args:  cobra.NoArgs,
		RunE:  runDialects,
	}
}

// dialectInfo is the JSON shape of one dialect entry.
type dialectInfo struct {
	Name     string   `json:"name"`
	Quotes   string   `json:"quotes"`
	Features []string `json:"features,omitempty"`
}

func runDialects(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)

	infos := make([]dialectInfo, 0, len(dialect.List()))
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		infos = append(infos, dialectInfo{
			Name:     d.Name,
			Quotes:   quoteChars(d),
			Features: featureList(d.Settings),
		})
	}

	out := cmd.OutOrStdout()
	if cmdCtx.Cfg.OutputFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Dialect", "Quotes", "Features"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Quotes, strings.Join(info.Features, ", ")})
	}
	t.Render()
	return nil
}

func quoteChars(d *dialect.Dialect) string {
	var sb strings.Builder
	for _, r := range []rune{'"', '`', '['} {
		if d.IsDelimitedIdentifierStart(r) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func featureList(s dialect.Settings) []string {
	var features []string
	add := func(on bool, name string) {
		if on {
			features = append(features, name)
		}
	}
	add(s.ConvertTypeBeforeValue, "convert-type-first")
	add(s.SupportsConnectBy, "connect-by")
	add(s.BackslashEscapes, "backslash-escapes")
	add(s.SupportsIlike, "ilike")
	add(s.SupportsTop, "top")
	add(s.SupportsNamedArguments, "named-args")
	add(s.SupportsArrayLiterals, "array-literals")
	add(s.SupportsJSONOperators, "json-operators")
	add(s.SupportsFilterDuringAggregation, "aggregate-filter")
	add(s.SupportsQualify, "qualify")
	return features
}
