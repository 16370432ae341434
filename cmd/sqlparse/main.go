// Package main provides the sqlparse command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlparse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
