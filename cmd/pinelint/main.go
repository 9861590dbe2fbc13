// Package main provides the CLI entry point for pinelint.
package main

import (
	"os"

	"github.com/leapstack-labs/pinelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
