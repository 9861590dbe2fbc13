package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/core"
)

var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isValidOutput(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of %s)", c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	if _, ok := core.ParseSeverity(c.Severity); !ok {
		return fmt.Errorf("invalid severity %q (expected error, warning, info or hint)", c.Severity)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: invalid severity %q", id, sev)
			}
		}
	}
	return nil
}

func isValidOutput(s string) bool {
	for _, v := range validOutputs {
		if s == v {
			return true
		}
	}
	return false
}
