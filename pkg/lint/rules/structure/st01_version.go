package structure

import (
	"fmt"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(VersionDirective)
}

// VersionDirective checks the //@version=N directive.
var VersionDirective = lint.RuleDef{
	ID:          "ST01",
	Name:        "structure.version_directive",
	Group:       "structure",
	Description: "Scripts should start with a //@version directive targeting a supported version.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"min_version", "max_version"},
	Check:       checkVersionDirective,
	Rationale:   "Without a directive the compiler falls back to an old language version with different built-ins.",
	BadExample:  "indicator(\"My script\")",
	GoodExample: "//@version=6\nindicator(\"My script\")",
}

const (
	defaultMinVersion = 5
	defaultMaxVersion = 6
)

func checkVersionDirective(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	minVersion := lint.GetIntOption(opts, "min_version", defaultMinVersion)
	maxVersion := lint.GetIntOption(opts, "max_version", defaultMaxVersion)

	var diagnostics []lint.Diagnostic
	version, line, ok := doc.VersionDirective()

	switch {
	case !doc.StartsWithDirective():
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Message:  "File should start with //@version directive",
		})
	case !ok:
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     1,
			Message:  "Could not determine Pine Script version",
		})
	}

	if !ok {
		return diagnostics
	}

	if version < minVersion {
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     line,
			Message:  fmt.Sprintf("Pine Script version %d is outdated. Consider upgrading to v%d", version, maxVersion),
		})
	} else if version > maxVersion {
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     line,
			Message:  fmt.Sprintf("Pine Script version %d is newer than expected. Ensure compatibility", version),
		})
	}

	return diagnostics
}
