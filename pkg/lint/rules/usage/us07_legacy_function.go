package usage

import (
	"fmt"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(LegacyFunction)
}

// legacyFunctions are calls whose signatures changed across releases.
var legacyFunctions = []string{"security", "plotchar", "fill"}

// LegacyFunction notes calls to functions that were reworked in newer versions.
var LegacyFunction = lint.RuleDef{
	ID:          "US07",
	Name:        "usage.legacy_function",
	Group:       "usage",
	Description: "Calls to functions whose signatures changed between language versions.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"functions"},
	Check:       checkLegacyFunction,
}

func checkLegacyFunction(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, fn := range lint.GetStringSliceOption(opts, "functions", legacyFunctions) {
		line := firstUse(doc, fn+"(")
		if line == 0 {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			Severity: lint.SeverityInfo,
			Line:     line,
			Message:  fmt.Sprintf("Using potentially deprecated function: %s", fn),
		})
	}
	return diags
}
