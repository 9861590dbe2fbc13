package performance

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(VariableBoundLoop)
}

// VariableBoundLoop flags loops whose bound is not a literal.
var VariableBoundLoop = lint.RuleDef{
	ID:          "PF03",
	Name:        "performance.variable_bound_loop",
	Group:       "performance",
	Description: "Loops bounded by a variable must be checked for termination.",
	Severity:    lint.SeverityWarning,
	Check:       checkVariableBoundLoop,
	BadExample:  "for i = 0 to lookback",
	GoodExample: "for i = 0 to math.min(lookback, 500)",
}

var variableBoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`for\s+\w+\s*=\s*\d+\s+to\s+[A-Za-z_]\w*`),
	regexp.MustCompile(`while\s+\w+\s*<`),
}

// One warning per loop form, at its first occurrence.
func checkVariableBoundLoop(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, re := range variableBoundPatterns {
		loc := re.FindStringIndex(doc.Text)
		if loc == nil {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     doc.LineAt(loc[0]),
			Message:  "Loop with variable bounds detected - ensure termination conditions are met",
		})
	}
	return diagnostics
}
