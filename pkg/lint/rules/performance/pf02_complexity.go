package performance

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(Complexity)
}

// Complexity counts loop and conditional statements.
var Complexity = lint.RuleDef{
	ID:          "PF02",
	Name:        "performance.complexity",
	Group:       "performance",
	Description: "Too many loops or parenthesised conditionals make a script slow and hard to follow.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"max_loops", "max_conditionals"},
	Check:       checkComplexity,
}

const (
	defaultMaxLoops        = 5
	defaultMaxConditionals = 10
)

var (
	loopPattern        = regexp.MustCompile(`\bfor\s+`)
	conditionalPattern = regexp.MustCompile(`\bif\s+\(`)
)

func checkComplexity(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	maxLoops := lint.GetIntOption(opts, "max_loops", defaultMaxLoops)
	maxConditionals := lint.GetIntOption(opts, "max_conditionals", defaultMaxConditionals)

	var diagnostics []lint.Diagnostic
	if n := len(conditionalPattern.FindAllStringIndex(doc.Text, -1)); n > maxConditionals {
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Message:  "High number of conditional statements - consider simplifying logic",
		})
	}
	if n := len(loopPattern.FindAllStringIndex(doc.Text, -1)); n > maxLoops {
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("High number of loops detected (%d) - monitor performance", n),
		})
	}
	return diagnostics
}
