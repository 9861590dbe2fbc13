package structure

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ElementAssignment)
}

// ElementAssignment flags `name[index] =`, which neither arrays nor history
// references accept.
var ElementAssignment = lint.RuleDef{
	ID:          "ST08",
	Name:        "structure.element_assignment",
	Group:       "structure",
	Description: "Values cannot be assigned through subscripts; arrays are written with array.set().",
	Severity:    lint.SeverityWarning,
	Check:       checkElementAssignment,
	BadExample:  "levels[i] = close",
	GoodExample: "array.set(levels, i, close)",
}

var elementAssignPattern = regexp.MustCompile(`\w+\[\s*\w+\s*\]\s*=(?:[^=]|$)`)

func checkElementAssignment(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		if !elementAssignPattern.MatchString(trimmed) {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     line,
			Message:  "Array access syntax detected - ensure proper array operations",
		})
	})
	return diagnostics
}
