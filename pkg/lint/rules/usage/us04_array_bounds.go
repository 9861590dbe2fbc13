package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ArrayBounds)
}

// ArrayBounds flags indexed reads with no size check anywhere.
var ArrayBounds = lint.RuleDef{
	ID:          "US04",
	Name:        "usage.array_bounds",
	Group:       "usage",
	Description: "array.get() should be bounds-checked against array.size().",
	Severity:    lint.SeverityWarning,
	Check:       checkArrayBounds,
	GoodExample: "if i < array.size(values)\n    v = array.get(values, i)",
}

func checkArrayBounds(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("array.get(") || doc.Contains("array.size(") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Line:     firstUse(doc, "array.get("),
		Message:  "Array access operations detected - ensure proper bounds checking with array.size()",
	}}
}
