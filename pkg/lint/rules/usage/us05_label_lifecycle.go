package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(LabelLifecycle)
}

// LabelLifecycle reminds authors that persistent labels accumulate.
var LabelLifecycle = lint.RuleDef{
	ID:          "US05",
	Name:        "usage.label_lifecycle",
	Group:       "usage",
	Description: "Labels created alongside var state should be deleted or updated in place.",
	Severity:    lint.SeverityWarning,
	Check:       checkLabelLifecycle,
	Fix:         "Keep one var label and move it with label.set_xy, or label.delete the previous one.",
}

func checkLabelLifecycle(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("var ") || !doc.Contains("label.new") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Line:     firstUse(doc, "label.new"),
		Message:  "Global label variables detected - ensure labels are properly managed to avoid memory leaks",
	}}
}
