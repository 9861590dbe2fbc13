package performance

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(Persistence)
}

// Persistence flags varip and var() so their scoping gets a second look.
var Persistence = lint.RuleDef{
	ID:          "PF04",
	Name:        "performance.persistence",
	Group:       "performance",
	Description: "Persistent variables keep state across bars and realtime updates.",
	Severity:    lint.SeverityWarning,
	Rationale:   "varip values survive intrabar updates, so a mis-scoped one silently accumulates state.",
	GoodExample: "var float peak = na",
	Check:       checkPersistence,
}

func checkPersistence(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("varip") && !doc.Contains("var()") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Message:  "Using varip or var() for variable persistence - ensure proper scoping",
	}}
}
