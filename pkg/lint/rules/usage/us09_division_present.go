package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(DivisionPresent)
}

// DivisionPresent is a document-level reminder that the script divides.
// LX08 covers the divisor shapes that are likely to reach zero.
var DivisionPresent = lint.RuleDef{
	ID:          "US09",
	Name:        "usage.division_present",
	Group:       "usage",
	Description: "The script contains '/' characters; check divisors for zero.",
	Severity:    lint.SeverityHint,
	Check:       checkDivisionPresent,
}

func checkDivisionPresent(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("/") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityHint,
		Message:  "Division operations found - check for potential division by zero",
	}}
}
