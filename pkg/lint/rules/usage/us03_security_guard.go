package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(SecurityGuard)
}

// SecurityGuard flags request.security results that are never na-checked.
var SecurityGuard = lint.RuleDef{
	ID:          "US03",
	Name:        "usage.security_guard",
	Group:       "usage",
	Description: "request.security() can return na; guard its result with na().",
	Severity:    lint.SeverityWarning,
	Check:       checkSecurityGuard,
	GoodExample: "htf = request.security(syminfo.tickerid, \"D\", close)\nval = na(htf) ? close : htf",
}

func checkSecurityGuard(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("request.security") || doc.Contains("na(") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Line:     firstUse(doc, "request.security"),
		Message:  "request.security() calls detected but no na() error handling found - consider adding error handling",
	}}
}
