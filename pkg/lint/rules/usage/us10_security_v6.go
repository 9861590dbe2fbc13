package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(SecurityV6)
}

// SecurityV6 notes request.security use in v6 scripts, where its
// error behaviour changed.
var SecurityV6 = lint.RuleDef{
	ID:          "US10",
	Name:        "usage.security_v6",
	Group:       "usage",
	Description: "request.security() in v6 scripts needs explicit error handling.",
	Severity:    lint.SeverityInfo,
	Check:       checkSecurityV6,
}

func checkSecurityV6(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if doc.VersionOr(5) < 6 || !doc.Contains("request.security") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityInfo,
		Line:     firstUse(doc, "request.security"),
		Message:  "Using request.security - ensure proper error handling in v6",
	}}
}
