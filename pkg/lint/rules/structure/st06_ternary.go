package structure

import (
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(IncompleteTernary)
}

// IncompleteTernary flags a line ending in '?' whose ':' branch never follows.
var IncompleteTernary = lint.RuleDef{
	ID:          "ST06",
	Name:        "structure.ternary",
	Group:       "structure",
	Description: "Ternary expressions must be completed with ':' and a false value.",
	Severity:    lint.SeverityError,
	Check:       checkIncompleteTernary,
	BadExample:  "c = close > open ?\n    color.green",
	GoodExample: "c = close > open ?\n    color.green : color.red",
}

func checkIncompleteTernary(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.EachLine(func(line int, trimmed string) {
		if !strings.HasSuffix(trimmed, "?") {
			return
		}
		if strings.Count(trimmed, "?") == strings.Count(trimmed, ":") {
			return
		}
		// A missing next line cannot complete the expression either, so the
		// final line is reported too.
		next := strings.TrimSpace(doc.Line(line + 1))
		if strings.ContainsAny(next, ":?") {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityError,
			Line:     line,
			Message:  "Incomplete ternary operator. Ternary expressions should be completed with ':' and false value",
		})
	})
	return diagnostics
}
