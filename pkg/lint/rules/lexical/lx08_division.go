package lexical

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(SuspiciousDivision)
}

// SuspiciousDivision flags divisors that could evaluate to zero.
var SuspiciousDivision = lint.RuleDef{
	ID:          "LX08",
	Name:        "lexical.division",
	Group:       "lexical",
	Description: "Divisions by a difference, a sum, or a trailing operand may divide by zero.",
	Severity:    lint.SeverityWarning,
	Check:       checkSuspiciousDivision,
	BadExample:  "pct = (close - low) / (high - low)",
	GoodExample: "rng = high - low\npct = rng != 0 ? (close - low) / rng : 0",
}

var (
	groupedDivisors   = compileAll(suspiciousDivisions)
	trailingDivisorRe = regexp.MustCompile(trailingDivision)
)

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func checkSuspiciousDivision(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	report := func(line int, matches int) {
		for range matches {
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarning,
				Line:     line,
				Message:  "Suspicious division operation detected - verify divisor cannot be zero",
			})
		}
	}
	for _, re := range groupedDivisors {
		doc.EachLine(func(line int, trimmed string) {
			report(line, len(re.FindAllStringIndex(trimmed, -1)))
		})
	}
	// Every "// Title" comment ends in "/ word", so the trailing form reads code only.
	doc.CodeLines(func(line int, trimmed string) {
		report(line, len(trailingDivisorRe.FindAllStringIndex(trimmed, -1)))
	})
	return diagnostics
}
