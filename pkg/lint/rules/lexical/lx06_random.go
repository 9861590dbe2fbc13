package lexical

import (
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(RandomFloat)
}

// RandomFloat rejects random.float(), which does not exist.
var RandomFloat = lint.RuleDef{
	ID:          "LX06",
	Name:        "lexical.random",
	Group:       "lexical",
	Description: "random.float() is not available; use a deterministic source.",
	Severity:    lint.SeverityError,
	Check:       checkRandomFloat,
	BadExample:  "noise = random.float(0, 1)",
	GoodExample: "noise = math.sin(bar_index)",
}

func checkRandomFloat(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		if !strings.Contains(trimmed, "random.float(") {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityError,
			Line:     line,
			Message:  "'random.float()' is not available in Pine Script. Use deterministic alternatives like 'math.sin()' for testing",
		})
	})
	return diagnostics
}
