package lexical

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(MathNamespace)
}

// MathNamespace flags bare calls to math functions.
var MathNamespace = lint.RuleDef{
	ID:          "LX03",
	Name:        "lexical.math_namespace",
	Group:       "lexical",
	Description: "Math functions live in the math namespace in v6.",
	Severity:    lint.SeverityWarning,
	Check:       checkMathNamespace,
	BadExample:  "y = sin(x)",
	GoodExample: "y = math.sin(x)",
	Fix:         "Prefix the call with math.",
}

// Group 1 is the namespace, when there is one.
var mathCallPattern = regexp.MustCompile(`(?:(\w+)\s*\.\s*)?\b(` + strings.Join(mathFunctions, "|") + `)\s*\(`)

func checkMathNamespace(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		seen := make(map[string]bool)
		for _, m := range mathCallPattern.FindAllStringSubmatch(trimmed, -1) {
			namespace, fn := m[1], m[2]
			if nonMathNamespaces[namespace] || seen[fn] {
				continue
			}
			seen[fn] = true
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarning,
				Line:     line,
				Message:  fmt.Sprintf("Mathematical function '%s()' should use 'math.%s()' in Pine Script v6", fn, fn),
			})
		}
	})
	return diagnostics
}
