package lexical

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(InvalidType)
}

// InvalidType flags type names borrowed from other languages.
var InvalidType = lint.RuleDef{
	ID:          "LX02",
	Name:        "lexical.invalid_type",
	Group:       "lexical",
	Description: "Only the dialect's own types are valid: int, float, bool, string, color, label and friends.",
	Severity:    lint.SeverityError,
	Check:       checkInvalidType,
	BadExample:  "var double total = 0.0",
	GoodExample: "var float total = 0.0",
}

type typePattern struct {
	name string
	re   *regexp.Regexp
}

var typePatterns = func() []typePattern {
	out := make([]typePattern, 0, len(invalidTypes))
	for _, t := range invalidTypes {
		out = append(out, typePattern{name: t.name, re: regexp.MustCompile(t.pattern)})
	}
	return out
}()

func checkInvalidType(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.EachLine(func(line int, trimmed string) {
		for _, tp := range typePatterns {
			if !tp.re.MatchString(trimmed) {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Line:     line,
				Message: fmt.Sprintf("Invalid Pine Script data type '%s'. Use 'int', 'float', 'bool', 'string', 'color', or 'label' instead",
					tp.name),
			})
		}
	})
	return diagnostics
}
