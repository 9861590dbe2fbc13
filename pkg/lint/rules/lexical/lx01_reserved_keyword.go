package lexical

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ReservedKeyword)
}

// ReservedKeyword flags assignments to reserved words.
var ReservedKeyword = lint.RuleDef{
	ID:          "LX01",
	Name:        "lexical.reserved_keyword",
	Group:       "lexical",
	Description: "Reserved keywords cannot be used as variable names.",
	Severity:    lint.SeverityError,
	Check:       checkReservedKeyword,
	BadExample:  "range = high - low",
	GoodExample: "barRange = high - low",
}

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// `kw =` but not `kw ==`.
var keywordPatterns = func() []keywordPattern {
	out := make([]keywordPattern, 0, len(reservedKeywords))
	for _, kw := range reservedKeywords {
		out = append(out, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`\b` + kw + `\s*=(?:[^=]|$)`),
		})
	}
	return out
}()

func checkReservedKeyword(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.EachLine(func(line int, trimmed string) {
		for _, kp := range keywordPatterns {
			if !kp.re.MatchString(trimmed) {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Line:     line,
				Message:  fmt.Sprintf("Reserved keyword '%s' used as variable name. Choose a different name", kp.keyword),
			})
		}
	})
	return diagnostics
}
