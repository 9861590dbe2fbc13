package lexical

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(V6Migration)
}

// V6Migration points at calls with a v6 replacement.
var V6Migration = lint.RuleDef{
	ID:          "LX07",
	Name:        "lexical.v6_migration",
	Group:       "lexical",
	Description: "Some function names changed in v6.",
	Severity:    lint.SeverityWarning,
	Check:       checkV6Migration,
	BadExample:  "htf = security(syminfo.tickerid, \"D\", close)",
	GoodExample: "htf = request.security(syminfo.tickerid, \"D\", close)",
}

type migrationPattern struct {
	migration
	re *regexp.Regexp
}

// A match preceded by '.' or a word character is already namespaced or a
// different identifier.
var migrationPatterns = func() []migrationPattern {
	out := make([]migrationPattern, 0, len(migrations))
	for _, m := range migrations {
		out = append(out, migrationPattern{
			migration: m,
			re:        regexp.MustCompile(`(?:^|[^.\w])` + regexp.QuoteMeta(m.old) + `\(`),
		})
	}
	return out
}()

func checkV6Migration(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, mp := range migrationPatterns {
		doc.CodeLines(func(line int, trimmed string) {
			if !mp.re.MatchString(trimmed) {
				return
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarning,
				Line:     line,
				Message: fmt.Sprintf("'%s(' may need to be updated to '%s(' for Pine Script v6 compatibility",
					mp.old, mp.replacement),
			})
		})
	}
	return diagnostics
}
