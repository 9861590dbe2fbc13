package declaration

import (
	"fmt"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(Duplicate)
}

// Duplicate flags a var declaration of a name that already exists.
var Duplicate = lint.RuleDef{
	ID:          "DC01",
	Name:        "declaration.duplicate",
	Group:       "declaration",
	Description: "A var declaration must not reuse a name declared earlier.",
	Severity:    lint.SeverityError,
	Check:       checkDuplicate,
	BadExample:  "var int count = 0\nvar int count = 1",
	GoodExample: "var int count = 0\ncount := 1",
	Fix:         "Reassign with := or pick a new name.",
}

func checkDuplicate(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	declared := make(timeline)
	scan(doc, func(name string, kind declKind, line int) {
		first, existed := declared.record(name, line)
		if !existed || kind != declVar {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity:    lint.SeverityError,
			Line:        line,
			RelatedLine: first,
			Message:     fmt.Sprintf("Variable '%s' is already defined on line %d", name, first),
		})
	})
	return diagnostics
}
