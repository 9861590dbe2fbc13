package structure

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ScriptDeclaration)
}

// ScriptDeclaration requires an indicator() or strategy() call.
var ScriptDeclaration = lint.RuleDef{
	ID:          "ST02",
	Name:        "structure.declaration",
	Group:       "structure",
	Description: "Scripts must declare their type with indicator() or strategy().",
	Severity:    lint.SeverityError,
	Check:       checkScriptDeclaration,
	GoodExample: "//@version=6\nindicator(\"Cycles\", overlay=true)",
}

var declarationPattern = regexp.MustCompile(`(?:indicator|strategy)\s*\(`)

func checkScriptDeclaration(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if declarationPattern.MatchString(doc.Text) {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityError,
		Message:  "No indicator or strategy declaration found",
	}}
}
