package usage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(VarScope)
}

var varDeclPattern = regexp.MustCompile(`\bvar\s+\w+\s*=`)

// VarScope lists every var declaration for a scoping review.
var VarScope = lint.RuleDef{
	ID:          "US08",
	Name:        "usage.var_scope",
	Group:       "usage",
	Description: "var declarations initialise once and persist across bars.",
	Severity:    lint.SeverityHint,
	Check:       checkVarScope,
}

func checkVarScope(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, loc := range varDeclPattern.FindAllStringIndex(doc.Text, -1) {
		decl := strings.TrimSpace(doc.Text[loc[0]:loc[1]])
		diags = append(diags, lint.Diagnostic{
			Severity: lint.SeverityHint,
			Line:     doc.LineAt(loc[0]),
			Message:  fmt.Sprintf("Var declaration found: %s - ensure proper scoping", decl),
		})
	}
	return diags
}
