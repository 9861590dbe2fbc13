package structure

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(IncompleteCall)
}

// IncompleteCall points at lines that end while a call is still open.
var IncompleteCall = lint.RuleDef{
	ID:          "ST07",
	Name:        "structure.incomplete_call",
	Group:       "structure",
	Description: "Lines ending inside an open call are worth a second look.",
	Severity:    lint.SeverityInfo,
	Check:       checkIncompleteCall,
}

var openCallPattern = regexp.MustCompile(`\b\w+\s*\([^)]*$`)

func checkIncompleteCall(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		if strings.HasSuffix(trimmed, ")") || !openCallPattern.MatchString(trimmed) {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityInfo,
			Line:     line,
			Message:  "Potential incomplete function call - check parentheses",
		})
	})
	return diagnostics
}
