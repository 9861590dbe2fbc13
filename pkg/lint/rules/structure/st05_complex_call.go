package structure

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ComplexCall)
}

// ComplexCall flags argument lists spanning three or more lines.
var ComplexCall = lint.RuleDef{
	ID:          "ST05",
	Name:        "structure.complex_call",
	Group:       "structure",
	Description: "Function calls spanning three or more lines deserve a careful syntax review.",
	Severity:    lint.SeverityWarning,
	Check:       checkComplexCall,
	Rationale:   "Line continuation rules for wrapped arguments are strict about indentation.",
}

var complexCallPattern = regexp.MustCompile(`\w+\([^)]*\n.*\w+.*\n.*[^)]*\)`)

func checkComplexCall(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	loc := complexCallPattern.FindStringIndex(doc.Text)
	if loc == nil {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Line:     doc.LineAt(loc[0]),
		Message:  "Complex multiline function call detected - verify syntax carefully",
	}}
}
