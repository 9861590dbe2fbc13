package structure

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(MultilineArray)
}

// MultilineArray rejects array literal arguments that break across lines.
var MultilineArray = lint.RuleDef{
	ID:          "ST04",
	Name:        "structure.multiline_array",
	Group:       "structure",
	Description: "Array literal arguments must stay on a single line.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"params"},
	Check:       checkMultilineArray,
	BadExample:  "mode = input.string(\"A\", options=[\"A\",\n    \"B\"])",
	GoodExample: "mode = input.string(\"A\", options=[\"A\", \"B\"])",
}

var defaultArrayParams = []string{"options"}

func checkMultilineArray(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, param := range lint.GetStringSliceOption(opts, "params", defaultArrayParams) {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(param) + `\s*=\s*\[[^\]]*\n`)
		if err != nil {
			continue
		}
		for _, loc := range pattern.FindAllStringIndex(doc.Text, -1) {
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Line:     doc.LineAt(loc[0]),
				Message:  "Multiline array in function call detected. Keep arrays on single line or use different formatting",
			})
		}
	}
	return diagnostics
}
