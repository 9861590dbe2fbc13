package structure

import (
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(BlockComment)
}

// BlockComment rejects /* ... */ comments.
var BlockComment = lint.RuleDef{
	ID:          "ST03",
	Name:        "structure.block_comment",
	Group:       "structure",
	Description: "Multiline comments are not supported; use // line comments.",
	Severity:    lint.SeverityError,
	Check:       checkBlockComment,
	BadExample:  "/* smoothing */\nsma = ta.sma(close, 14)",
	GoodExample: "// smoothing\nsma = ta.sma(close, 14)",
}

func checkBlockComment(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	first := -1
	for _, marker := range []string{"/*", "*/"} {
		if i := strings.Index(doc.Text, marker); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityError,
		Line:     doc.LineAt(first),
		Message:  "Multiline comments (/* ... */) detected. Use single-line comments (//) instead",
	}}
}
