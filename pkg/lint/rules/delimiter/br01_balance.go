package delimiter

import (
	"fmt"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(BracketBalance)
}

// BracketBalance checks that (), [] and {} are balanced and correctly nested.
var BracketBalance = lint.RuleDef{
	ID:          "BR01",
	Name:        "delimiter.balance",
	Group:       "delimiter",
	Description: "Brackets, parentheses and braces must be balanced and correctly nested.",
	Severity:    lint.SeverityError,
	Check:       checkBracketBalance,
	Rationale:   "An unbalanced delimiter makes the script fail to compile, usually far from the real mistake.",
	BadExample:  "plot(math.max(high, low)",
	GoodExample: "plot(math.max(high, low))",
}

// closers maps each opening delimiter to its closer.
var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

var openers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

type bracketEntry struct {
	open rune
	line int
}

func checkBracketBalance(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	var stack []bracketEntry

	for i, text := range doc.Lines {
		line := i + 1
		for _, ch := range text {
			if _, ok := closers[ch]; ok {
				stack = append(stack, bracketEntry{open: ch, line: line})
				continue
			}
			if _, ok := openers[ch]; !ok {
				continue
			}
			if len(stack) == 0 {
				diagnostics = append(diagnostics, lint.Diagnostic{
					Severity: lint.SeverityError,
					Line:     line,
					Message:  fmt.Sprintf("Unexpected closing bracket '%c'", ch),
				})
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closers[top.open] != ch {
				diagnostics = append(diagnostics, lint.Diagnostic{
					Severity:    lint.SeverityError,
					Line:        line,
					RelatedLine: top.line,
					Message: fmt.Sprintf("Mismatched brackets. Opened '%c' on line %d, closed '%c' on line %d",
						top.open, top.line, ch, line),
				})
			}
		}
	}

	// Only the innermost still-open delimiter is reported.
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityError,
			Line:     top.line,
			Message:  fmt.Sprintf("Unclosed bracket '%c'", top.open),
		})
	}

	return diagnostics
}
