package delimiter

import (
	"fmt"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(MultilineCall)
}

// MultilineCall tracks parenthesis depth across lines to catch calls whose
// argument list never closes or closes too often.
var MultilineCall = lint.RuleDef{
	ID:          "BR02",
	Name:        "delimiter.multiline_call",
	Group:       "delimiter",
	Description: "Function calls spanning several lines must close every parenthesis they open.",
	Severity:    lint.SeverityError,
	Check:       checkMultilineCall,
	Rationale:   "Long input() and plot() calls are often wrapped over several lines, where a lost ')' is easy to miss.",
	BadExample:  "plot(close,\n     title=\"Close\"",
	GoodExample: "plot(close,\n     title=\"Close\")",
}

// CallScan is the scan state of the multiline call tracker.
// The zero value is the state at the start of a document.
type CallScan struct {
	Depth     int  // running parenthesis depth
	InCall    bool // inside a call opened at StartLine
	StartLine int  // line of the most recent 0 -> 1 transition
}

// Step advances the scan by one character on the given line. It returns a
// diagnostic when a closing parenthesis drives the depth negative; the state
// is then reset so scanning can continue.
func (s CallScan) Step(ch rune, line int) (CallScan, *lint.Diagnostic) {
	switch ch {
	case '(':
		s.Depth++
		if s.Depth == 1 {
			s.StartLine = line
			s.InCall = true
		}
	case ')':
		s.Depth--
		if s.Depth == 0 && s.InCall {
			s.InCall = false
		}
		if s.Depth < 0 {
			start := s.StartLine
			if start == 0 {
				start = line
			}
			d := &lint.Diagnostic{
				Severity:    lint.SeverityError,
				Line:        line,
				RelatedLine: start,
				Message: fmt.Sprintf("Extra closing parenthesis. Check multiline function call starting around line %d",
					start),
			}
			s.Depth = 0
			s.InCall = false
			return s, d
		}
	}
	return s, nil
}

// Finish returns the end-of-document diagnostic, if any.
func (s CallScan) Finish(lastLine int) *lint.Diagnostic {
	if s.Depth <= 0 {
		return nil
	}
	return &lint.Diagnostic{
		Severity:    lint.SeverityError,
		Line:        lastLine,
		RelatedLine: s.StartLine,
		Message: fmt.Sprintf("Unclosed parenthesis. Multiline function call starting around line %d is missing closing parenthesis",
			s.StartLine),
	}
}

func checkMultilineCall(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	var scan CallScan

	doc.CodeLines(func(line int, trimmed string) {
		for _, ch := range trimmed {
			var d *lint.Diagnostic
			scan, d = scan.Step(ch, line)
			if d != nil {
				diagnostics = append(diagnostics, *d)
			}
		}
	})

	if d := scan.Finish(doc.LineCount()); d != nil {
		diagnostics = append(diagnostics, *d)
	}
	return diagnostics
}
