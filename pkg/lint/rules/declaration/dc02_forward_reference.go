package declaration

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ForwardReference)
}

// ForwardReference flags watched identifiers used before they are declared.
// Only the configured watch-list is checked; this is not scope analysis.
var ForwardReference = lint.RuleDef{
	ID:          "DC02",
	Name:        "declaration.forward_reference",
	Group:       "declaration",
	Description: "Watched identifiers must be declared before their first use.",
	Severity:    lint.SeverityError,
	ConfigKeys:  []string{"identifiers"},
	Check:       checkForwardReference,
	BadExample:  "len = maxCycleLength - 1\nmaxCycleLength = input.int(80)",
	GoodExample: "maxCycleLength = input.int(80)\nlen = maxCycleLength - 1",
}

var defaultWatchList = []string{
	"minCycleLength",
	"maxCycleLength",
	"currCycleBarCount",
	"currCycleLow",
	"currCycleHigh",
}

func checkForwardReference(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	watch := lint.GetStringSliceOption(opts, "identifiers", defaultWatchList)
	if len(watch) == 0 {
		return nil
	}

	uses := make(map[string]*regexp.Regexp, len(watch))
	for _, name := range watch {
		uses[name] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	}

	declared := make(timeline)
	scan(doc, func(name string, _ declKind, line int) {
		declared.record(name, line)
	})

	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		if isSignature(trimmed) {
			return
		}
		for _, name := range watch {
			if !uses[name].MatchString(trimmed) {
				continue
			}
			// A declaration on this line counts.
			if first, ok := declared[name]; ok && first <= line {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Line:     line,
				Message:  fmt.Sprintf("Undeclared identifier '%s' - variable used before declaration", name),
			})
		}
	})
	return diagnostics
}
