package lexical

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(PlotLinestyle)
}

// PlotLinestyle rejects the linestyle argument on plotting calls.
var PlotLinestyle = lint.RuleDef{
	ID:          "LX05",
	Name:        "lexical.plot_linestyle",
	Group:       "lexical",
	Description: "hline(), plot() and plotcandle() do not accept a linestyle parameter in v6.",
	Severity:    lint.SeverityError,
	Check:       checkPlotLinestyle,
	BadExample:  "hline(50, \"Mid\", color.gray, linestyle=hline.style_dashed)",
	GoodExample: "hline(50, \"Mid\", color.gray, hline.style_dashed)",
}

var plotLinestyleRegexps = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(plotLinestylePatterns))
	for _, p := range plotLinestylePatterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}()

func checkPlotLinestyle(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, re := range plotLinestyleRegexps {
		doc.CodeLines(func(line int, trimmed string) {
			if !re.MatchString(trimmed) {
				return
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Line:     line,
				Message:  "Invalid plotting function parameter. Remove 'linestyle' parameter - not supported in Pine Script v6",
			})
		})
	}
	return diagnostics
}
