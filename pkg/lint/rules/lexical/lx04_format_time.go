package lexical

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(FormatTime)
}

// FormatTime warns when str.format_time may receive a float.
var FormatTime = lint.RuleDef{
	ID:          "LX04",
	Name:        "lexical.format_time",
	Group:       "lexical",
	Description: "str.format_time() expects an int timestamp.",
	Severity:    lint.SeverityWarning,
	Check:       checkFormatTime,
	BadExample:  "s = str.format_time(time, \"HH:mm\")",
	GoodExample: "s = str.format_time(math.round(time), \"HH:mm\")",
}

var (
	formatTimeBare    = regexp.MustCompile(`str\.format_time\s*\(\s*time\b`)
	formatTimeHistory = regexp.MustCompile(`str\.format_time\s*\(\s*[^,)]*time\[`)
	formatTimeAny     = regexp.MustCompile(`str\.format_time\s*\(\s*[^,)]*\)`)
	formatTimeRounded = regexp.MustCompile(`str\.format_time\s*\(\s*math\.round\(`)
)

func checkFormatTime(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	doc.CodeLines(func(line int, trimmed string) {
		if !strings.Contains(trimmed, "str.format_time(") {
			return
		}
		var msg string
		switch {
		case formatTimeHistory.MatchString(trimmed):
			msg = "str.format_time() may receive float timestamp from 'time[]'. Consider using math.round() to convert to int"
		case formatTimeBare.MatchString(trimmed):
			msg = "str.format_time() may receive float timestamp from 'time'. Consider using math.round(time) to convert to int"
		case formatTimeAny.MatchString(trimmed) && !formatTimeRounded.MatchString(trimmed):
			msg = "str.format_time() expects series int (timestamp). Ensure argument is converted to int if needed"
		default:
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     line,
			Message:  msg,
		})
	})
	return diagnostics
}
