package performance

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(LoopVolume)
}

// LoopVolume warns when a script contains many loops.
var LoopVolume = lint.RuleDef{
	ID:          "PF01",
	Name:        "performance.loop_volume",
	Group:       "performance",
	Description: "Scripts with many loops risk exceeding the execution time limit.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"max_loops"},
	Check:       checkLoopVolume,
}

const defaultLoopVolume = 10

func checkLoopVolume(doc *source.Document, opts map[string]any) []lint.Diagnostic {
	limit := lint.GetIntOption(opts, "max_loops", defaultLoopVolume)
	count := strings.Count(doc.Text, "for ")
	if count <= limit {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Message:  fmt.Sprintf("High number of loops detected (%d) - monitor performance and consider optimization", count),
	}}
}
