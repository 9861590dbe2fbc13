package usage

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(ContainerInit)
}

// ContainerInit flags container operations with no constructor in sight.
var ContainerInit = lint.RuleDef{
	ID:          "US01",
	Name:        "usage.container_init",
	Group:       "usage",
	Description: "Arrays, matrices, labels, boxes and tables should be created before they are used.",
	Severity:    lint.SeverityWarning,
	Check:       checkContainerInit,
	BadExample:  "array.push(values, close)",
	GoodExample: "var values = array.new_float()\narray.push(values, close)",
}

// containerCheck pairs the operations on a container with the text that
// proves it was constructed.
type containerCheck struct {
	ops         []string
	opPattern   *regexp.Regexp
	constructor string
	minVersion  int
	message     string
}

var containerChecks = []containerCheck{
	{
		opPattern:   regexp.MustCompile(`\barray\.\w+`),
		constructor: "array.new",
		message:     "Array operations detected but no array.new() initialization found",
	},
	{
		opPattern:   regexp.MustCompile(`\bmatrix\.\w+`),
		constructor: "matrix.new",
		minVersion:  6,
		message:     "Matrix operations detected but no matrix initialization found",
	},
	{
		ops:         []string{"label.new", "label.delete", "label.get_text", "label.set_text"},
		constructor: "var label",
		message:     "Label operations detected - ensure proper label variable declarations",
	},
	{
		ops:         []string{"box.new", "box.delete", "box.get_left", "box.set_left"},
		constructor: "var box",
		message:     "Box operations detected - ensure proper box variable declarations",
	},
	{
		ops:         []string{"table.new", "table.delete", "table.cell", "table.set_cell"},
		constructor: "var table",
		message:     "Table operations detected - ensure proper table variable declarations",
	},
}

// firstOp returns the line of the first operation, or false.
func (c containerCheck) firstOp(doc *source.Document) (int, bool) {
	if c.opPattern != nil {
		loc := c.opPattern.FindStringIndex(doc.Text)
		if loc == nil {
			return 0, false
		}
		return doc.LineAt(loc[0]), true
	}
	line := firstUse(doc, c.ops...)
	return line, line > 0
}

func checkContainerInit(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	version := doc.VersionOr(5)
	for _, c := range containerChecks {
		if version < c.minVersion || doc.Contains(c.constructor) {
			continue
		}
		line, ok := c.firstOp(doc)
		if !ok {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarning,
			Line:     line,
			Message:  c.message,
		})
	}
	return diagnostics
}
