package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func newBuffers(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewRendererWithTTY(&out, &errOut, isTTY, mode), &out
}

func reportWith(path string, diags ...lint.Diagnostic) *lint.Report {
	rep := lint.NewReport(path)
	rep.Add(diags...)
	return rep
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{"bogus", true, ModeText},
		{ModeText, false, ModeText},
		{ModeJSON, true, ModeJSON},
		{ModeYAML, false, ModeYAML},
		{ModeMarkdown, true, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, _ := newBuffers(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestCheckResults_NoIssues(t *testing.T) {
	r, out := newBuffers(ModeText, false)

	require.NoError(t, r.CheckResults([]FileResult{{Path: "ok.pine", Report: reportWith("ok.pine")}}))

	text := out.String()
	assert.Contains(t, text, "Checking ok.pine...")
	assert.Contains(t, text, "No issues found")
	assert.Contains(t, text, "Syntax check passed! (0 warnings)")
	assert.NotContains(t, text, "ERRORS")
}

func TestCheckResults_NotesOnly(t *testing.T) {
	note := lint.Diagnostic{RuleID: "US06", Severity: lint.SeverityInfo, Message: "Consider adding stop-loss or take-profit"}

	for _, mode := range []Mode{ModeText, ModeMarkdown} {
		t.Run(string(mode), func(t *testing.T) {
			r, out := newBuffers(mode, false)

			require.NoError(t, r.CheckResults([]FileResult{{Path: "n.pine", Report: reportWith("n.pine", note)}}))

			text := out.String()
			assert.NotContains(t, text, "No issues found")
			assert.Contains(t, text, "NOTES (1)")
			assert.Contains(t, text, "Syntax check passed! (0 warnings)")
		})
	}
}

func TestCheckResults_GroupedBlocks(t *testing.T) {
	rep := reportWith("bad.pine",
		lint.Diagnostic{RuleID: "BR01", Severity: lint.SeverityError, Line: 4, Message: "Unclosed bracket '('"},
		lint.Diagnostic{RuleID: "ST01", Severity: lint.SeverityWarning, Message: "File should start with //@version directive"},
		lint.Diagnostic{RuleID: "ST03", Severity: lint.SeverityError, Line: 3, Message: "Multi-line comments (/* */) are not supported in Pine Script"},
	)
	r, out := newBuffers(ModeText, false)

	require.NoError(t, r.CheckResults([]FileResult{{Path: "bad.pine", Report: rep}}))

	text := out.String()
	assert.Contains(t, text, "ERRORS (2):")
	assert.Contains(t, text, "  Line 4: Unclosed bracket '(' [BR01]")
	assert.Contains(t, text, "WARNINGS (1):")
	assert.Contains(t, text, "  File should start with //@version directive [ST01]")
	assert.Contains(t, text, "Syntax check failed! (2 errors, 1 warnings)")
	assert.NotContains(t, text, "No issues found")

	// Errors block precedes warnings; errors keep detection order.
	assert.Less(t, strings.Index(text, "ERRORS"), strings.Index(text, "WARNINGS"))
	assert.Less(t, strings.Index(text, "Line 4"), strings.Index(text, "Line 3"))
}

func TestCheckResults_LoadError(t *testing.T) {
	r, out := newBuffers(ModeText, false)
	err := &source.LoadError{Path: "gone.pine", Err: source.ErrNotFound}

	require.NoError(t, r.CheckResults([]FileResult{{Path: "gone.pine", Err: err}}))

	assert.Contains(t, out.String(), "Cannot check file: gone.pine: file not found")
	assert.Contains(t, out.String(), "Syntax check failed!")
}

func TestCheckResults_Markdown(t *testing.T) {
	rep := reportWith("x.pine",
		lint.Diagnostic{RuleID: "LX03", Severity: lint.SeverityWarning, Line: 2, Message: "use math.sin"},
	)
	r, out := newBuffers(ModeAuto, false)

	require.NoError(t, r.CheckResults([]FileResult{{Path: "x.pine", Report: rep}}))

	md := out.String()
	assert.Contains(t, md, "## x.pine")
	assert.Contains(t, md, "### WARNINGS (1)")
	assert.Contains(t, md, "- Line 2: use math.sin `LX03`")
	assert.Contains(t, md, "Syntax check passed! (1 warnings)")
	assert.NotContains(t, md, "\x1b[")
}

func TestCheckResults_Totals(t *testing.T) {
	results := []FileResult{
		{Path: "a.pine", Report: reportWith("a.pine")},
		{Path: "b.pine", Report: reportWith("b.pine", lint.Diagnostic{RuleID: "BR01", Severity: lint.SeverityError, Line: 1, Message: "x"})},
	}
	r, out := newBuffers(ModeText, false)

	require.NoError(t, r.CheckResults(results))
	assert.Contains(t, out.String(), "Checked 2 files: 1 failed (1 errors, 0 warnings)")
}

func TestCheckResults_JSON(t *testing.T) {
	results := []FileResult{
		{Path: "a.pine", Report: reportWith("a.pine", lint.Diagnostic{RuleID: "LX01", Group: "lexical", Severity: lint.SeverityError, Line: 3, Message: "reserved"})},
		{Path: "gone.pine", Err: errors.New("gone.pine: file not found")},
	}
	r, out := newBuffers(ModeJSON, true)

	require.NoError(t, r.CheckResults(results))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	_, err := uuid.Parse(got["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, false, got["passed"])
	assert.EqualValues(t, 1, got["errors"])

	files := got["files"].([]any)
	require.Len(t, files, 2)
	first := files[0].(map[string]any)
	diag := first["diagnostics"].([]any)[0].(map[string]any)
	assert.Equal(t, "error", diag["severity"])
	assert.Equal(t, "LX01", diag["rule_id"])
	assert.EqualValues(t, 3, diag["line"])

	second := files[1].(map[string]any)
	assert.Equal(t, "gone.pine: file not found", second["load_error"])
	assert.Empty(t, second["diagnostics"])
}

func TestCheckResults_YAML(t *testing.T) {
	rep := reportWith("a.pine", lint.Diagnostic{RuleID: "ST01", Severity: lint.SeverityWarning, Message: "w"})
	r, out := newBuffers(ModeYAML, false)

	require.NoError(t, r.CheckResults([]FileResult{{Path: "a.pine", Report: rep}}))

	var got CheckOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Passed)
	assert.Equal(t, 1, got.Warnings)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "a.pine", got.Files[0].Path)
	assert.Contains(t, out.String(), "severity: warning")
}

func TestNewCheckOutput_UniqueRunIDs(t *testing.T) {
	a := NewCheckOutput(nil)
	b := NewCheckOutput(nil)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.True(t, a.Passed)
}

func TestRenderer_Messages(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Success("done")
	r.Warn("careful")
	r.Error("broken")

	assert.Equal(t, "done\n", out.String())
	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "broken")
}
