package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/structure"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func runRuleWith(t *testing.T, cfg *lint.Config, text string, ruleID string) []lint.Diagnostic {
	t.Helper()
	cfg.SetMinSeverity(lint.SeverityHint)
	report := lint.NewAnalyzer(cfg).Analyze(source.New("test.pine", text))

	var filtered []lint.Diagnostic
	for _, d := range report.Diagnostics() {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func runRule(t *testing.T, text string, ruleID string) []lint.Diagnostic {
	t.Helper()
	return runRuleWith(t, lint.NewConfig(), text, ruleID)
}

func TestST01_VersionDirective(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		line    int
		noDiags bool
	}{
		{name: "current", text: "//@version=6\nindicator(\"x\")", noDiags: true},
		{name: "minimum", text: "//@version=5\nindicator(\"x\")", noDiags: true},
		{name: "leading whitespace", text: "\n  //@version=6\nindicator(\"x\")", noDiags: true},
		{name: "outdated", text: "//@version=4\nindicator(\"x\")", want: "Pine Script version 4 is outdated. Consider upgrading to v6", line: 1},
		{name: "newer", text: "//@version=7\nindicator(\"x\")", want: "Pine Script version 7 is newer than expected. Ensure compatibility", line: 1},
		{name: "missing", text: "indicator(\"x\")", want: "File should start with //@version directive"},
		{name: "no number", text: "//@version\nindicator(\"x\")", want: "Could not determine Pine Script version", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ST01")
			if tt.noDiags {
				assert.Empty(t, diags)
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, tt.want, diags[0].Message)
			assert.Equal(t, tt.line, diags[0].Line)
			assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
		})
	}
}

func TestST01_DirectiveNotFirst(t *testing.T) {
	diags := runRule(t, "indicator(\"x\")\n//@version=3", "ST01")

	require.Len(t, diags, 2)
	assert.Equal(t, "File should start with //@version directive", diags[0].Message)
	assert.Contains(t, diags[1].Message, "version 3 is outdated")
	assert.Equal(t, 2, diags[1].Line)
}

func TestST01_RangeOptions(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("ST01", map[string]any{"min_version": 6})

	diags := runRuleWith(t, cfg, "//@version=5\nindicator(\"x\")", "ST01")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "outdated")
}

func TestST02_Declaration(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"indicator", "//@version=6\nindicator(\"x\")", 0},
		{"strategy with space", "//@version=6\nstrategy (\"x\")", 0},
		{"declaration anywhere", "x = 1\n// indicator(", 0},
		{"absent", "//@version=6\nplot(close)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ST02")
			require.Len(t, diags, tt.count)
			if tt.count > 0 {
				assert.Equal(t, "No indicator or strategy declaration found", diags[0].Message)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			}
		})
	}
}

func TestST03_BlockComment(t *testing.T) {
	t.Run("single error for both markers", func(t *testing.T) {
		diags := runRule(t, "//@version=6\n/* note */\nindicator(\"x\")", "ST03")
		require.Len(t, diags, 1)
		assert.Equal(t, 2, diags[0].Line)
		assert.Equal(t, lint.SeverityError, diags[0].Severity)
	})

	t.Run("stray closer", func(t *testing.T) {
		diags := runRule(t, "a = 1\nb = 2 */", "ST03")
		require.Len(t, diags, 1)
		assert.Equal(t, 2, diags[0].Line)
	})

	t.Run("line comments only", func(t *testing.T) {
		assert.Empty(t, runRule(t, "// note\na = 1 // trailing", "ST03"))
	})
}

func TestST04_MultilineArray(t *testing.T) {
	t.Run("options broken across lines", func(t *testing.T) {
		text := "//@version=6\nmode = input.string(\"A\", options=[\"A\",\n    \"B\"])"
		diags := runRule(t, text, "ST04")
		require.Len(t, diags, 1)
		assert.Equal(t, 2, diags[0].Line)
		assert.Contains(t, diags[0].Message, "Multiline array in function call detected")
	})

	t.Run("single line options", func(t *testing.T) {
		assert.Empty(t, runRule(t, "mode = input.string(\"A\", options=[\"A\", \"B\"])", "ST04"))
	})

	t.Run("configured params", func(t *testing.T) {
		cfg := lint.NewConfig().SetRuleOptions("ST04", map[string]any{"params": []any{"values"}})
		text := "x = f(values = [1,\n 2])\ny = g(options=[1,\n 2])"
		diags := runRuleWith(t, cfg, text, "ST04")
		require.Len(t, diags, 1)
		assert.Equal(t, 1, diags[0].Line)
	})
}

func TestST05_ComplexCall(t *testing.T) {
	t.Run("three line call", func(t *testing.T) {
		diags := runRule(t, "x = 1\nplot(close,\n  title=\"c\",\n  color=color.red)", "ST05")
		require.Len(t, diags, 1)
		assert.Equal(t, 2, diags[0].Line)
		assert.Equal(t, "Complex multiline function call detected - verify syntax carefully", diags[0].Message)
	})

	t.Run("single line calls", func(t *testing.T) {
		assert.Empty(t, runRule(t, "plot(close)\nplot(open)", "ST05"))
	})
}

func TestST06_Ternary(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []int
	}{
		{"completed on next line", "c = up ?\n  color.green : color.red", nil},
		{"chained on next line", "c = a ?\n  b ? x : y : z", nil},
		{"not completed", "c = up ?\n  color.green", []int{1}},
		{"last line", "x = 1\nc = up ?", []int{2}},
		{"comment line", "// is this ok ?\nplot(close)", []int{1}},
		{"comment completed below", "// up ?\n// green : red", nil},
		{"last line with trailing newline", "c = up ?\n", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ST06")
			require.Len(t, diags, len(tt.lines))
			for i, line := range tt.lines {
				assert.Equal(t, line, diags[i].Line)
				assert.Equal(t, lint.SeverityError, diags[i].Severity)
			}
		})
	}
}

func TestST07_IncompleteCall(t *testing.T) {
	diags := runRule(t, "plot(close,\n  color=color.red)\nplot(open)\n// f(", "ST07")

	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, lint.SeverityInfo, diags[0].Severity)
}

func TestST07_HiddenByDefault(t *testing.T) {
	report := lint.NewAnalyzer(nil).Analyze(source.New("test.pine", "plot(close,\n  color=color.red)"))

	for _, d := range report.Diagnostics() {
		assert.NotEqual(t, "ST07", d.RuleID)
	}
}

func TestST08_ElementAssignment(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []int
	}{
		{"index assignment", "levels = array.new_float(3)\nlevels[i] = close", []int{2}},
		{"spaced subscript", "buf[ 0 ] = 1", []int{1}},
		{"history comparison", "if close[1] == open\n    x := 1", nil},
		{"history read", "prev = close[1]", nil},
		{"array.set", "array.set(levels, i, close)", nil},
		{"comment", "// levels[i] = close", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "ST08")
			require.Len(t, diags, len(tt.lines))
			for i, line := range tt.lines {
				assert.Equal(t, line, diags[i].Line)
				assert.Equal(t, "Array access syntax detected - ensure proper array operations", diags[i].Message)
				assert.Equal(t, lint.SeverityWarning, diags[i].Severity)
			}
		})
	}
}
