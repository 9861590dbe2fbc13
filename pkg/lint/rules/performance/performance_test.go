package performance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/performance"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func runRuleWith(t *testing.T, cfg *lint.Config, text string, ruleID string) []lint.Diagnostic {
	t.Helper()
	report := lint.NewAnalyzer(cfg).Analyze(source.New("test.pine", text))

	var filtered []lint.Diagnostic
	for _, d := range report.Diagnostics() {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func loops(n int) string {
	return strings.Repeat("for i = 0 to 3\n    x += i\n", n)
}

func conditionals(n int) string {
	return strings.Repeat("if (close > open)\n    x += 1\n", n)
}

func TestPF01_LoopVolume(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"at threshold", loops(10), 0},
		{"over threshold", loops(11), 1},
		{"none", "plot(close)", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRuleWith(t, lint.NewConfig(), tt.text, "PF01")
			require.Len(t, diags, tt.count)
		})
	}
}

func TestPF01_Message(t *testing.T) {
	diags := runRuleWith(t, lint.NewConfig(), loops(11), "PF01")

	require.Len(t, diags, 1)
	assert.Equal(t, "High number of loops detected (11) - monitor performance and consider optimization", diags[0].Message)
	assert.Zero(t, diags[0].Line)
}

func TestPF01_ConfiguredLimit(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("PF01", map[string]any{"max_loops": 2})

	assert.Len(t, runRuleWith(t, cfg, loops(3), "PF01"), 1)
}

func TestPF02_Complexity(t *testing.T) {
	t.Run("loops over the lower threshold", func(t *testing.T) {
		diags := runRuleWith(t, lint.NewConfig(), loops(6), "PF02")
		require.Len(t, diags, 1)
		assert.Equal(t, "High number of loops detected (6) - monitor performance", diags[0].Message)
	})

	t.Run("many conditionals", func(t *testing.T) {
		diags := runRuleWith(t, lint.NewConfig(), conditionals(11), "PF02")
		require.Len(t, diags, 1)
		assert.Equal(t, "High number of conditional statements - consider simplifying logic", diags[0].Message)
	})

	t.Run("both", func(t *testing.T) {
		assert.Len(t, runRuleWith(t, lint.NewConfig(), loops(6)+conditionals(11), "PF02"), 2)
	})

	t.Run("below thresholds", func(t *testing.T) {
		assert.Empty(t, runRuleWith(t, lint.NewConfig(), loops(5)+conditionals(10), "PF02"))
	})
}

func TestPF01_PF02_BothFire(t *testing.T) {
	report := lint.NewAnalyzer(nil).Analyze(source.New("test.pine", loops(11)))

	var ids []string
	for _, d := range report.Diagnostics() {
		if d.Group == "performance" {
			ids = append(ids, d.RuleID)
		}
	}
	assert.Equal(t, []string{"PF01", "PF02"}, ids)
}

func TestPF03_VariableBoundLoop(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []int
	}{
		{"variable bound", "x = 0\nfor i = 0 to lookback\n    x += i", []int{2}},
		{"literal bound", "for i = 0 to 10\n    x += i", nil},
		{"while", "while n < limit\n    n += 1", []int{1}},
		{"both forms", "for i = 1 to n\n    x += i\nwhile j < n\n    j += 1", []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRuleWith(t, lint.NewConfig(), tt.text, "PF03")
			var got []int
			for _, d := range diags {
				got = append(got, d.Line)
			}
			assert.Equal(t, tt.lines, got)
		})
	}
}

func TestPF04_Persistence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"varip", "varip int ticks = 0\nticks += 1", 1},
		{"var call", "x = var()", 1},
		{"plain var", "var float peak = na", 0},
		{"none", "x = close", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRuleWith(t, lint.NewConfig(), tt.text, "PF04")
			require.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Equal(t, "Using varip or var() for variable persistence - ensure proper scoping", diags[0].Message)
				assert.Zero(t, diags[0].Line)
			}
		})
	}
}
