package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

const wellFormed = `//@version=6
indicator("Cycles", overlay=true)
len = input.int(14, "Length")
y = math.sin(bar_index / len)
plot(y)
`

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, 0, len(diags))
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	return ids
}

func TestAnalyzer_WellFormedPasses(t *testing.T) {
	report := lint.NewAnalyzer(nil).Analyze(source.New("ok.pine", wellFormed))

	assert.Zero(t, report.ErrorCount())
	assert.True(t, report.Passed())
	assert.Equal(t, "ok.pine", report.Path)
}

func TestAnalyzer_BlockCommentAndUnclosedParen(t *testing.T) {
	text := "//@version=6\nindicator(\"x\")\n/* comment */\nplot(close"

	report := lint.NewAnalyzer(nil).Analyze(source.New("bad.pine", text))

	assert.GreaterOrEqual(t, report.ErrorCount(), 2)
	assert.False(t, report.Passed())

	ids := ruleIDs(report.Errors())
	assert.Contains(t, ids, "ST03")
	assert.Contains(t, ids, "BR01")
	assert.Contains(t, ids, "BR02")
}

func TestAnalyzer_DetectionOrderFollowsRuleIDs(t *testing.T) {
	text := "x = sin(1)\n/* c */\nvar int a = 1\nvar int a = 2\nfoo(a))"

	report := lint.NewAnalyzer(nil).Analyze(source.New("t.pine", text))

	ids := ruleIDs(report.Diagnostics())
	require.NotEmpty(t, ids)
	assert.IsNonDecreasing(t, ids)
}

func TestAnalyzer_StampsRuleAndGroup(t *testing.T) {
	report := lint.NewAnalyzer(nil).Analyze(source.New("t.pine", "y = sin(x)"))

	var found bool
	for _, d := range report.Diagnostics() {
		if d.RuleID == "LX03" {
			found = true
			assert.Equal(t, "lexical", d.Group)
			assert.Equal(t, 1, d.Line)
		}
	}
	assert.True(t, found)
}

func TestAnalyzer_MissingDeclaration(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig().OnlyRules([]string{"ST02"}))

	report := analyzer.Analyze(source.New("t.pine", "//@version=6\nplot(close)"))
	assert.Equal(t, 1, report.ErrorCount())

	report = analyzer.Analyze(source.New("t.pine", "//@version=6\nplot(close)\nindicator(\"x\")"))
	assert.Zero(t, report.ErrorCount())
}

func TestAnalyzer_VersionWarningsOnly(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig().OnlyRules([]string{"ST01"}))

	tests := []struct {
		name     string
		text     string
		warnings int
		contains string
	}{
		{"missing", "indicator(\"x\")", 1, "should start with"},
		{"outdated", "//@version=4\nindicator(\"x\")", 1, "outdated"},
		{"newer", "//@version=7\nindicator(\"x\")", 1, "newer than expected"},
		{"current", "//@version=6\nindicator(\"x\")", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := analyzer.Analyze(source.New("t.pine", tt.text))
			assert.Zero(t, report.ErrorCount())
			require.Equal(t, tt.warnings, report.WarningCount())
			if tt.contains != "" {
				assert.Contains(t, report.Warnings()[0].Message, tt.contains)
			}
		})
	}
}

func TestConfig_DisableRule(t *testing.T) {
	cfg := lint.NewConfig().Disable("BR01")

	report := lint.NewAnalyzer(cfg).Analyze(source.New("t.pine", "foo(a))"))

	assert.NotContains(t, ruleIDs(report.Diagnostics()), "BR01")
	assert.Contains(t, ruleIDs(report.Diagnostics()), "BR02")
}

func TestConfig_SeverityOverride(t *testing.T) {
	cfg := lint.NewConfig().OnlyRules([]string{"ST03"}).SetSeverity("ST03", lint.SeverityWarning)

	report := lint.NewAnalyzer(cfg).Analyze(source.New("t.pine", "/* c */"))

	require.Len(t, report.Diagnostics(), 1)
	assert.Equal(t, lint.SeverityWarning, report.Diagnostics()[0].Severity)
	assert.True(t, report.Passed())
}

func TestConfig_MinSeverityShowsInfo(t *testing.T) {
	text := "plot(close,\n  color=color.red)"

	hidden := lint.NewAnalyzer(nil).Analyze(source.New("t.pine", text))
	assert.NotContains(t, ruleIDs(hidden.Diagnostics()), "ST07")

	cfg := lint.NewConfig().SetMinSeverity(lint.SeverityInfo)
	shown := lint.NewAnalyzer(cfg).Analyze(source.New("t.pine", text))
	assert.Contains(t, ruleIDs(shown.Diagnostics()), "ST07")
	assert.NotEmpty(t, shown.Notes())
}

func TestAnalyzer_WithRules(t *testing.T) {
	extra := lint.RuleDef{
		ID:       "ZZ01",
		Group:    "custom",
		Severity: lint.SeverityError,
		Check: func(doc *source.Document, _ map[string]any) []lint.Diagnostic {
			return []lint.Diagnostic{{Severity: lint.SeverityError, Line: doc.LineCount(), Message: "custom"}}
		},
	}
	cfg := lint.NewConfig().OnlyRules([]string{"ST02"})

	report := lint.NewAnalyzer(cfg).WithRules(extra).Analyze(source.New("t.pine", "indicator(\"x\")\nplot(close)"))

	require.Len(t, report.Diagnostics(), 1)
	d := report.Diagnostics()[0]
	assert.Equal(t, "ZZ01", d.RuleID)
	assert.Equal(t, "custom", d.Group)
	assert.Equal(t, 2, d.Line)
}

func TestAnalyzer_RulesSkipsDisabled(t *testing.T) {
	all := lint.NewAnalyzer(nil).Rules()
	some := lint.NewAnalyzer(lint.NewConfig().Disable("LX01").Disable("LX02")).Rules()

	assert.Len(t, some, len(all)-2)
	for _, r := range some {
		assert.NotContains(t, []string{"LX01", "LX02"}, r.ID)
	}
}

func TestAnalyzer_NilDocument(t *testing.T) {
	report := lint.NewAnalyzer(nil).Analyze(nil)

	assert.True(t, report.Empty())
	assert.True(t, report.Passed())
}

func TestRegistry_Lookup(t *testing.T) {
	rule, ok := lint.GetByID("BR01")
	require.True(t, ok)
	assert.Equal(t, "delimiter.balance", rule.Name)
	assert.Equal(t, "delimiter", rule.Info().Group)

	_, ok = lint.GetByID("XX99")
	assert.False(t, ok)

	assert.Equal(t, []string{"BR01", "BR02"}, ruleIDsOf(lint.GetByGroup("delimiter")))
	assert.Equal(t, len(lint.GetAll()), lint.Count())
}

func TestRegistry_EveryRuleDocumented(t *testing.T) {
	for _, rule := range lint.GetAll() {
		t.Run(rule.ID, func(t *testing.T) {
			assert.NotEmpty(t, rule.Name)
			assert.NotEmpty(t, rule.Group)
			assert.NotEmpty(t, rule.Description)
			assert.NotNil(t, rule.Check)
		})
	}
}

func ruleIDsOf(rules []lint.RuleDef) []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}
