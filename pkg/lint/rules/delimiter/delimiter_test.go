package delimiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/lint/rules/delimiter"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

// Helper to run analysis and filter by rule ID
func runRule(t *testing.T, text string, ruleID string) []lint.Diagnostic {
	t.Helper()
	doc := source.New("test.pine", text)

	report := lint.NewAnalyzer(lint.NewConfig()).Analyze(doc)

	var filtered []lint.Diagnostic
	for _, d := range report.Diagnostics() {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestBR01_Balanced(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single call", "plot(close)"},
		{"nested", "x = math.max(a[1], f({b: (c)}))"},
		{"across lines", "plot(close,\n  color=color.new(color.red, 50))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, runRule(t, tt.text, "BR01"))
		})
	}
}

func TestBR01_UnexpectedClosing(t *testing.T) {
	diags := runRule(t, "//@version=6\nfoo(a))", "BR01")

	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "Unexpected closing bracket")
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
}

func TestBR01_UnexpectedClosingContinuesScan(t *testing.T) {
	diags := runRule(t, ")\n]\nfoo(", "BR01")

	require.Len(t, diags, 3)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 2, diags[1].Line)
	assert.Contains(t, diags[2].Message, "Unclosed bracket")
	assert.Equal(t, 3, diags[2].Line)
}

func TestBR01_Unclosed(t *testing.T) {
	diags := runRule(t, "foo(a", "BR01")

	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Contains(t, diags[0].Message, "Unclosed bracket '('")
}

func TestBR01_UnclosedReportsTopOfStackOnly(t *testing.T) {
	diags := runRule(t, "a = f(\nb = g[\n", "BR01")

	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "'['")
}

func TestBR01_Mismatched(t *testing.T) {
	diags := runRule(t, "x = f(a,\n  b]", "BR01")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Mismatched brackets")
	assert.Contains(t, diags[0].Message, "line 1")
	assert.Contains(t, diags[0].Message, "line 2")
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, 1, diags[0].RelatedLine)
}

func TestBR01_CountsDelimitersInComments(t *testing.T) {
	// Comments and strings are not excluded from bracket matching.
	diags := runRule(t, "// note (\nplot(close)", "BR01")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Unclosed bracket")
}

func TestBR02_MultilineCall(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMsgs []string
	}{
		{
			name: "closed multiline call",
			text: "plot(close,\n  title=\"x\")",
		},
		{
			name:     "unclosed call",
			text:     "foo(a",
			wantMsgs: []string{"Unclosed parenthesis"},
		},
		{
			name:     "extra closing parenthesis",
			text:     "x = a)\ny = (b)",
			wantMsgs: []string{"Extra closing parenthesis"},
		},
		{
			name: "comment lines are skipped",
			text: "// plot(\nx = 1",
		},
		{
			name:     "recovers after extra parenthesis",
			text:     "f(a))\ng(b",
			wantMsgs: []string{"Extra closing parenthesis", "Unclosed parenthesis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.text, "BR02")
			require.Len(t, diags, len(tt.wantMsgs))
			for i, msg := range tt.wantMsgs {
				assert.Contains(t, diags[i].Message, msg)
			}
		})
	}
}

func TestBR02_UnclosedReferencesCallStart(t *testing.T) {
	diags := runRule(t, "x = 1\nplot(close,\n  color=color.red\n", "BR02")

	require.Len(t, diags, 1)
	assert.Equal(t, 4, diags[0].Line, "reported at the last line")
	assert.Equal(t, 2, diags[0].RelatedLine)
	assert.Contains(t, diags[0].Message, "around line 2")
}

func TestBR01AndBR02_BothFireOnUnclosedParen(t *testing.T) {
	assert.Len(t, runRule(t, "foo(a", "BR01"), 1)
	assert.Len(t, runRule(t, "foo(a", "BR02"), 1)
}

func TestCallScan_Step(t *testing.T) {
	var s delimiter.CallScan

	s, d := s.Step('(', 3)
	assert.Nil(t, d)
	assert.Equal(t, delimiter.CallScan{Depth: 1, InCall: true, StartLine: 3}, s)

	s, d = s.Step('(', 4)
	assert.Nil(t, d)
	assert.Equal(t, 3, s.StartLine, "nested paren keeps the call start")

	s, _ = s.Step(')', 4)
	s, d = s.Step(')', 5)
	assert.Nil(t, d)
	assert.False(t, s.InCall)
	assert.Equal(t, 0, s.Depth)

	s, d = s.Step(')', 6)
	require.NotNil(t, d)
	assert.Equal(t, 6, d.Line)
	assert.Equal(t, delimiter.CallScan{StartLine: 3}, s, "depth and in-call reset")

	assert.Nil(t, s.Finish(10))
}
