package lint

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Counts(t *testing.T) {
	r := NewReport("a.pine")
	r.Add(
		Diagnostic{RuleID: "W1", Severity: SeverityWarning},
		Diagnostic{RuleID: "E1", Severity: SeverityError},
		Diagnostic{RuleID: "I1", Severity: SeverityInfo},
		Diagnostic{RuleID: "E2", Severity: SeverityError},
	)

	assert.Equal(t, 2, r.ErrorCount())
	assert.Equal(t, 1, r.WarningCount())
	assert.False(t, r.Passed())
	assert.False(t, r.Empty())

	var errs []string
	for _, d := range r.Errors() {
		errs = append(errs, d.RuleID)
	}
	assert.Equal(t, []string{"E1", "E2"}, errs)
	require.Len(t, r.Notes(), 1)
	assert.Equal(t, "I1", r.Notes()[0].RuleID)
}

func TestReport_WarningsDoNotFail(t *testing.T) {
	r := NewReport("a.pine")
	r.Add(Diagnostic{Severity: SeverityWarning})

	assert.True(t, r.Passed())
}

func TestReport_DiagnosticsIsCopy(t *testing.T) {
	r := NewReport("a.pine")
	r.Add(Diagnostic{Message: "original"})

	got := r.Diagnostics()
	got[0].Message = "changed"

	assert.Equal(t, "original", r.Diagnostics()[0].Message)
}

func TestReport_Filter(t *testing.T) {
	r := NewReport("a.pine")
	r.Add(
		Diagnostic{RuleID: "H", Severity: SeverityHint},
		Diagnostic{RuleID: "E", Severity: SeverityError},
		Diagnostic{RuleID: "I", Severity: SeverityInfo},
		Diagnostic{RuleID: "W", Severity: SeverityWarning},
	)

	tests := []struct {
		min  Severity
		want []string
	}{
		{SeverityError, []string{"E"}},
		{SeverityWarning, []string{"E", "W"}},
		{SeverityInfo, []string{"E", "I", "W"}},
		{SeverityHint, []string{"H", "E", "I", "W"}},
	}

	for _, tt := range tests {
		t.Run(tt.min.String(), func(t *testing.T) {
			filtered := r.Filter(tt.min)
			var ids []string
			for _, d := range filtered.Diagnostics() {
				ids = append(ids, d.RuleID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, "a.pine", filtered.Path)
		})
	}
}

func TestReport_ConcurrentAdd(t *testing.T) {
	r := NewReport("a.pine")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Add(Diagnostic{Severity: SeverityError})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, r.ErrorCount())
}
