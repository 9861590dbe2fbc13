package lint

import "sync"

// Report collects the diagnostics produced for one document.
// Diagnostics are append-only and kept in detection order.
type Report struct {
	Path string

	mu    sync.Mutex
	diags []Diagnostic
}

// NewReport creates an empty report for the document at path.
func NewReport(path string) *Report {
	return &Report{Path: path}
}

// Add appends diagnostics. Safe for concurrent use.
func (r *Report) Add(diags ...Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, diags...)
}

// Diagnostics returns a copy of every diagnostic in detection order.
func (r *Report) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Errors returns the error diagnostics in detection order.
func (r *Report) Errors() []Diagnostic {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning diagnostics in detection order.
func (r *Report) Warnings() []Diagnostic {
	return r.bySeverity(SeverityWarning)
}

// Notes returns info and hint diagnostics in detection order.
func (r *Report) Notes() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Severity == SeverityInfo || d.Severity == SeverityHint {
			out = append(out, d)
		}
	}
	return out
}

// ErrorCount is exactly the number of error diagnostics.
func (r *Report) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount is the number of warning diagnostics.
func (r *Report) WarningCount() int {
	return r.count(SeverityWarning)
}

// Passed reports whether the document has no errors. Warnings never fail a check.
func (r *Report) Passed() bool {
	return r.ErrorCount() == 0
}

// Empty reports whether the report holds no diagnostics at all.
func (r *Report) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags) == 0
}

// Filter returns a new report keeping only diagnostics at least as severe as min.
func (r *Report) Filter(minSeverity Severity) *Report {
	out := NewReport(r.Path)
	for _, d := range r.Diagnostics() {
		if d.Severity.AtLeast(minSeverity) {
			out.diags = append(out.diags, d)
		}
	}
	return out
}

func (r *Report) bySeverity(sev Severity) []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

func (r *Report) count(sev Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
