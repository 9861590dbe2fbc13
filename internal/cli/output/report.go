package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/leapstack-labs/pinelint/pkg/lint"
)

// FileResult is the outcome of checking one file. Report is nil when the
// file could not be loaded, in which case Err is set.
type FileResult struct {
	Path   string
	Report *lint.Report
	Err    error
}

// Passed reports whether the file loaded and produced no errors.
func (f FileResult) Passed() bool {
	return f.Err == nil && f.Report != nil && f.Report.Passed()
}

func (f FileResult) counts() (errs, warns int) {
	if f.Report == nil {
		return 0, 0
	}
	return f.Report.ErrorCount(), f.Report.WarningCount()
}

// CheckOutput is the machine-readable form of a check run.
type CheckOutput struct {
	RunID    string      `json:"run_id" yaml:"run_id"`
	Passed   bool        `json:"passed" yaml:"passed"`
	Errors   int         `json:"errors" yaml:"errors"`
	Warnings int         `json:"warnings" yaml:"warnings"`
	Files    []CheckFile `json:"files" yaml:"files"`
}

// CheckFile is one file in CheckOutput.
type CheckFile struct {
	Path        string            `json:"path" yaml:"path"`
	Passed      bool              `json:"passed" yaml:"passed"`
	Errors      int               `json:"errors" yaml:"errors"`
	Warnings    int               `json:"warnings" yaml:"warnings"`
	LoadError   string            `json:"load_error,omitempty" yaml:"load_error,omitempty"`
	Diagnostics []lint.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// NewCheckOutput builds the machine-readable summary with a fresh run ID.
func NewCheckOutput(results []FileResult) CheckOutput {
	out := CheckOutput{
		RunID:  uuid.NewString(),
		Passed: true,
		Files:  make([]CheckFile, 0, len(results)),
	}
	for _, res := range results {
		errs, warns := res.counts()
		file := CheckFile{
			Path:        res.Path,
			Passed:      res.Passed(),
			Errors:      errs,
			Warnings:    warns,
			Diagnostics: []lint.Diagnostic{},
		}
		if res.Err != nil {
			file.LoadError = res.Err.Error()
		}
		if res.Report != nil {
			file.Diagnostics = res.Report.Diagnostics()
		}
		out.Errors += errs
		out.Warnings += warns
		out.Passed = out.Passed && file.Passed
		out.Files = append(out.Files, file)
	}
	return out
}

// CheckResults renders the results of a check run in the current mode.
func (r *Renderer) CheckResults(results []FileResult) error {
	if r.IsMachine() {
		return r.Machine(NewCheckOutput(results))
	}

	markdown := r.EffectiveMode() == ModeMarkdown
	for i, res := range results {
		if i > 0 {
			r.Println("")
		}
		if markdown {
			r.renderFileMarkdown(res)
		} else {
			r.renderFileText(res)
		}
	}

	if len(results) > 1 {
		r.renderTotals(results)
	}
	return nil
}

func (r *Renderer) renderFileText(res FileResult) {
	s := r.styles
	r.Println(s.Muted.Render("Checking ") + s.Path.Render(res.Path) + s.Muted.Render("..."))

	if res.Err != nil {
		r.Println(s.Error.Render(loadErrorLine(res.Err)))
		r.Println("")
		r.Println(s.Error.Render("Syntax check failed! (file could not be read)"))
		return
	}

	rep := res.Report
	if rep.Empty() {
		r.Println(s.Success.Render("No issues found"))
	}
	r.textBlock("ERRORS", rep.Errors(), s.Error)
	r.textBlock("WARNINGS", rep.Warnings(), s.Warning)
	r.textBlock("NOTES", rep.Notes(), s.Info)

	r.Println("")
	if rep.Passed() {
		r.Println(s.Success.Render(passedLine(rep)))
	} else {
		r.Println(s.Error.Render(failedLine(rep)))
	}
}

func (r *Renderer) textBlock(title string, diags []lint.Diagnostic, style lipgloss.Style) {
	if len(diags) == 0 {
		return
	}
	r.Println("")
	r.Println(style.Render(fmt.Sprintf("%s (%d):", title, len(diags))))
	for _, d := range diags {
		r.Printf("  %s %s\n", diagnosticLine(d), r.styles.Muted.Render("["+d.RuleID+"]"))
	}
}

func (r *Renderer) renderFileMarkdown(res FileResult) {
	r.Printf("## %s\n\n", res.Path)

	if res.Err != nil {
		r.Printf("**%s**\n\n", loadErrorLine(res.Err))
		r.Println("Syntax check failed! (file could not be read)")
		return
	}

	rep := res.Report
	if rep.Empty() {
		r.Println("No issues found")
		r.Println("")
	}
	r.markdownBlock("ERRORS", rep.Errors())
	r.markdownBlock("WARNINGS", rep.Warnings())
	r.markdownBlock("NOTES", rep.Notes())

	if rep.Passed() {
		r.Println(passedLine(rep))
	} else {
		r.Println(failedLine(rep))
	}
}

func (r *Renderer) markdownBlock(title string, diags []lint.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.Printf("### %s (%d)\n\n", title, len(diags))
	for _, d := range diags {
		r.Printf("- %s `%s`\n", diagnosticLine(d), d.RuleID)
	}
	r.Println("")
}

func (r *Renderer) renderTotals(results []FileResult) {
	var errs, warns, failed int
	for _, res := range results {
		e, w := res.counts()
		errs += e
		warns += w
		if !res.Passed() {
			failed++
		}
	}

	line := fmt.Sprintf("Checked %d files: %d failed (%d errors, %d warnings)", len(results), failed, errs, warns)
	r.Println("")
	switch {
	case r.EffectiveMode() == ModeMarkdown:
		r.Println("**" + line + "**")
	case failed > 0:
		r.Println(r.styles.Error.Render(line))
	default:
		r.Println(r.styles.Success.Render(line))
	}
}

// diagnosticLine formats a finding as "Line N: message", or just the
// message when it has no line.
func diagnosticLine(d lint.Diagnostic) string {
	if d.Line > 0 {
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

func passedLine(rep *lint.Report) string {
	return fmt.Sprintf("Syntax check passed! (%d warnings)", rep.WarningCount())
}

func failedLine(rep *lint.Report) string {
	return fmt.Sprintf("Syntax check failed! (%d errors, %d warnings)", rep.ErrorCount(), rep.WarningCount())
}

func loadErrorLine(err error) string {
	return "Cannot check file: " + strings.TrimSpace(err.Error())
}
