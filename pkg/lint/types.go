package lint

import (
	"github.com/leapstack-labs/pinelint/pkg/core"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

// Severity is re-exported so rule packages only import lint.
type Severity = core.Severity

// Severity levels, re-exported from core.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "BR01"
	Name        string        // Human-readable name, e.g., "delimiter.balance"
	Group       string        // Category, e.g., "delimiter", "structure", "lexical"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts
	Custom      bool          // Loaded from a user script rather than compiled in

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a document and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(doc *source.Document, opts map[string]any) []Diagnostic

// Info extracts metadata for documentation/tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Custom:          r.Custom,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string        `json:"rule_id" yaml:"rule_id"`
	Group    string        `json:"group" yaml:"group"`
	Severity core.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`

	// Line is 1-based; 0 means the finding is about the whole document.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// RelatedLine is a second position, e.g. where a bracket was opened.
	RelatedLine int `json:"related_line,omitempty" yaml:"related_line,omitempty"`
}

// IsError reports whether the diagnostic fails the check.
func (d Diagnostic) IsError() bool {
	return d.Severity == core.SeverityError
}
