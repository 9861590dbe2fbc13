package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a lint diagnostic.
// Lower values are more severe.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError marks a defect that fails the check.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render by name
// in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = sev
	return nil
}

// AtLeast reports whether s is as severe as, or more severe than, min.
func (s Severity) AtLeast(minSeverity Severity) bool {
	return s <= minSeverity
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Group           string   `json:"group" yaml:"group"`
	Description     string   `json:"description" yaml:"description"`
	DefaultSeverity Severity `json:"default_severity" yaml:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
	Custom          bool     `json:"custom,omitempty" yaml:"custom,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty" yaml:"fix,omitempty"`
}
