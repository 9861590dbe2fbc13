package lint

import (
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/core"
)

// Config controls which rules are enabled, their severity and their options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any

	// MinSeverity drops diagnostics less severe than this from reports
	MinSeverity Severity
}

// NewConfig creates a default configuration with all rules enabled.
// Info and hint diagnostics are filtered out by default.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
		MinSeverity:       SeverityWarning,
	}
}

// FromLintConfig builds a Config from the file-level lint section.
// Unknown severity names are ignored.
func FromLintConfig(lc *core.LintConfig) *Config {
	cfg := NewConfig()
	if lc == nil {
		return cfg
	}
	for _, id := range lc.Disabled {
		cfg.Disable(strings.TrimSpace(id))
	}
	for id, sev := range lc.Severity {
		if s, ok := core.ParseSeverity(sev); ok {
			cfg.SetSeverity(id, s)
		}
	}
	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// SetMinSeverity sets the least severe level kept in reports.
func (c *Config) SetMinSeverity(sev Severity) *Config {
	c.MinSeverity = sev
	return c
}

// OnlyRules disables every registered rule whose ID is not in ids.
func (c *Config) OnlyRules(ids []string) *Config {
	if len(ids) == 0 {
		return c
	}
	enabled := make(map[string]bool, len(ids))
	for _, id := range ids {
		enabled[strings.TrimSpace(id)] = true
	}
	for _, rule := range GetAll() {
		if !enabled[rule.ID] {
			c.Disable(rule.ID)
		}
	}
	return c
}
