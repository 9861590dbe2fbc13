package lint

import (
	"log/slog"

	"github.com/leapstack-labs/pinelint/pkg/source"
)

// Analyzer runs lint rules against a source document.
type Analyzer struct {
	config *Config
	extra  []RuleDef
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithRules adds rules that are not in the global registry, such as
// user-supplied custom rules. They run after the registered rules.
func (a *Analyzer) WithRules(rules ...RuleDef) *Analyzer {
	a.extra = append(a.extra, rules...)
	return a
}

// WithLogger sets the logger used for rule-level debug output.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Rules returns the rules the analyzer will run, in execution order.
func (a *Analyzer) Rules() []RuleDef {
	rules := GetAll()
	rules = append(rules, a.extra...)

	enabled := rules[:0]
	for _, rule := range rules {
		if a.config.IsDisabled(rule.ID) || rule.Check == nil {
			continue
		}
		enabled = append(enabled, rule)
	}
	return enabled
}

// Analyze runs every enabled rule over doc and returns the filtered report.
// Every rule runs to completion regardless of what earlier rules found.
func (a *Analyzer) Analyze(doc *source.Document) *Report {
	report := NewReport("")
	if doc == nil {
		return report
	}
	report.Path = doc.Path

	for _, rule := range a.Rules() {
		diags := rule.Check(doc, a.config.GetRuleOptions(rule.ID))
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Group = rule.Group
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}
		if len(diags) > 0 {
			a.logger.Debug("rule reported", "rule", rule.ID, "path", doc.Path, "count", len(diags))
		}
		report.Add(diags...)
	}

	return report.Filter(a.config.MinSeverity)
}
