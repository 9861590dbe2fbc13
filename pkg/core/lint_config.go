package core

// LintConfig holds lint rule configuration as read from pinelint.yaml.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`

	// RulesDir is a directory of Starlark (*.star) custom rules
	RulesDir string `koanf:"rules_dir"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any
