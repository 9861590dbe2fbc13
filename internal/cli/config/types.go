// Package config provides configuration management for the pinelint CLI.
//
// The lint section type lives in pkg/core so library users can build a
// lint.Config from it; it is re-exported here as an alias.
package config

import "github.com/leapstack-labs/pinelint/pkg/core"

// LintConfig is an alias for the shared lint configuration.
// This allows CLI code to use config.LintConfig without importing pkg/core.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Severity     string      `koanf:"severity"` // Minimum severity reported
	Jobs         int         `koanf:"jobs"`     // Files checked concurrently
	Lint         *LintConfig `koanf:"lint"`

	// ConfigDir is the directory of the config file in use, or the working
	// directory when no file was found. Relative paths resolve against it.
	ConfigDir string `koanf:"-"`
}

// RulesDir returns the custom rules directory, or "" when none is configured.
func (c *Config) RulesDir() string {
	if c == nil || c.Lint == nil {
		return ""
	}
	return c.Lint.RulesDir
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultSeverity = "warning"
	DefaultJobs     = 4
	EnvPrefix       = "PINELINT_"
)

// configFileNames are searched in order in each directory.
var configFileNames = []string{"pinelint.yaml", "pinelint.yml", ".pinelint.yaml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Severity:     DefaultSeverity,
		Jobs:         DefaultJobs,
		Lint:         &LintConfig{},
	}
}
