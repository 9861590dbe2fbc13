package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pinelint/internal/cli/config"
	"github.com/leapstack-labs/pinelint/internal/cli/output"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the configuration schema, mirroring
// internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: " + strings.Join(output.Modes, ", ")},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Debug logging on stderr"},
		{Name: "severity", Type: "string", Default: config.DefaultSeverity, Description: "Least severe level reported: error, warning, info, hint"},
		{Name: "jobs", Type: "int", Default: strconv.Itoa(config.DefaultJobs), Description: "Files checked concurrently"},
		{Name: "lint.disabled", Type: "[]string", Description: "Rule IDs to skip"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Per-rule severity overrides"},
		{Name: "lint.rules", Type: "map[string]map", Description: "Per-rule options, keyed by rule ID"},
		{Name: "lint.rules_dir", Type: "string", Description: "Directory of Starlark custom rules, relative to the config file"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "pinelint configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("pinelint reads `pinelint.yaml`, `pinelint.yml` or `.pinelint.yaml` from the " +
		"working directory or the nearest parent. Use `--config` to name a file explicitly.")

	w.Header(2, "Fields")
	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
	}
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# pinelint.yaml
output: auto
severity: warning
jobs: 4

lint:
  disabled: [LX07]
  severity:
    LX03: error
  rules:
    PF01:
      max_loops: 20
    DC02:
      identifiers: [minCycleLength, maxCycleLength]
  rules_dir: ./rules`)

	w.Header(2, "Environment Variables")
	w.Paragraph(fmt.Sprintf("Every field can be set with a %s variable. Nested keys use a double underscore:", InlineCode(config.EnvPrefix+"*")))
	w.CodeBlock("bash", `PINELINT_OUTPUT=json
PINELINT_LINT__RULES_DIR=./rules`)
	w.Paragraph("Precedence, highest first: flags, environment variables, config file, defaults.")

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
