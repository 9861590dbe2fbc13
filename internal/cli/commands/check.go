package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/pinelint/internal/cli/config"
	"github.com/leapstack-labs/pinelint/internal/cli/output"
	"github.com/leapstack-labs/pinelint/internal/customrules"
	"github.com/leapstack-labs/pinelint/pkg/core"
	"github.com/leapstack-labs/pinelint/pkg/lint"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules" // register built-in rules
	"github.com/leapstack-labs/pinelint/pkg/source"
)

// ErrLintFailed is returned when at least one file failed to load or
// produced an error diagnostic. The report has already been printed.
var ErrLintFailed = errors.New("syntax check failed")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output format: text, markdown, json, yaml
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only these rules
	Severity string   // Minimum severity: error, warning, info, hint
	Jobs     int      // Files checked concurrently
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check Pine Script files for syntax issues",
		Long: `Check Pine Script indicator files for structural and lexical defects.

Reports unbalanced brackets, unterminated multiline calls, unsupported syntax,
reserved-word misuse, missing math namespaces and use-before-declaration.
Exits non-zero when any file has an error; warnings never fail a check.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Check one script
  pinelint check indicator.pine

  # Check several scripts, four at a time
  pinelint check --jobs 4 scripts/*.pine

  # Output as JSON
  pinelint check --format json indicator.pine

  # Disable specific rules
  pinelint check --disable LX07,PF01 indicator.pine

  # Include info and hint findings
  pinelint check --severity hint indicator.pine`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCheck(cmd, args, opts)
		},
	}

	AddCheckFlags(cmd, opts)
	return cmd
}

// AddCheckFlags registers the check flags on cmd.
func AddCheckFlags(cmd *cobra.Command, opts *CheckOptions) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info, hint (default from config)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Files checked concurrently (default from config)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// RunCheck checks every path and renders the results in argument order.
func RunCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)

	analyzer, err := newAnalyzer(cmdCtx, opts)
	if err != nil {
		return err
	}

	results, err := checkFiles(cmd.Context(), analyzer, paths, jobsFor(cmdCtx.Cfg, opts), cmdCtx.Logger)
	if err != nil {
		return err
	}

	if err := cmdCtx.Renderer.CheckResults(results); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	for _, res := range results {
		if !res.Passed() {
			return ErrLintFailed
		}
	}
	return nil
}

// newAnalyzer builds an analyzer from config, flags and custom rules.
func newAnalyzer(cmdCtx *CommandContext, opts *CheckOptions) (*lint.Analyzer, error) {
	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return nil, err
	}

	custom, err := loadCustomRules(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	custom = onlyRules(custom, opts.Rules)

	return lint.NewAnalyzer(lintCfg).WithRules(custom...).WithLogger(cmdCtx.Logger), nil
}

func buildLintConfig(cfg *config.Config, opts *CheckOptions) (*lint.Config, error) {
	// Project config first (lower precedence)
	var lintCfg *lint.Config
	if cfg != nil {
		lintCfg = lint.FromLintConfig(cfg.Lint)
	} else {
		lintCfg = lint.NewConfig()
	}

	// CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	lintCfg.OnlyRules(opts.Rules)

	sevName := opts.Severity
	if sevName == "" && cfg != nil {
		sevName = cfg.Severity
	}
	if sevName != "" {
		sev, ok := core.ParseSeverity(sevName)
		if !ok {
			return nil, fmt.Errorf("invalid severity %q (expected error, warning, info or hint)", sevName)
		}
		lintCfg.SetMinSeverity(sev)
	}

	return lintCfg, nil
}

func loadCustomRules(cfg *config.Config, logger *slog.Logger) ([]lint.RuleDef, error) {
	dir := cfg.RulesDir()
	if dir == "" {
		return nil, nil
	}
	rules, err := customrules.NewLoader(dir, logger).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom rules: %w", err)
	}
	logger.Debug("custom rules loaded", "dir", dir, "count", len(rules))
	return rules, nil
}

// onlyRules keeps the rules named in ids; an empty ids keeps everything.
func onlyRules(rules []lint.RuleDef, ids []string) []lint.RuleDef {
	if len(ids) == 0 {
		return rules
	}
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[strings.TrimSpace(id)] = true
	}
	var out []lint.RuleDef
	for _, r := range rules {
		if keep[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func jobsFor(cfg *config.Config, opts *CheckOptions) int {
	if opts.Jobs > 0 {
		return opts.Jobs
	}
	if cfg != nil && cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return config.DefaultJobs
}

// checkFiles analyzes paths with at most jobs files in flight. Results keep
// the order of paths; load failures are recorded per file.
func checkFiles(ctx context.Context, analyzer *lint.Analyzer, paths []string, jobs int, logger *slog.Logger) ([]output.FileResult, error) {
	results := make([]output.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(analyzer, path, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(analyzer *lint.Analyzer, path string, logger *slog.Logger) output.FileResult {
	doc, err := source.Load(path)
	if err != nil {
		logger.Debug("file not checked", "path", path, "error", err)
		return output.FileResult{Path: path, Err: err}
	}

	report := analyzer.Analyze(doc)
	logger.Debug("file checked", "path", path,
		"errors", report.ErrorCount(), "warnings", report.WarningCount())
	return output.FileResult{Path: path, Report: report}
}
