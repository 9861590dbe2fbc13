package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/pinelint/internal/cli/output"
	"github.com/leapstack-labs/pinelint/pkg/core"
	"github.com/leapstack-labs/pinelint/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (delimiter, structure, lexical, usage,
performance, declaration). Custom rules from the configured rules
directory are listed under "custom".
Use --verbose to see full documentation including examples.`,
		Example: `  # List all rules
  pinelint rules

  # Show details for a specific rule
  pinelint rules BR01

  # List rules in the lexical group
  pinelint rules --group lexical

  # Output as JSON
  pinelint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// allRuleInfo returns built-in and custom rules sorted by group, then ID.
func allRuleInfo(cmdCtx *CommandContext) ([]core.RuleInfo, error) {
	defs := lint.GetAll()
	custom, err := loadCustomRules(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	defs = append(defs, custom...)

	infos := make([]core.RuleInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, d.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	rules, err := allRuleInfo(cmdCtx)
	if err != nil {
		return err
	}
	rules = filterRulesByGroup(rules, opts.Group)

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Machine(RulesOutput{Rules: rules, Count: len(rules)})
	case output.ModeMarkdown:
		listRulesMarkdown(r, rules, opts.Verbose)
	default:
		listRulesText(r, rules, opts.Verbose)
	}
	return nil
}

func filterRulesByGroup(rules []core.RuleInfo, group string) []core.RuleInfo {
	if group == "" {
		return rules
	}
	var filtered []core.RuleInfo
	for _, r := range rules {
		if strings.EqualFold(r.Group, group) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	rules, err := allRuleInfo(cmdCtx)
	if err != nil {
		return err
	}

	var rule *core.RuleInfo
	for i := range rules {
		if strings.EqualFold(rules[i].ID, ruleID) {
			rule = &rules[i]
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Machine(rule)
	case output.ModeMarkdown:
		showRuleMarkdown(r, rule)
	default:
		showRuleText(r, rule)
	}
	return nil
}

// RulesOutput is the machine-readable rules listing.
type RulesOutput struct {
	Rules []core.RuleInfo `json:"rules" yaml:"rules"`
	Count int             `json:"count" yaml:"count"`
}

var groupTitle = cases.Title(language.English)

// listRulesText renders one go-pretty table per group.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))

	for _, group := range groupRules(rules) {
		r.Println("")
		r.Println(styles.Header2.Render(groupTitle.String(group.name)))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		header := table.Row{"ID", "Name", "Severity"}
		if verbose {
			header = append(header, "Description")
		}
		t.AppendHeader(header)

		for _, rule := range group.rules {
			row := table.Row{
				rule.ID,
				rule.Name,
				severityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
			}
			if verbose {
				row = append(row, rule.Description)
			}
			t.AppendRow(row)
		}
		t.Render()
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'pinelint rules <rule-id>' for detailed documentation"))
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) {
	r.Println("# Lint Rules")

	for _, group := range groupRules(rules) {
		r.Println("")
		r.Println("## " + groupTitle.String(group.name))
		r.Println("")
		for _, rule := range group.rules {
			r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.DefaultSeverity.String())
			if verbose {
				r.Println("  " + rule.Description)
				if rule.Rationale != "" {
					r.Println("  > " + rule.Rationale)
				}
			}
		}
	}
	r.Println("")
}

type ruleGroup struct {
	name  string
	rules []core.RuleInfo
}

// groupRules splits rules already sorted by group into runs.
func groupRules(rules []core.RuleInfo) []ruleGroup {
	var groups []ruleGroup
	for _, rule := range rules {
		if len(groups) == 0 || groups[len(groups)-1].name != rule.Group {
			groups = append(groups, ruleGroup{name: rule.Group})
		}
		last := &groups[len(groups)-1]
		last.rules = append(last.rules, rule)
	}
	return groups
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *core.RuleInfo) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	if rule.Custom {
		r.Printf("  %s: %s\n", styles.Bold.Render("Source"), "custom rule script")
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.DefaultSeverity.String())
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```pine")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```pine")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
		r.Println("")
	}
}

func severityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}
