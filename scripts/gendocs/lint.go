package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/core"
	"github.com/leapstack-labs/pinelint/pkg/lint"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules"
)

// groupOrder is the order rule groups appear in the reference.
var groupOrder = []struct {
	name        string
	prefix      string
	description string
}{
	{"delimiter", "BR", "Bracket and parenthesis balance, including calls wrapped over several lines."},
	{"structure", "ST", "Version directive, declaration statement and constructs the dialect does not support."},
	{"lexical", "LX", "Reserved words, type names, math namespaces and deprecated calls, checked line by line."},
	{"declaration", "DC", "Duplicate declarations and identifiers used before they are declared."},
	{"usage", "US", "Document-wide heuristics for API usage that tends to fail at runtime."},
	{"performance", "PF", "Loop and conditional counts, history references and persistence."},
}

// generateLintDocs generates the rule reference pages.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()

	if err := generateLintIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groupOrder {
		groupRules := lint.GetByGroup(group.name)
		if len(groupRules) == 0 {
			continue
		}
		if err := generateGroupPage(outDir, group.name, group.description, groupRules); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group.name)
	}

	return nil
}

// generateLintIndex generates the rules overview page.
func generateLintIndex(outDir string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Built-in pinelint rules")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("pinelint ships **%d built-in rules** in %d groups.", len(rules), len(groupOrder)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode(core.SeverityError.String()), "Fails the check; the script will not compile"},
			{InlineCode(core.SeverityWarning.String()), "Reported, never fails the check"},
			{InlineCode(core.SeverityInfo.String()), "Hidden unless `--severity info`"},
			{InlineCode(core.SeverityHint.String()), "Hidden unless `--severity hint`"},
		},
	)

	w.Header(2, "Groups")
	var rows [][]string
	for _, group := range groupOrder {
		link := fmt.Sprintf("[%s](/rules/%s)", capitalizeFirst(group.name), group.name)
		rows = append(rows, []string{link, InlineCode(group.prefix), group.description})
	}
	w.Table([]string{"Group", "Prefix", "Description"}, rows)

	w.Header(2, "All Rules")
	rows = nil
	for _, rule := range rules {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/rules/%s#%s)", rule.ID, rule.Group, rule.ID),
			InlineCode(rule.Name),
			InlineCode(rule.Severity.String()),
		})
	}
	w.Table([]string{"ID", "Name", "Severity"}, rows)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are configured in the `lint` section of `pinelint.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [LX07]         # skip rules
  severity:
    LX03: error            # override severity
  rules:
    PF01:
      max_loops: 20        # rule-specific option
  rules_dir: ./rules       # Starlark custom rules`)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateGroupPage generates the page for one rule group.
func generateGroupPage(outDir, group, description string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	title := capitalizeFirst(group) + " Rules"
	w.Frontmatter(title, description)
	w.GeneratedMarker()

	w.Header(1, title)
	w.Paragraph(description)

	for _, rule := range rules {
		writeRuleDoc(w, rule.Info())
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	// Rule header with anchor: ### BR01 - delimiter.balance {#BR01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("pine", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("pine", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}

	if len(rule.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}

	w.Line("---")
	w.Newline()
}
