package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/pinelint/internal/cli"
	"github.com/leapstack-labs/pinelint/internal/cli/output"
	"github.com/leapstack-labs/pinelint/pkg/lint"
)

// modeDescriptions explains each report format accepted by --output and --format.
var modeDescriptions = map[string]string{
	string(output.ModeAuto):     "Styled text on a terminal, markdown when piped",
	string(output.ModeText):     "Styled text with ERRORS, WARNINGS and NOTES blocks",
	string(output.ModeMarkdown): "One section per file, for pull request comments",
	string(output.ModeJSON):     "Machine-readable report with a run_id",
	string(output.ModeYAML):     "The JSON report as YAML",
}

// generateCLIDocs writes an overview page and one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range documentedCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}
	return writePages(outDir, pages)
}

// writePages writes every page into outDir in name order.
func writePages(outDir string, pages map[string][]byte) error {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for pinelint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("pinelint checks Pine Script files from the command line, once or on every save.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/pinelint/cmd/pinelint@latest")

	w.Header(2, "Usage")
	w.CodeBlock("bash", root.UseLine()+"\npinelint <command> [flags]")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, root.PersistentFlags())

	w.Header(2, "Checking a Single File")
	w.Paragraph(fmt.Sprintf("%s takes the same options as %s:", InlineCode("pinelint <file>"), Bold("check")))
	writeFlagsTable(w, root.LocalNonPersistentFlags())

	writeOutputModes(w)
	writeExitCodes(w)

	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(strings.TrimSpace(cmd.Long))
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	// Commands that select rules list the IDs --rule and --disable accept.
	if cmd.LocalFlags().Lookup("rule") != nil {
		writeRuleSelection(w)
	}
	if cmd.LocalFlags().Lookup("format") != nil {
		writeOutputModes(w)
	}

	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w.Bytes()
}

func writeRuleSelection(w *MarkdownWriter) {
	w.Header(2, "Rule Selection")
	w.Paragraph(fmt.Sprintf("%s and %s take comma-separated rule IDs. Built-in IDs by group:",
		InlineCode("--rule"), InlineCode("--disable")))

	var rows [][]string
	for _, group := range groupOrder {
		var ids []string
		for _, rule := range lint.GetByGroup(group.name) {
			ids = append(ids, InlineCode(rule.ID))
		}
		if len(ids) == 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/rules/%s)", capitalizeFirst(group.name), group.name),
			strings.Join(ids, " "),
		})
	}
	w.Table([]string{"Group", "Rules"}, rows)
	w.Paragraph("Custom rules loaded from " + InlineCode("--rules-dir") + " are selected the same way.")
}

func writeOutputModes(w *MarkdownWriter) {
	w.Header(2, "Output Formats")
	var rows [][]string
	for _, mode := range output.Modes {
		rows = append(rows, []string{InlineCode(mode), modeDescriptions[mode]})
	}
	w.Table([]string{"Format", "Description"}, rows)
}

func writeExitCodes(w *MarkdownWriter) {
	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Every file loaded and none had an error"},
		{InlineCode("1"), "A file could not be read, had an error, or the command failed"},
	})
}

// writeFlagsTable writes one row per visible flag.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	w.Table([]string{"Option", "Type", "Default", "Description"}, flagRows(flags))
}

func flagRows(flags *pflag.FlagSet) [][]string {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		option := "--" + f.Name
		if f.Shorthand != "" {
			option = "-" + f.Shorthand + ", " + option
		}
		def := "-"
		switch {
		case f.DefValue == "" || f.DefValue == "[]":
		case f.Value.Type() == "int" && f.DefValue == "0":
		default:
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{InlineCode(option), f.Value.Type(), def, cleanDescription(f.Usage)})
	})
	return rows
}

// dedent strips the indentation shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, line := range lines {
			if len(line) >= indent {
				lines[i] = line[indent:]
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
