// Package customrules loads user-defined lint rules from Starlark files.
//
// Each *.star file in the rules directory defines one rule:
//
//	id = "XX01"
//	description = "No TODO markers in published scripts"
//	severity = "warning"   # optional: error, warning, info, hint
//
//	def check(lines):
//	    out = []
//	    for i, line in enumerate(lines):
//	        if "TODO" in line:
//	            out.append((i + 1, "TODO left in script"))
//	    return out
//
// check receives the document lines and returns a list whose items are
// either (line, message) tuples or bare message strings.
package customrules

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/leapstack-labs/pinelint/pkg/core"
	"github.com/leapstack-labs/pinelint/pkg/lint"
)

// Group is the rule group every custom rule belongs to.
const Group = "custom"

// Loader scans a directory for .star files and turns them into rules.
type Loader struct {
	dir    string
	logger *slog.Logger
	pool   *threadPool
}

// NewLoader creates a loader for dir. A nil logger discards output.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		dir:    dir,
		logger: logger,
		pool:   newThreadPool(defaultPoolSize),
	}
}

// Load loads every rule in the directory, ordered by file name.
// A missing directory yields no rules and no error.
func (l *Loader) Load() ([]lint.RuleDef, error) {
	if l.dir == "" {
		return nil, nil
	}

	info, err := os.Stat(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access rules directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules path is not a directory: %s", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.star"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules directory: %w", err)
	}

	rules := make([]lint.RuleDef, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		rule, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[rule.ID]; dup {
			return nil, &LoadError{
				File:    file,
				Message: fmt.Sprintf("rule id %q already defined in %s", rule.ID, filepath.Base(prev)),
			}
		}
		if _, builtin := lint.GetByID(rule.ID); builtin {
			return nil, &LoadError{
				File:    file,
				Message: fmt.Sprintf("rule id %q collides with a built-in rule", rule.ID),
			}
		}
		seen[rule.ID] = file
		rules = append(rules, rule)
		l.logger.Debug("loaded custom rule", "id", rule.ID, "file", file)
	}

	return rules, nil
}

// loadFile executes a single .star file and builds its rule.
func (l *Loader) loadFile(path string) (lint.RuleDef, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from a glob within the rules directory
	if err != nil {
		return lint.RuleDef{}, &LoadError{
			File:    path,
			Message: fmt.Sprintf("failed to read file: %v", err),
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), ".star")
	thread := &starlark.Thread{
		Name: "load:" + name,
		Print: func(_ *starlark.Thread, msg string) {
			l.logger.Debug("custom rule print", "file", path, "msg", msg)
		},
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, path, content, nil)
	if err != nil {
		return lint.RuleDef{}, &LoadError{
			File:    path,
			Message: fmt.Sprintf("Starlark execution error: %v", err),
		}
	}
	// Frozen globals may be shared by concurrent checks.
	globals.Freeze()

	def, err := ruleFromGlobals(name, globals)
	if err != nil {
		return lint.RuleDef{}, &LoadError{File: path, Message: err.Error()}
	}

	return lint.RuleDef{
		ID:          def.id,
		Name:        Group + "." + name,
		Group:       Group,
		Description: def.description,
		Severity:    def.severity,
		Custom:      true,
		Check:       l.checkFunc(path, def),
	}, nil
}

// definition is the validated content of a rule file.
type definition struct {
	id          string
	description string
	severity    core.Severity
	check       starlark.Callable
}

func ruleFromGlobals(name string, globals starlark.StringDict) (definition, error) {
	def := definition{severity: core.SeverityWarning}

	id, err := stringGlobal(globals, "id")
	if err != nil {
		return def, err
	}
	if id == "" {
		return def, fmt.Errorf("missing required string 'id'")
	}
	def.id = id

	if def.description, err = stringGlobal(globals, "description"); err != nil {
		return def, err
	}
	if def.description == "" {
		def.description = name
	}

	sev, err := stringGlobal(globals, "severity")
	if err != nil {
		return def, err
	}
	if sev != "" {
		parsed, ok := core.ParseSeverity(sev)
		if !ok {
			return def, fmt.Errorf("invalid severity %q", sev)
		}
		def.severity = parsed
	}

	fn, ok := globals["check"].(starlark.Callable)
	if !ok {
		return def, fmt.Errorf("missing required function 'check'")
	}
	def.check = fn

	return def, nil
}

// stringGlobal returns a string global, "" when absent.
func stringGlobal(globals starlark.StringDict, key string) (string, error) {
	v, ok := globals[key]
	if !ok {
		return "", nil
	}
	s, ok := starlark.AsString(v)
	if !ok {
		return "", fmt.Errorf("'%s' must be a string, got %s", key, v.Type())
	}
	return s, nil
}

// LoadError represents an error loading a custom rule file.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rules/%s: %s", filepath.Base(e.File), e.Message)
}
