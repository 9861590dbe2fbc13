package customrules

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

// maxSteps bounds one check call so a runaway loop cannot hang a run.
const maxSteps = 10_000_000

// checkFunc adapts a Starlark check function to lint.CheckFunc.
// Failures are logged and produce no diagnostics.
func (l *Loader) checkFunc(path string, def definition) lint.CheckFunc {
	return func(doc *source.Document, _ map[string]any) []lint.Diagnostic {
		thread := l.pool.get("check:" + def.id)
		thread.Steps = 0
		thread.SetMaxExecutionSteps(maxSteps)

		lines := make([]starlark.Value, len(doc.Lines))
		for i, line := range doc.Lines {
			lines[i] = starlark.String(line)
		}

		result, err := starlark.Call(thread, def.check, starlark.Tuple{starlark.NewList(lines)}, nil)
		if err != nil {
			// A failed thread may be cancelled; it is not returned to the pool.
			l.logger.Warn("custom rule failed", "rule", def.id, "file", path, "error", err)
			return nil
		}
		l.pool.put(thread)

		diags, err := toDiagnostics(result, def)
		if err != nil {
			l.logger.Warn("custom rule returned invalid result", "rule", def.id, "file", path, "error", err)
			return nil
		}
		return diags
	}
}

// toDiagnostics converts a check result into diagnostics.
func toDiagnostics(result starlark.Value, def definition) ([]lint.Diagnostic, error) {
	if result == starlark.None {
		return nil, nil
	}
	iterable, ok := result.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("check must return a list, got %s", result.Type())
	}

	var diags []lint.Diagnostic
	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		d := lint.Diagnostic{Severity: def.severity}
		switch v := item.(type) {
		case starlark.String:
			d.Message = string(v)
		case starlark.Tuple:
			if len(v) != 2 {
				return nil, fmt.Errorf("finding tuple must be (line, message), got %d items", len(v))
			}
			line, err := starlark.AsInt32(v[0])
			if err != nil {
				return nil, fmt.Errorf("finding line: %w", err)
			}
			msg, ok := starlark.AsString(v[1])
			if !ok {
				return nil, fmt.Errorf("finding message must be a string, got %s", v[1].Type())
			}
			d.Line = line
			d.Message = msg
		default:
			return nil, fmt.Errorf("finding must be a string or (line, message) tuple, got %s", item.Type())
		}
		diags = append(diags, d)
	}
	return diags, nil
}
