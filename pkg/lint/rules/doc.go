// Package rules provides the built-in lint rules for indicator scripts.
//
// Rules are organized by category:
//   - delimiter: bracket balance and multiline call tracking (BR01-BR02)
//   - declaration: duplicate and forward-referenced names (DC01-DC02)
//   - lexical: table-driven line pattern rules (LX01-LX08)
//   - performance: loop and conditional volume heuristics (PF01-PF03)
//   - structure: whole-document structural checks (ST01-ST08)
//   - usage: document-wide presence heuristics (US01-US06)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/pinelint/pkg/lint/rules"
package rules
