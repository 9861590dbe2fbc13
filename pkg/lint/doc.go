// Package lint provides the data-driven rule engine for indicator scripts.
//
// # Architecture
//
// The lint package holds the shared contracts:
//
//  1. RuleDef: a rule record (ID, severity, documentation, Check function)
//  2. Registry: rules register themselves from init() functions
//  3. Config: disabled rules, severity overrides and rule options
//  4. Analyzer: runs every enabled rule over one source.Document
//  5. Report: the append-only set of diagnostics for one document
//
// Rule implementations live in pkg/lint/rules/<group> and are registered by
// importing them:
//
//	import _ "github.com/leapstack-labs/pinelint/pkg/lint/rules"
//
// # Rule Groups
//
//   - BR (delimiter): bracket balance and multiline call tracking
//   - DC (declaration): duplicate and forward-referenced declarations
//   - LX (lexical): line-level pattern rules driven by tables
//   - PF (performance): loop and conditional volume heuristics
//   - ST (structure): whole-document structural checks
//   - US (usage): presence heuristics over the whole document
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("LX07")
//	config.SetSeverity("LX03", core.SeverityError)
//	config.SetRuleOptions("PF01", map[string]any{"max_loops": 20})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "custom.my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
