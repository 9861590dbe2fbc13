package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(StrategyExit)
}

// StrategyExit flags entries that are never exited.
var StrategyExit = lint.RuleDef{
	ID:          "US02",
	Name:        "usage.strategy_exit",
	Group:       "usage",
	Description: "Strategies that enter positions should also define exits.",
	Severity:    lint.SeverityWarning,
	Check:       checkStrategyExit,
	GoodExample: "strategy.entry(\"L\", strategy.long)\nstrategy.exit(\"TP\", \"L\", limit=tp, stop=sl)",
}

func checkStrategyExit(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if !doc.Contains("strategy.entry") || doc.Contains("strategy.exit") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityWarning,
		Line:     firstUse(doc, "strategy.entry"),
		Message:  "Strategy entries detected but no strategy exits found - check risk management",
	}}
}
