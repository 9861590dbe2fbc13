package usage

import (
	"github.com/leapstack-labs/pinelint/pkg/lint"
	"github.com/leapstack-labs/pinelint/pkg/source"
)

func init() {
	lint.Register(RiskManagement)
}

// RiskManagement suggests strategy.risk for v6 strategies.
var RiskManagement = lint.RuleDef{
	ID:          "US06",
	Name:        "usage.risk_management",
	Group:       "usage",
	Description: "v6 strategies can cap exposure with strategy.risk.* settings.",
	Severity:    lint.SeverityInfo,
	Check:       checkRiskManagement,
	GoodExample: "strategy.risk.max_drawdown(20, strategy.percent_of_equity)",
}

func checkRiskManagement(doc *source.Document, _ map[string]any) []lint.Diagnostic {
	if doc.VersionOr(5) < 6 {
		return nil
	}
	if !doc.Contains("strategy.entry") || doc.Contains("strategy.risk") {
		return nil
	}
	return []lint.Diagnostic{{
		Severity: lint.SeverityInfo,
		Line:     firstUse(doc, "strategy.entry"),
		Message:  "Strategy entries detected - consider using strategy.risk for better risk management in v6",
	}}
}
