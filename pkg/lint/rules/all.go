package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/declaration"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/delimiter"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/lexical"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/performance"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/structure"
	_ "github.com/leapstack-labs/pinelint/pkg/lint/rules/usage"
)
