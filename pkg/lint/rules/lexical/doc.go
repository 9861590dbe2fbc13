// Package lexical provides table-driven, line-oriented pattern rules.
//
// Each rule reads one package-level table, so adding a keyword, type or
// migration is a data change. Comment-only lines are skipped.
//
// Rules in this package:
//   - LX01: Reserved keywords used as variable names
//   - LX02: Type names that do not exist in the dialect
//   - LX03: Math functions called without the math. namespace
//   - LX04: str.format_time fed a float timestamp
//   - LX05: linestyle passed to plotting calls
//   - LX06: random.float, which does not exist
//   - LX07: Function names renamed in v6
//   - LX08: Divisors that could be zero
package lexical
