// Package performance provides volume heuristics over the whole document.
//
// PF01 and PF02 count loops with different patterns and thresholds and may
// both fire for the same script.
//
// Rules in this package:
//   - PF01: Raw count of "for " occurrences
//   - PF02: Loop and conditional counts
//   - PF03: Loops bounded by a variable
package performance
