// Package structure provides one-shot whole-document checks.
//
// Rules in this package:
//   - ST01: Version directive presence and range
//   - ST02: indicator() or strategy() declaration
//   - ST03: Block comments are not part of the dialect
//   - ST04: Array literals spanning lines inside call arguments
//   - ST05: Call argument lists spanning three or more lines
//   - ST06: Ternary operators missing their ':' branch
//   - ST07: Lines ending inside an open call
//   - ST08: Assignment through a subscript
package structure
