// Package delimiter provides the stateful delimiter scanners.
//
// Rules in this package:
//   - BR01: Bracket balance over the whole document
//   - BR02: Parenthesis depth of call-like constructs spanning lines
//
// Both scanners may report the same unclosed parenthesis. BR01 frames it as a
// generic delimiter problem, BR02 as a call that never closes.
package delimiter
