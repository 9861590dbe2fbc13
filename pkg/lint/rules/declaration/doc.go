// Package declaration tracks declared names in one forward pass.
//
// The tracker records the first line each name is declared on, either by a
// var/varip declaration or by a plain assignment. Function signature lines
// such as `f(a, b) =>` declare parameters, not document names, and are
// skipped.
//
// Rules in this package:
//   - DC01: var declarations of an already-declared name
//   - DC02: Watched identifiers used before their declaration
package declaration
