// Package usage provides document-wide presence heuristics: an API is used
// somewhere but its companion (constructor, exit, guard) appears nowhere.
//
// Findings point at the first use of the triggering API.
//
// Rules in this package:
//   - US01: Container operations without a constructor
//   - US02: strategy.entry without strategy.exit
//   - US03: request.security without an na() guard
//   - US04: array.get without array.size
//   - US05: Persistent labels that may leak
//   - US06: strategy.entry without strategy.risk (v6)
package usage
