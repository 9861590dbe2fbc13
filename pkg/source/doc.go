// Package source loads indicator scripts and exposes them as immutable,
// line-addressable documents.
//
// Line numbers are 1-based everywhere in pinelint. A document is split on
// '\n' only, so a trailing newline produces a final empty line.
package source
