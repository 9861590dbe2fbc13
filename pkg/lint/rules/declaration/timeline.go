package declaration

import (
	"regexp"

	"github.com/leapstack-labs/pinelint/pkg/source"
)

var (
	signaturePattern = regexp.MustCompile(`^(\w+)\s*\([^)]*\)\s*=>`)
	varDeclPattern   = regexp.MustCompile(`^var(?:ip)?\s+(?:[\w.<>\[\]]+\s+)?(\w+)\s*=(?:[^=]|$)`)
	assignPattern    = regexp.MustCompile(
		`^(?:(?:int|float|bool|string|color|label|line|box|table|linefill|polyline)\s+)?(\w+)\s*:?=(?:[^=]|$)`)
)

// declKind distinguishes explicit var declarations from first assignments.
type declKind int

const (
	declNone declKind = iota
	declVar
	declAssign
)

// declaredName extracts the name a code line declares, if any.
func declaredName(trimmed string) (string, declKind) {
	if m := varDeclPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1], declVar
	}
	if m := assignPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1], declAssign
	}
	return "", declNone
}

// isSignature reports whether a line opens a function definition.
func isSignature(trimmed string) bool {
	return signaturePattern.MatchString(trimmed)
}

// timeline maps a name to the line it was first declared on.
// The first occurrence wins and is never overwritten.
type timeline map[string]int

// record stores name at line unless it is already present, and returns the
// recorded line.
func (t timeline) record(name string, line int) (first int, existed bool) {
	if prev, ok := t[name]; ok {
		return prev, true
	}
	t[name] = line
	return line, false
}

// scan walks the code lines once, calling onDecl for every declaration.
func scan(doc *source.Document, onDecl func(name string, kind declKind, line int)) {
	doc.CodeLines(func(line int, trimmed string) {
		if isSignature(trimmed) {
			return
		}
		if name, kind := declaredName(trimmed); kind != declNone {
			onDecl(name, kind, line)
		}
	})
}
