package lexical

// reservedKeywords cannot be assigned to.
var reservedKeywords = []string{
	"range", "break", "continue", "delete", "new", "this", "super",
	"class", "interface", "extends", "implements", "public", "private",
	"protected", "static", "final", "const", "var", "if", "else", "for",
	"while", "switch", "case", "default", "try", "catch", "throw",
	"return", "function", "method", "property",
}

// invalidType maps a foreign type token to the pattern that finds it.
type invalidType struct {
	name    string
	pattern string
}

// 'short' and 'long' are valid strategy.direction constants and stay out.
var invalidTypes = []invalidType{
	{"int64", `\bint64\b`},
	{"uint", `\buint\b`},
	{"uint8", `\buint8\b`},
	{"uint16", `\buint16\b`},
	{"uint32", `\buint32\b`},
	{"uint64", `\buint64\b`},
	{"byte", `\bbyte\b`},
	{"double", `\bdouble\b`},
	{"char", `\bchar\b`},
	{"string[]", `\bstring\[\]`},
	{"boolean", `\bboolean\b`},
	{"Integer", `\bInteger\b`},
	{"Float", `\bFloat\b`},
	{"String", `\bString\b`},
	{"Boolean", `\bBoolean\b`},
}

var mathFunctions = []string{
	"sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "tanh",
	"sqrt", "log", "log10", "exp", "pow", "abs", "round", "ceil", "floor",
	"max", "min",
}

// nonMathNamespaces own functions that share a name with a math function.
var nonMathNamespaces = map[string]bool{
	"math":     true,
	"strategy": true,
	"color":    true,
	"label":    true,
	"table":    true,
	"plot":     true,
	"fill":     true,
	"array":    true,
	"matrix":   true,
	"map":      true,
	"str":      true,
	"ta":       true,
	"box":      true,
	"line":     true,
	"request":  true,
	"input":    true,
}

// migration is a call renamed or replaced in v6.
type migration struct {
	old         string
	replacement string
}

var migrations = []migration{
	{"security", "request.security"},
	{"plotchar", "plotshape"},
	{"fill", "fill.new"},
	{"hline", "hline.new"},
}

// plotLinestylePatterns find linestyle among a plotting call's arguments.
var plotLinestylePatterns = []string{
	`hline\([^,]+,[^,]+,[^,]+,.*linestyle`,
	`plot\([^,]+,[^,]+,.*linestyle`,
	`plotcandle\([^,]+,[^,]+,[^,]+,[^,]+,[^,]+,.*linestyle`,
}

var suspiciousDivisions = []string{
	`/\s*\(\s*\w+\s*-\s*\w+\s*\)`,
	`/\s*\(\s*\w+\s*\+\s*\w+\s*\)`,
}

const trailingDivision = `/\s*\w+\s*$`
