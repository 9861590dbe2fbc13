package usage

import (
	"strings"

	"github.com/leapstack-labs/pinelint/pkg/source"
)

// firstUse returns the line of the earliest occurrence of any needle, or 0.
func firstUse(doc *source.Document, needles ...string) int {
	first := -1
	for _, n := range needles {
		if i := strings.Index(doc.Text, n); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return 0
	}
	return doc.LineAt(first)
}
