package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// CommentPrefix starts a line comment in the scripting dialect.
const CommentPrefix = "//"

// VersionPrefix is the leading form of the version directive.
const VersionPrefix = "//@version"

var versionPattern = regexp.MustCompile(`//@version=(\d+)`)

// Sentinel errors wrapped by LoadError.
var (
	ErrNotFound = errors.New("file not found")
	ErrDecode   = errors.New("file is not valid UTF-8")
)

// LoadError represents a fatal failure to read a script.
// No rules run when loading fails.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Document is a loaded script. It must not be modified after construction;
// every rule reads the same snapshot.
type Document struct {
	Path  string
	Text  string
	Lines []string

	// lineStarts holds the byte offset of each line, for offset -> line lookups.
	lineStarts []int
}

// New builds a document from raw text.
func New(path, text string) *Document {
	lines := strings.Split(text, "\n")
	starts := make([]int, len(lines))
	offset := 0
	for i, l := range lines {
		starts[i] = offset
		offset += len(l) + 1
	}
	return &Document{
		Path:       path,
		Text:       text,
		Lines:      lines,
		lineStarts: starts,
	}
}

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's explicit argument
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		return nil, &LoadError{Path: path, Err: ErrDecode}
	}
	return New(path, string(content)), nil
}

// LineCount returns the number of lines, counting a trailing empty line.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the text of the 1-based line n, or "" when out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// LineAt returns the 1-based line containing byte offset off.
func (d *Document) LineAt(off int) int {
	if off <= 0 {
		return 1
	}
	// first line starting after off, minus one
	i := sort.SearchInts(d.lineStarts, off+1)
	return i
}

// Contains reports whether the raw text contains sub anywhere.
func (d *Document) Contains(sub string) bool {
	return strings.Contains(d.Text, sub)
}

// Version returns the dialect version from the first //@version=N directive
// anywhere in the document.
func (d *Document) Version() (int, bool) {
	v, _, ok := d.VersionDirective()
	return v, ok
}

// VersionDirective returns the version and the 1-based line of the first
// //@version=N directive.
func (d *Document) VersionDirective() (version, line int, ok bool) {
	m := versionPattern.FindStringSubmatchIndex(d.Text)
	if m == nil {
		return 0, 0, false
	}
	v, err := strconv.Atoi(d.Text[m[2]:m[3]])
	if err != nil {
		return 0, 0, false
	}
	return v, d.LineAt(m[0]), true
}

// VersionOr returns the declared version or def when there is none.
func (d *Document) VersionOr(def int) int {
	if v, ok := d.Version(); ok {
		return v
	}
	return def
}

// StartsWithDirective reports whether the trimmed text begins with the
// version directive.
func (d *Document) StartsWithDirective() bool {
	return strings.HasPrefix(strings.TrimSpace(d.Text), VersionPrefix)
}

// IsSkippable reports whether a line is blank or comment-only. Such lines
// neither open nor close scan state in line-oriented rules.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}

// EachLine calls fn for every line, comments and blanks included, with its
// 1-based number and trimmed text.
func (d *Document) EachLine(fn func(n int, trimmed string)) {
	for i, l := range d.Lines {
		fn(i+1, strings.TrimSpace(l))
	}
}

// CodeLines calls fn for every line that is not blank or comment-only,
// with its 1-based number and trimmed text.
func (d *Document) CodeLines(fn func(n int, trimmed string)) {
	for i, l := range d.Lines {
		if IsSkippable(l) {
			continue
		}
		fn(i+1, strings.TrimSpace(l))
	}
}
