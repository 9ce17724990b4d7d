// Package pathenv makes installed-but-unreachable tools reachable by
// appending their install directory to the persistent machine-scope PATH,
// idempotently and without disturbing existing entries.
package pathenv

import (
	"os"
	"strings"
)

// Delimiter separates PATH segments on this platform.
const Delimiter = string(os.PathListSeparator)

// Split breaks a PATH value into segments. Segments are trimmed of
// surrounding whitespace and empty ones dropped, for comparison only; the
// stored value itself is never rewritten to match.
func Split(value string) []string {
	var segs []string
	for _, s := range strings.Split(value, Delimiter) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// Contains reports whether value already carries dir as a segment.
// Comparison is case-insensitive and exact per segment; a segment that
// merely prefixes dir does not match.
func Contains(value, dir string) bool {
	dir = strings.TrimSpace(dir)
	for _, seg := range Split(value) {
		if strings.EqualFold(seg, dir) {
			return true
		}
	}
	return false
}

// Append returns value with dir appended, omitting the delimiter when value
// is empty. The existing value is preserved byte for byte.
func Append(value, dir string) string {
	if value == "" {
		return dir
	}
	return value + Delimiter + dir
}
