package strx

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Split splits s at every rune contained in seps and yields the fields
// between separators, including empty ones. If s does not contain any
// separator, Split yields nothing.
func Split(s string, seps string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if seps == "" || !strings.ContainsAny(s, seps) {
			return
		}
		rest := s
		for {
			i := strings.IndexAny(rest, seps)
			if i < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:i]) {
				return
			}
			_, size := utf8.DecodeRuneInString(rest[i:])
			rest = rest[i+size:]
		}
	}
}

// SplitAt splits s at every occurrence of sep. As with Split, nothing is
// yielded if sep does not occur in s.
func SplitAt(s string, sep string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if sep == "" || !strings.Contains(s, sep) {
			return
		}
		for field := range strings.SplitSeq(s, sep) {
			if !yield(field) {
				return
			}
		}
	}
}

// Lines yields the lines of s, without line terminators. Both "\n" and
// "\r\n" terminate a line. A final terminator does not start an empty line.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}
