package pagecopy

import (
	"regexp"
	"strings"
	"unicode"
)

// whitespaceRun matches two or more consecutive whitespace characters as
// defined by isSpace.
var whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r\x{2028}\x{2029}\x{feff}\p{Zs}]{2,}`)

// isSpace reports whether r is whitespace in the sense browsers use for
// text content: ASCII controls, line and paragraph separators, the byte
// order mark and every Unicode space separator. U+0085 is not included.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace removes leading and trailing whitespace as defined by isSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// NormalizeWhitespace collapses every run of two or more whitespace
// characters into a single blank line and trims the result.
func NormalizeWhitespace(s string) string {
	return TrimSpace(whitespaceRun.ReplaceAllString(s, "\n\n"))
}
