package descriptor

import (
	"strings"
	"unicode/utf8"
)

// Delimiter returns the token delimiter used by a category's descriptors.
// Music listings separate tokens with "/", everything else with "|".
func Delimiter(c MediaCategory) rune {
	if c == CategoryMusic {
		return '/'
	}
	return '|'
}

// Tokenize splits a descriptor string into trimmed tokens, honoring
// parentheses as atomic units: the delimiter only splits at nesting depth
// zero. Empty tokens are dropped.
//
// Unbalanced input degrades rather than fails: an unmatched "(" leaves the
// rest of the string at depth > 0, so it is never split again, and a stray
// ")" at depth zero is ignored.
func Tokenize(s string, delim rune) []string {
	var tokens []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case delim:
			if depth == 0 {
				tokens = appendToken(tokens, s[start:i])
				start = i + utf8.RuneLen(r)
			}
		}
	}
	return appendToken(tokens, s[start:])
}

func appendToken(tokens []string, raw string) []string {
	if tok := strings.TrimSpace(raw); tok != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}
