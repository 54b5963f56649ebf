// Package sanitize strips markdown emphasis markup from generated text.
//
// The generation policy forbids asterisk and underscore emphasis entirely,
// but models still slip it in. Only well-formed wrappings around a span that
// starts and ends on non-whitespace are removed; a stray delimiter inside a
// word ("a*b") is content, not markup, and stays untouched. Passage lookups
// are never sanitized so verbatim scriptural punctuation survives.
package sanitize

import "regexp"

// Longest delimiters first so ***x*** is not half-eaten by the ** rule.
var emphasisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*\*(\S[^*]*?\S)\*\*\*`),
	regexp.MustCompile(`\*\*(\S[^*]*?\S)\*\*`),
	regexp.MustCompile(`\*(\S[^*]*?\S)\*`),
	regexp.MustCompile(`___(\S[^_]*?\S)___`),
	regexp.MustCompile(`__(\S[^_]*?\S)__`),
	regexp.MustCompile(`_(\S[^_\s]*?\S)_`),
}

// RemoveEmphasis returns text with emphasis wrappings removed and the
// wrapped content kept. Idempotent: sanitized text passes through unchanged.
func RemoveEmphasis(text string) string {
	for _, pattern := range emphasisPatterns {
		text = pattern.ReplaceAllString(text, "$1")
	}
	return text
}
