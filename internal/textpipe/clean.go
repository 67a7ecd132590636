package textpipe

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	// Non-greedy, so "[a] keep [b]" loses only the bracketed spans. Nested
	// brackets leave the outer closing bracket behind.
	bracketedSpan = regexp.MustCompile(`\[.*?\]`)

	whitespaceRun = regexp.MustCompile(`\s+`)

	// ASCII digits only; verse numbering and footnote references never use
	// other numeral systems.
	asciiDigits = runes.Remove(runes.Predicate(func(r rune) bool {
		return r >= '0' && r <= '9'
	}))
)

// StripDigits removes ASCII digits wherever they appear, including ones glued
// to words by footnote references ("wrath.12" becomes "wrath.").
func StripDigits(text string) string {
	stripped, _, err := transform.String(asciiDigits, text)
	if err != nil {
		return text
	}
	return stripped
}

// StripBrackets removes bracketed translator comments.
func StripBrackets(text string) string {
	return bracketedSpan.ReplaceAllString(text, "")
}

// StripLiterals removes each tag verbatim; it catches translator attributions
// that appear outside brackets.
func StripLiterals(text string, tags []string) string {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		text = strings.ReplaceAll(text, tag, "")
	}
	return text
}

// CollapseWhitespace replaces every whitespace run with a single space and
// trims the ends.
func CollapseWhitespace(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}
