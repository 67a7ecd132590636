package textpipe

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Only the typographic right single quote participates; ASCII apostrophes
// mark possessives ("Peleus' son") and must survive.
var elisionReplacer = strings.NewReplacer("’d", "ed")

// Modernize rewrites archaic verse elisions such as "call’d" to "called".
// Text is NFC-normalized first so decomposed input cannot dodge the match.
// The rewrite never touches spaces, so the word count is preserved.
func Modernize(text string) string {
	return elisionReplacer.Replace(norm.NFC.String(text))
}
