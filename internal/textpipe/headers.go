package textpipe

import "strings"

// StripBookHeaders drops the duplicate book headings Gutenberg texts carry:
// each heading appears once in the table of contents and again in front of
// the book itself. Scanning line by line, the first sighting of a heading
// (any line containing marker) switches to skipping; a repeat sighting of
// the same line switches back to keeping and the repeated heading stays in
// the text. Lines before the first heading are kept. Kept lines are joined
// with single spaces, which also flattens newlines.
func StripBookHeaders(text, marker string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{})
	keep := true
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.Contains(line, marker) {
			if _, ok := seen[line]; !ok {
				seen[line] = struct{}{}
				keep = false
			} else {
				keep = true
			}
		}
		if keep {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, " ")
}
