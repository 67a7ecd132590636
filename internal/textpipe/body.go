package textpipe

import (
	"fmt"
	"strings"
)

// SliceBody cuts the poem body out of a full document: it spans from the
// first occurrence of start (the marker text itself is kept) up to, but not
// including, the first occurrence of end.
func SliceBody(text, start, end string) (string, error) {
	startIdx := strings.Index(text, start)
	if startIdx < 0 {
		return "", fmt.Errorf("body start marker %q not found", start)
	}
	endIdx := strings.Index(text, end)
	if endIdx < 0 {
		return "", fmt.Errorf("body end marker %q not found", end)
	}
	if endIdx < startIdx {
		return "", fmt.Errorf("body end marker %q appears before start marker %q", end, start)
	}
	return text[startIdx:endIdx], nil
}
