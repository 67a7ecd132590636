package gutenberg_test

import (
	"strings"
	"testing"

	"rhapsode/internal/gutenberg"
)

func TestExtractTextDropsScriptingElements(t *testing.T) {
	const page = `<html><body>
		<noscript>enable javascript</noscript>
		<p>Peleus' son, Achilles.</p>
		<script>tracker();</script>
	</body></html>`

	text, err := gutenberg.ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if !strings.Contains(text, "Peleus' son, Achilles.") {
		t.Fatalf("expected paragraph text, got %q", text)
	}
	if strings.Contains(text, "tracker") || strings.Contains(text, "enable javascript") {
		t.Fatalf("expected scripting elements removed, got %q", text)
	}
}

func TestExtractTextHandlesFragments(t *testing.T) {
	text, err := gutenberg.ExtractText(strings.NewReader("<p>bare fragment</p>"))
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if !strings.Contains(text, "bare fragment") {
		t.Fatalf("expected fragment text, got %q", text)
	}
}
