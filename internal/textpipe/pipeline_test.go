package textpipe_test

import (
	"strings"
	"testing"

	"rhapsode/internal/logging"
	"rhapsode/internal/textpipe"
)

const rawPoem = "PREFACE kept intact.\r\n" +
	"BOOK I.\r\n" +
	"Argument of the first book.12\r\n" +
	"BOOK I.\r\n" +
	"Achilles’ baneful wrath resound,13 [Greek: menin aeide]\r\n" +
	"O Goddess of the call’d deep—Tr.\r\n"

func newTestPipeline() *textpipe.Pipeline {
	return textpipe.New(textpipe.Options{
		HeaderMarker:   "BOOK ",
		TranslatorTags: []string{"—Tr."},
		Modernize:      true,
	}, logging.NewNop())
}

func TestPipelineRunCleansEndToEnd(t *testing.T) {
	cleaned, results := newTestPipeline().Run(rawPoem)

	want := "PREFACE kept intact. BOOK I. Achilles’ baneful wrath resound, O Goddess of the called deep"
	if cleaned != want {
		t.Fatalf("unexpected cleaned text:\ngot  %q\nwant %q", cleaned, want)
	}

	wantStages := []string{
		"strip-book-headers",
		"strip-digits",
		"strip-brackets",
		"strip-translator-tags",
		"collapse-whitespace",
		"modernize",
	}
	if len(results) != len(wantStages) {
		t.Fatalf("expected %d stage results, got %d", len(wantStages), len(results))
	}
	for i, result := range results {
		if result.Name != wantStages[i] {
			t.Fatalf("stage %d: got %q want %q", i, result.Name, wantStages[i])
		}
	}
}

func TestPipelineStagesNeverExpandWordCount(t *testing.T) {
	_, results := newTestPipeline().Run(rawPoem)

	previous := textpipe.WordCount(rawPoem)
	for _, result := range results {
		if result.Words > previous {
			t.Fatalf("stage %q expanded word count: %d > %d", result.Name, result.Words, previous)
		}
		previous = result.Words
	}
}

func TestPipelineModernizeStagePreservesCount(t *testing.T) {
	_, results := newTestPipeline().Run(rawPoem)

	if len(results) < 2 {
		t.Fatalf("expected at least two stage results, got %d", len(results))
	}
	last := results[len(results)-1]
	beforeLast := results[len(results)-2]
	if last.Name != "modernize" {
		t.Fatalf("expected modernize last, got %q", last.Name)
	}
	if last.Words != beforeLast.Words {
		t.Fatalf("modernize changed word count: %d != %d", last.Words, beforeLast.Words)
	}
}

func TestPipelineWithoutModernize(t *testing.T) {
	pipeline := textpipe.New(textpipe.Options{HeaderMarker: "BOOK "}, nil)
	cleaned, results := pipeline.Run("plain call’d text\r\nsecond line")

	if !strings.Contains(cleaned, "call’d") {
		t.Fatalf("expected elision untouched, got %q", cleaned)
	}
	for _, result := range results {
		if result.Name == "modernize" {
			t.Fatal("expected no modernize stage")
		}
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two  words", 2},
		{"line\r\nbreaks count\ttoo", 4},
	}
	for _, tc := range cases {
		if got := textpipe.WordCount(tc.in); got != tc.want {
			t.Fatalf("WordCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
