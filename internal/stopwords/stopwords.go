package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed data/english.txt
var embeddedList string

// Set holds lowercased stopwords for membership checks.
type Set map[string]struct{}

var (
	defaultOnce sync.Once
	defaultSet  Set
)

// Default returns the embedded English stopword set. The returned set is
// shared; treat it as read-only.
func Default() Set {
	defaultOnce.Do(func() {
		set, err := Load(strings.NewReader(embeddedList))
		if err != nil {
			panic(fmt.Sprintf("stopwords: embedded list invalid: %v", err))
		}
		defaultSet = set
	})
	return defaultSet
}

// New builds a set from the provided words.
func New(words ...string) Set {
	set := make(Set, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// Load reads a word list: one word per line, blank lines and # comments
// skipped, case folded.
func Load(r io.Reader) (Set, error) {
	set := Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list: %w", err)
	}
	return set, nil
}

// FromFile reads a word list from disk.
func FromFile(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword list: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Contains reports whether word, lowercased, is a member.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Filter removes every whitespace-separated token whose lowercased form is a
// member and joins the survivors with single spaces. Punctuation stays glued
// to its token, so "the," is not a member and survives.
func (s Set) Filter(text string) string {
	if len(s) == 0 {
		return text
	}
	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if s.Contains(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// Words returns the members in sorted order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
