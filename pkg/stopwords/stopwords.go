// Package stopwords provides immutable stopword sets for supported
// languages plus a Set type for custom lists.
//
// The compiled-in sets are construction-time data: nothing in this
// package mutates a Set after NewSet returns, so Sets are safe to share
// across goroutines.
package stopwords

import "strings"

// Set is a fixed membership set of lowercase words.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from a word list. Words are lowercased and
// trimmed; empty entries are dropped.
func NewSet(words []string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return Set{words: m}
}

// FromText builds a Set from newline-separated words (the language pack
// data format). Lines starting with # are comments.
func FromText(text string) Set {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return NewSet(words)
}

// Contains reports membership. The match is exact: callers pass already
// lowercased tokens.
func (s Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s.words) }

// Words returns a copy of the set contents in unspecified order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// ForLanguage returns the compiled-in set for an ISO 639-1 language
// code, or false when the language has no built-in set.
func ForLanguage(code string) (Set, bool) {
	switch code {
	case "en":
		return English, true
	case "nl":
		return Dutch, true
	}
	return Set{}, false
}
