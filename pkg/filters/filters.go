// Package filters provides text-cleaning transforms and the pipeline
// that composes them into a document preprocessor.
//
// Every filter has the same shape: it consumes a text document and
// produces a text document, is total over Unicode input and never
// fails. Token-level filters (stopword removal, short-token removal)
// split on whitespace internally and rejoin with single spaces, so the
// text-to-text contract holds across the whole chain.
package filters

import (
	"regexp"
	"strings"

	"github.com/hazyhaar/wordmill/pkg/stem"
	"github.com/hazyhaar/wordmill/pkg/stopwords"
)

// Filter transforms a text document into a text document.
type Filter func(string) string

var (
	rePunct      = regexp.MustCompile(`[[:punct:]]+`)
	reTags       = regexp.MustCompile(`<[^>]+>`)
	reNumeric    = regexp.MustCompile(`[0-9]+`)
	reNonAlpha   = regexp.MustCompile(`\W`)
	reAlphaNum   = regexp.MustCompile(`([a-z]+)([0-9]+)`)
	reNumAlpha   = regexp.MustCompile(`([0-9]+)([a-z]+)`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Lowercase folds the document to lower case.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// StripTags removes angle-bracket tags. Matching is non-greedy and not
// nesting-aware: the first > after a < closes the tag.
func StripTags(s string) string {
	return reTags.ReplaceAllString(s, "")
}

// StripPunctuation replaces each maximal run of ASCII punctuation with
// a single space.
func StripPunctuation(s string) string {
	return rePunct.ReplaceAllString(s, " ")
}

// StripNumeric deletes digit runs outright, with no replacement space.
func StripNumeric(s string) string {
	return reNumeric.ReplaceAllString(s, "")
}

// StripNonAlphanum replaces every non-word character (anything but
// letters, digits and underscore) with a space.
func StripNonAlphanum(s string) string {
	return reNonAlpha.ReplaceAllString(s, " ")
}

// StripMultipleWhitespaces collapses runs of whitespace (spaces, tabs,
// line breaks) into a single space.
func StripMultipleWhitespaces(s string) string {
	return reWhitespace.ReplaceAllString(s, " ")
}

// SplitAlphanum inserts a space at every boundary between a letter run
// and a digit run. Not part of the default chain.
func SplitAlphanum(s string) string {
	s = reAlphaNum.ReplaceAllString(s, "$1 $2")
	return reNumAlpha.ReplaceAllString(s, "$1 $2")
}

// StripShort drops tokens shorter than three characters.
func StripShort(s string) string {
	return StripShortMin(3)(s)
}

// StripShortMin returns a filter dropping tokens shorter than minsize
// characters. Length is counted in runes, not bytes.
func StripShortMin(minsize int) Filter {
	return func(s string) string {
		var kept []string
		for _, tok := range strings.Fields(s) {
			if len([]rune(tok)) >= minsize {
				kept = append(kept, tok)
			}
		}
		return strings.Join(kept, " ")
	}
}

// RemoveStopwords drops tokens found in the default English stopword
// set. Matching is exact, against already-lowercased tokens.
func RemoveStopwords(s string) string {
	return RemoveStopwordsFrom(stopwords.English)(s)
}

// RemoveStopwordsFrom returns a stopword filter for the given set.
func RemoveStopwordsFrom(set stopwords.Set) Filter {
	return func(s string) string {
		var kept []string
		for _, tok := range strings.Fields(s) {
			if !set.Contains(tok) {
				kept = append(kept, tok)
			}
		}
		return strings.Join(kept, " ")
	}
}

// StemText lowercases the document and stems each token.
func StemText(s string) string {
	return stem.Sentence(s)
}
