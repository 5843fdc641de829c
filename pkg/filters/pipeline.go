// CLAUDE:SUMMARY Pipeline composition: ordered filter chains, the named-filter registry, and the default preprocessing chain.
package filters

import (
	"fmt"
	"sort"
	"strings"
)

// byName resolves config-supplied filter names. Parameterized filters
// appear with their default parameters; custom parameters are wired in
// code via StripShortMin and RemoveStopwordsFrom.
var byName = map[string]Filter{
	"lowercase":                  Lowercase,
	"strip_tags":                 StripTags,
	"strip_punctuation":          StripPunctuation,
	"strip_multiple_whitespaces": StripMultipleWhitespaces,
	"strip_numeric":              StripNumeric,
	"strip_non_alphanum":         StripNonAlphanum,
	"split_alphanum":             SplitAlphanum,
	"strip_short":                StripShort,
	"remove_stopwords":           RemoveStopwords,
	"stem_text":                  StemText,
}

// DefaultNames is the default filter chain, in application order.
// The order is significant: stemming runs last because stems may be
// short or altered forms that must not be re-filtered, and tag and
// punctuation stripping run before the token-level filters because
// those operate on whitespace-delimited tokens.
var DefaultNames = []string{
	"lowercase",
	"strip_tags",
	"strip_punctuation",
	"strip_multiple_whitespaces",
	"strip_numeric",
	"remove_stopwords",
	"strip_short",
	"stem_text",
}

// Names lists the registered filter names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Pipeline applies an ordered, immutable list of filters to documents.
// A Pipeline holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	filters []Filter
}

// New builds a pipeline from the given filters, in order. A nil filter
// is a configuration error and is rejected before any document is
// processed, with the offending position named.
func New(fs ...Filter) (*Pipeline, error) {
	for i, f := range fs {
		if f == nil {
			return nil, fmt.Errorf("pipeline: filter at position %d is nil", i)
		}
	}
	p := &Pipeline{filters: make([]Filter, len(fs))}
	copy(p.filters, fs)
	return p, nil
}

// FromNames builds a pipeline from registered filter names, in order.
// An unknown name is a configuration error naming the offender.
func FromNames(names []string) (*Pipeline, error) {
	fs := make([]Filter, 0, len(names))
	for _, n := range names {
		f, ok := byName[strings.TrimSpace(n)]
		if !ok {
			return nil, fmt.Errorf("pipeline: unknown filter %q (known: %s)", n, strings.Join(Names(), ", "))
		}
		fs = append(fs, f)
	}
	return &Pipeline{filters: fs}, nil
}

// Default returns the default preprocessing pipeline.
func Default() *Pipeline {
	p, _ := FromNames(DefaultNames)
	return p
}

// Run threads the document through each filter in order: the output of
// filter i is the input of filter i+1. No filter is skipped or retried.
func (p *Pipeline) Run(s string) string {
	for _, f := range p.filters {
		s = f(s)
	}
	return s
}

// Tokens runs the pipeline and splits the result on whitespace,
// preserving left-to-right token order.
func (p *Pipeline) Tokens(s string) []string {
	return strings.Fields(p.Run(s))
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int { return len(p.filters) }

// PreprocessString applies the default pipeline to one document and
// returns its token sequence.
func PreprocessString(s string) []string {
	return Default().Tokens(s)
}

// PreprocessDocuments applies the default pipeline to each document
// independently. Document order is preserved.
func PreprocessDocuments(docs []string) [][]string {
	p := Default()
	out := make([][]string, len(docs))
	for i, d := range docs {
		out[i] = p.Tokens(d)
	}
	return out
}
