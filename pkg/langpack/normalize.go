// CLAUDE:SUMMARY Entry normalization strategies (lowercase+strip-accents, lowercase-only, none) applied to stopword lists at load time.
package langpack

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a stopword entry before it enters the set.
type Normalizer func(string) string

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeLowercaseASCII lowercases and strips accents, so accented
// source lists match the ASCII tokens the pipeline produces
// (e.g. aangezién -> aangezien).
func normalizeLowercaseASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// normalizeLowercaseUTF8 lowercases but preserves accents.
func normalizeLowercaseUTF8(s string) string {
	return strings.ToLower(s)
}

// normalizerFor returns the normalizer for a manifest format mode.
// Default is lowercase_ascii.
func normalizerFor(mode string) Normalizer {
	switch mode {
	case "lowercase_utf8":
		return normalizeLowercaseUTF8
	case "none":
		return func(s string) string { return s }
	default:
		return normalizeLowercaseASCII
	}
}
