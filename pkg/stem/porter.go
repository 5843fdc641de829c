// Package stem reduces English words to their morphological stems with a
// staged suffix-stripping engine in the style of Porter (1980).
//
// The engine runs a fixed sequence of stages over a lowercase word.
// Each stage evaluates its rules longest-suffix-first and applies the
// first rule whose minimum-measure condition holds on the remaining
// stem; a stage with no matching rule is a no-op. Stages only remove
// characters, except where the algorithm restores a single trailing e
// after undoubling.
//
// Words of one or two characters are returned unchanged. The published
// algorithm makes no mention of this, but such inputs carry no
// morphology and rule application would corrupt them.
//
// All functions are pure and safe for concurrent use.
package stem

import "strings"

// rule rewrites a suffix to a replacement when the measure of the stem
// left after removing the suffix is strictly greater than minMeasure.
type rule struct {
	suffix     string
	repl       string
	minMeasure int
}

// The derivational rule tables. Within each table rules are ordered
// longest suffix first so the first match is the longest match; ties
// keep table order. The tables are never mutated.
var step2Rules = []rule{
	{"ization", "ize", 0},
	{"ational", "ate", 0},
	{"fulness", "ful", 0},
	{"ousness", "ous", 0},
	{"iveness", "ive", 0},
	{"tional", "tion", 0},
	{"biliti", "ble", 0},
	{"ation", "ate", 0},
	{"alism", "al", 0},
	{"aliti", "al", 0},
	{"iviti", "ive", 0},
	{"entli", "ent", 0},
	{"ousli", "ous", 0},
	{"enci", "ence", 0},
	{"anci", "ance", 0},
	{"izer", "ize", 0},
	{"abli", "able", 0},
	{"alli", "al", 0},
	{"ator", "ate", 0},
	{"eli", "e", 0},
}

var step3Rules = []rule{
	{"icate", "ic", 0},
	{"ative", "", 0},
	{"alize", "al", 0},
	{"iciti", "ic", 0},
	{"ical", "ic", 0},
	{"ness", "", 0},
	{"ful", "", 0},
}

var step4Rules = []rule{
	{"ement", "", 1},
	{"ance", "", 1},
	{"ence", "", 1},
	{"able", "", 1},
	{"ible", "", 1},
	{"ment", "", 1},
	{"ant", "", 1},
	{"ent", "", 1},
	{"ion", "", 1}, // only after s or t, see applyRules
	{"ism", "", 1},
	{"ate", "", 1},
	{"iti", "", 1},
	{"ous", "", 1},
	{"ive", "", 1},
	{"ize", "", 1},
	{"al", "", 1},
	{"er", "", 1},
	{"ic", "", 1},
	{"ou", "", 1},
}

// Word stems a single lowercase word. It is total: every input maps to
// exactly one output, the empty string stems to itself, and the result
// is never longer than the input. Callers are responsible for case
// folding; uppercase letters simply never match the rule tables.
func Word(w string) string {
	if len(w) <= 2 {
		return w
	}
	r := []rune(w)
	if len(r) <= 2 {
		return w
	}
	r = step1a(r)
	r = step1b(r)
	r = step1c(r)
	r = applyRules(r, step2Rules)
	r = applyRules(r, step3Rules)
	r = applyRules(r, step4Rules)
	r = step5a(r)
	r = step5b(r)
	return string(r)
}

// Sentence lowercases txt, stems each whitespace-separated word and
// rejoins with single spaces.
func Sentence(txt string) string {
	words := strings.Fields(txt)
	for i, w := range words {
		words[i] = Word(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// Documents stems each document independently. Order of documents is
// preserved; they share no state and may equally be stemmed in parallel
// by the caller.
func Documents(docs []string) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = Sentence(d)
	}
	return out
}

func hasSuffix(w []rune, s string) bool {
	if len(w) < len(s) {
		return false
	}
	return string(w[len(w)-len(s):]) == s
}

// applyRules runs one rule table over w: first (longest) matching suffix
// wins, and the rewrite fires only if the stem measure clears the rule's
// threshold. A matched suffix that fails its condition still ends the
// stage — later rules in the same table are shorter suffixes of the same
// ending and must not fire instead.
func applyRules(w []rune, rules []rule) []rune {
	for _, rl := range rules {
		if !hasSuffix(w, rl.suffix) {
			continue
		}
		st := w[:len(w)-len(rl.suffix)]
		if rl.suffix == "ion" && !(len(st) > 0 && (st[len(st)-1] == 's' || st[len(st)-1] == 't')) {
			return w
		}
		if measure(st) > rl.minMeasure {
			return append(st, []rune(rl.repl)...)
		}
		return w
	}
	return w
}

// step1a strips plural endings: sses -> ss, ies -> i, lone s dropped,
// ss kept.
func step1a(w []rune) []rune {
	switch {
	case hasSuffix(w, "sses"):
		return w[:len(w)-2]
	case hasSuffix(w, "ies"):
		return w[:len(w)-2]
	case hasSuffix(w, "ss"):
		return w
	case hasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

// step1b strips verb endings -eed, -ed and -ing. Stripping -ed or -ing
// triggers the cleanup pass; -eed does not. This conditionality is load
// bearing and is why the stage cannot be collapsed into the rule tables.
func step1b(w []rune) []rune {
	if hasSuffix(w, "eed") {
		if st := w[:len(w)-3]; measure(st) > 0 {
			return w[:len(w)-1]
		}
		return w
	}
	if hasSuffix(w, "ed") {
		if st := w[:len(w)-2]; hasVowel(st) {
			return step1bCleanup(st)
		}
		return w
	}
	if hasSuffix(w, "ing") {
		if st := w[:len(w)-3]; hasVowel(st) {
			return step1bCleanup(st)
		}
		return w
	}
	return w
}

// step1bCleanup repairs a stem that just lost -ed or -ing: conflat-
// endings get their e back, a trailing doubled consonant (other than
// l, s, z) is undoubled, and a short CVC stem gets a final e (hopping
// -> hop, filing -> file via hope/file shapes).
func step1bCleanup(w []rune) []rune {
	if hasSuffix(w, "at") || hasSuffix(w, "bl") || hasSuffix(w, "iz") {
		return append(w, 'e')
	}
	if endsDoubleConsonant(w) {
		switch w[len(w)-1] {
		case 'l', 's', 'z':
		default:
			return w[:len(w)-1]
		}
	}
	if measure(w) == 1 && endsCVC(w) {
		return append(w, 'e')
	}
	return w
}

// step1c turns a final y into i when the stem contains a vowel
// (happy -> happi, but sky stays sky).
func step1c(w []rune) []rune {
	if hasSuffix(w, "y") && hasVowel(w[:len(w)-1]) {
		w[len(w)-1] = 'i'
	}
	return w
}

// step5a drops a final e unless the stem is too short or ends CVC.
func step5a(w []rune) []rune {
	if !hasSuffix(w, "e") {
		return w
	}
	st := w[:len(w)-1]
	m := measure(st)
	if m > 1 || (m == 1 && !endsCVC(st)) {
		return st
	}
	return w
}

// step5b undoubles a final ll on long stems (controll -> control).
func step5b(w []rune) []rune {
	if hasSuffix(w, "ll") && measure(w) > 1 {
		return w[:len(w)-1]
	}
	return w
}
