// CLAUDE:SUMMARY Vowel/consonant classification and syllable-measure primitives used by the suffix-stripping rules.
package stem

// isVowel reports whether the rune at position i of w acts as a vowel.
// a, e, i, o, u are always vowels; y is a vowel when it follows a
// consonant (as in "sky" or "happy"). Every other rune, including
// anything outside the ASCII alphabet, classifies as a consonant so the
// predicate is total.
func isVowel(w []rune, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return i > 0 && !isVowel(w, i-1)
	}
	return false
}

// hasVowel reports whether w contains at least one vowel.
func hasVowel(w []rune) bool {
	for i := range w {
		if isVowel(w, i) {
			return true
		}
	}
	return false
}

// measure counts the vowel-consonant sequences in w. Writing vowel runs
// as V and consonant runs as C, every word has the form [C]VCVC...[V],
// and measure returns the number of VC pairs. It is the syllable-like
// quantity the rule tables use as their minimum-stem condition.
func measure(w []rune) int {
	m := 0
	i := 0
	for i < len(w) && !isVowel(w, i) {
		i++
	}
	for i < len(w) {
		for i < len(w) && isVowel(w, i) {
			i++
		}
		if i == len(w) {
			break
		}
		for i < len(w) && !isVowel(w, i) {
			i++
		}
		m++
	}
	return m
}

// endsDoubleConsonant reports whether w ends in two identical consonants.
func endsDoubleConsonant(w []rune) bool {
	n := len(w)
	if n < 2 || w[n-1] != w[n-2] {
		return false
	}
	return !isVowel(w, n-1)
}

// endsCVC reports whether w ends consonant-vowel-consonant where the
// final consonant is not w, x or y. Stems with this shape get a trailing
// e restored after stripping (hop-ing -> hop -> hope).
func endsCVC(w []rune) bool {
	n := len(w)
	if n < 3 {
		return false
	}
	if isVowel(w, n-1) || !isVowel(w, n-2) || isVowel(w, n-3) {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}
