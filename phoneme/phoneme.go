// Package phoneme defines the ARPABET segment type and its classification
// tables. All tables are initialized once and never mutated, so they are safe
// to read from any number of goroutines.
package phoneme

import "strings"

// Phoneme is a single ARPABET segment. Vowels may carry a trailing stress
// digit (0 unstressed, 1 primary, 2 secondary); bare vowel forms without a
// digit are legacy but valid. Consonants never carry stress. Phonemes are
// compared by exact symbol+stress equality.
type Phoneme string

// vowelRoots is the vowel inventory without stress marking.
var vowelRoots = []Phoneme{
	"AA", "AE", "AH", "AO", "AW", "AY",
	"EH", "ER", "EY",
	"IH", "IY",
	"OW", "OY",
	"UH", "UW",
}

// vowels holds every vowel root crossed with the stress suffixes
// {none, 0, 1, 2}.
var vowels = func() map[Phoneme]bool {
	m := make(map[Phoneme]bool, len(vowelRoots)*4)
	for _, root := range vowelRoots {
		m[root] = true
		m[root+"0"] = true
		m[root+"1"] = true
		m[root+"2"] = true
	}
	return m
}()

// lax holds the stressed forms of the lax vowel subset. Only the
// syllabifier's Alaska rule consults it.
var lax = map[Phoneme]bool{
	"IH1": true, "IH2": true,
	"EH1": true, "EH2": true,
	"AE1": true, "AE2": true,
	"AH1": true, "AH2": true,
	"UH1": true, "UH2": true,
}

// IsVowel reports whether p is a vowel in any stress form.
func (p Phoneme) IsVowel() bool { return vowels[p] }

// IsLax reports whether p is a stressed lax vowel.
func (p Phoneme) IsLax() bool { return lax[p] }

// Stress returns the marked stress level (0, 1 or 2). ok is false for
// consonants and bare vowel forms.
func (p Phoneme) Stress() (level int, ok bool) {
	if len(p) == 0 {
		return 0, false
	}
	switch p[len(p)-1] {
	case '0':
		return 0, true
	case '1':
		return 1, true
	case '2':
		return 2, true
	}
	return 0, false
}

// Destress returns p without its stress digit, or p unchanged if unmarked.
func (p Phoneme) Destress() Phoneme {
	if _, ok := p.Stress(); ok {
		return p[:len(p)-1]
	}
	return p
}

// Split parses a space-separated phoneme string such as "HH AH0 L OW1".
func Split(s string) []Phoneme {
	fields := strings.Fields(s)
	ps := make([]Phoneme, len(fields))
	for i, f := range fields {
		ps[i] = Phoneme(f)
	}
	return ps
}

// Join renders a phoneme sequence space-separated.
func Join(ps []Phoneme) string {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = string(p)
	}
	return strings.Join(ss, " ")
}
