// Package syllable parses ARPABET pronunciations into onset/nucleus/coda
// syllable structure.
package syllable

import (
	"strings"

	"github.com/phonolab/syllabify-go/phoneme"
)

// Syllable is one syllable of a pronunciation. Nucleus normally holds exactly
// one vowel; after resolution it may also carry a borrowed liquid (a
// rhotacized offglide) or lead with a borrowed glide (palatalization).
type Syllable struct {
	Onset   []phoneme.Phoneme
	Nucleus []phoneme.Phoneme
	Coda    []phoneme.Phoneme
}

// Destress returns a copy of the syllabification with stress digits stripped
// from every nucleus phoneme. The input is not modified; onset and coda
// slices are shared, since consonants never carry stress.
func Destress(syllables []Syllable) []Syllable {
	out := make([]Syllable, len(syllables))
	for i, s := range syllables {
		nucleus := make([]phoneme.Phoneme, len(s.Nucleus))
		for j, p := range s.Nucleus {
			nucleus[j] = p.Destress()
		}
		out[i] = Syllable{Onset: s.Onset, Nucleus: nucleus, Coda: s.Coda}
	}
	return out
}

// PrettyPrint renders a syllabification in human-readable form: segments are
// space-joined, onset/nucleus/coda are hyphen-joined with empty parts
// omitted, and syllables are period-joined.
func PrettyPrint(syllables []Syllable) string {
	parts := make([]string, len(syllables))
	for i, s := range syllables {
		var segs []string
		for _, group := range [3][]phoneme.Phoneme{s.Onset, s.Nucleus, s.Coda} {
			if len(group) > 0 {
				segs = append(segs, phoneme.Join(group))
			}
		}
		parts[i] = strings.Join(segs, "-")
	}
	return strings.Join(parts, ".")
}
