// Package wcm implements the Word Complexity Measure of Stoel-Gammon (2010),
// an additive phonological complexity score over word-level, syllable-level
// and segment-class patterns.
package wcm

import (
	"errors"

	"github.com/phonolab/syllabify-go/phoneme"
	"github.com/phonolab/syllabify-go/syllable"
)

// Segment classes scored by the measure. Voiced fricatives and affricates
// score under both the general and the voiced class; the published point
// table double-counts them.
var (
	dorsals = map[phoneme.Phoneme]bool{"K": true, "G": true, "NG": true}
	liquids = map[phoneme.Phoneme]bool{"L": true, "R": true}

	voicedFricatives = map[phoneme.Phoneme]bool{
		"V": true, "DH": true, "Z": true, "ZH": true,
	}
	fricatives = map[phoneme.Phoneme]bool{
		"F": true, "TH": true, "S": true, "SH": true, "CH": true,
		"V": true, "DH": true, "Z": true, "ZH": true,
	}
)

// ErrNoSyllables is returned for an empty syllabification; the word-final
// consonant check is undefined without a last syllable.
var ErrNoSyllables = errors.New("wcm: no syllables")

// Score computes the WCM of a syllabified word. The input must be a
// successfully produced syllabification.
func Score(syllables []syllable.Syllable) (int, error) {
	if len(syllables) == 0 {
		return 0, ErrNoSyllables
	}
	score := 0

	// Word patterns: more than two syllables, and primary stress anywhere
	// but the first syllable (monosyllables are skipped; the leading nucleus
	// phoneme carries the marker).
	if len(syllables) > 2 {
		score++
	}
	if len(syllables) > 1 {
		for _, s := range syllables[1:] {
			if level, ok := s.Nucleus[0].Stress(); ok && level == 1 {
				score++
				break
			}
		}
	}

	// Syllable structures: word-final consonant, onset and coda clusters.
	if len(syllables[len(syllables)-1].Coda) > 0 {
		score++
	}
	for _, s := range syllables {
		if len(s.Onset) > 1 {
			score++
		}
		if len(s.Coda) > 1 {
			score++
		}
	}

	// Sound classes, per occurrence over each syllable's onset and coda.
	for _, s := range syllables {
		for _, group := range [2][]phoneme.Phoneme{s.Onset, s.Coda} {
			for _, p := range group {
				if dorsals[p] {
					score++
				}
				if liquids[p] {
					score++
				}
				if fricatives[p] {
					score++
				}
				if voicedFricatives[p] {
					score++
				}
			}
		}
	}

	return score, nil
}

// ScorePronunciation syllabifies pron with the default options and scores it.
func ScorePronunciation(pron []phoneme.Phoneme) (int, error) {
	syllables, err := syllable.Syllabify(pron)
	if err != nil {
		return 0, err
	}
	return Score(syllables)
}
