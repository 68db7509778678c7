package syllable

import (
	"fmt"
	"slices"

	"github.com/phonolab/syllabify-go/phoneme"
)

// Options configure syllabification.
type Options struct {
	// AlaskaRule moves the leading S of a medial cluster into the preceding
	// syllable's coda when that syllable's nucleus is a stressed lax vowel.
	AlaskaRule bool
}

// DefaultOptions enables the Alaska rule.
func DefaultOptions() Options { return Options{AlaskaRule: true} }

// Syllabify parses a pronunciation with the default options.
func Syllabify(pron []phoneme.Phoneme) ([]Syllable, error) {
	return SyllabifyWith(pron, DefaultOptions())
}

// SyllabifyWith parses a pronunciation into syllables. An empty input yields
// an empty syllabification. A non-empty input with no vowel cannot anchor a
// syllable and fails with *SyllabificationError, as does any input the rule
// pipeline cannot reassemble exactly.
func SyllabifyWith(pron []phoneme.Phoneme, opts Options) ([]Syllable, error) {
	nuclei, onsets, tail := segment(pron)
	if len(nuclei) == 0 {
		if len(pron) == 0 {
			return []Syllable{}, nil
		}
		return nil, &SyllabificationError{Input: pron}
	}

	codas, err := resolve(nuclei, onsets, opts)
	if err != nil {
		return nil, err
	}

	syllables := make([]Syllable, len(nuclei))
	for i := range nuclei {
		syllables[i] = Syllable{Onset: onsets[i], Nucleus: nuclei[i], Coda: codas[i]}
	}
	last := &syllables[len(syllables)-1]
	last.Coda = append(last.Coda, tail...)

	// The rules above are hand-authored special cases, not a provably closed
	// grammar: verify that no phoneme was dropped, duplicated or reordered.
	flat := flatten(syllables)
	if !slices.Equal(flat, pron) {
		return nil, &SyllabificationError{Input: pron, Flattened: flat}
	}
	return syllables, nil
}

// segment scans the pronunciation once, emitting a one-phoneme nucleus group
// per vowel and the consonants since the previous vowel as that syllable's
// raw onset. The residual tail after the last vowel is returned separately.
// No consonant classification happens here.
func segment(pron []phoneme.Phoneme) (nuclei, onsets [][]phoneme.Phoneme, tail []phoneme.Phoneme) {
	lastVowel := -1
	for i, seg := range pron {
		if seg.IsVowel() {
			nuclei = append(nuclei, []phoneme.Phoneme{seg})
			onsets = append(onsets, pron[lastVowel+1:i:i])
			lastVowel = i
		}
	}
	tail = pron[lastVowel+1:]
	return nuclei, onsets, tail
}

// resolve applies the ordered medial-onset rules and onset maximization.
// The word-initial onset (index 0) is final as-is. The coda produced at
// position i belongs to syllable i-1; the returned slice is indexed by the
// syllable the coda attaches to.
func resolve(nuclei, onsets [][]phoneme.Phoneme, opts Options) ([][]phoneme.Phoneme, error) {
	if len(nuclei) == 0 || len(onsets) == 0 {
		return nil, &InvalidInputError{Reason: "empty nucleus or onset groups"}
	}
	if len(nuclei) != len(onsets) {
		return nil, &InvalidInputError{
			Reason: fmt.Sprintf("%d nucleus groups but %d onset groups", len(nuclei), len(onsets)),
		}
	}

	codas := make([][]phoneme.Phoneme, len(onsets))
	for i := 1; i < len(onsets); i++ {
		onset := onsets[i]
		var coda []phoneme.Phoneme

		// A leading R after a vowel is a rhotacized offglide: it joins the
		// preceding nucleus before the remaining rules see the cluster.
		if len(onset) > 1 && onset[0] == "R" {
			nuclei[i-1] = append(nuclei[i-1], onset[0])
			onset = onset[1:]
		}
		// A trailing Y in a long cluster is palatalization realized with the
		// following nucleus.
		if len(onset) > 2 && onset[len(onset)-1] == "Y" {
			nuclei[i] = append([]phoneme.Phoneme{onset[len(onset)-1]}, nuclei[i]...)
			onset = onset[:len(onset)-1]
		}
		// Alaska rule: a stressed lax vowel attracts a following S into its
		// coda rather than the next syllable's onset.
		if opts.AlaskaRule && len(onset) > 1 && onset[0] == "S" {
			if prev := nuclei[i-1]; prev[len(prev)-1].IsLax() {
				coda = append(coda, onset[0])
				onset = onset[1:]
			}
		}

		// Onset maximization: keep the longest licit cluster with this
		// syllable. A single consonant is always a licit onset; the triple
		// table is only a refinement of a matched pair.
		depth := 1
		if n := len(onset); n > 1 {
			if onsetPairs[[2]phoneme.Phoneme{onset[n-2], onset[n-1]}] {
				depth = 2
				if n > 2 && onsetTriples[[3]phoneme.Phoneme{onset[n-3], onset[n-2], onset[n-1]}] {
					depth = 3
				}
			}
		}
		for len(onset) > depth {
			coda = append(coda, onset[0])
			onset = onset[1:]
		}

		onsets[i] = onset
		codas[i-1] = coda
	}
	return codas, nil
}

func flatten(syllables []Syllable) []phoneme.Phoneme {
	var flat []phoneme.Phoneme
	for _, s := range syllables {
		flat = append(flat, s.Onset...)
		flat = append(flat, s.Nucleus...)
		flat = append(flat, s.Coda...)
	}
	return flat
}
