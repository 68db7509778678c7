package lexicon

import "github.com/phonolab/syllabify-go/phoneme"

// PhonemeEditDistance computes the Levenshtein edit distance between two
// phoneme sequences. Segments compare by exact symbol+stress equality, so
// AE1 and AE2 count as a substitution.
func PhonemeEditDistance(a, b []phoneme.Phoneme) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rows, swapped each pass, keep the DP at O(len(b)) memory.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, pa := range a {
		cur[0] = i + 1
		for j, pb := range b {
			best := prev[j+1] + 1 // deletion
			if ins := cur[j] + 1; ins < best {
				best = ins
			}
			sub := prev[j]
			if pa != pb {
				sub++
			}
			if sub < best {
				best = sub
			}
			cur[j+1] = best
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Nearest returns the dictionary word whose pronunciation is closest to pron
// by phoneme edit distance, considering every variant. ok is false for an
// empty dictionary.
func (d *Dictionary) Nearest(pron []phoneme.Phoneme) (word string, dist int, ok bool) {
	best := -1
	for w, entries := range d.Entries {
		for _, e := range entries {
			if dd := PhonemeEditDistance(pron, e.Phonemes); best < 0 || dd < best {
				best = dd
				word = w
			}
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return word, best, true
}
