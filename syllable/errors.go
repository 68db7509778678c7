package syllable

import (
	"fmt"

	"github.com/phonolab/syllabify-go/phoneme"
)

// InvalidInputError reports malformed resolver input: empty or
// length-mismatched nucleus/onset groups.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "syllabify: invalid input: " + e.Reason
}

// SyllabificationError reports that the rule pipeline produced syllables
// whose flattened segments do not reproduce the input pronunciation.
type SyllabificationError struct {
	Input     []phoneme.Phoneme
	Flattened []phoneme.Phoneme
}

func (e *SyllabificationError) Error() string {
	return fmt.Sprintf("syllabify: could not syllabify %q: syllabified output %q",
		phoneme.Join(e.Input), phoneme.Join(e.Flattened))
}
