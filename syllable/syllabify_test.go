package syllable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonolab/syllabify-go/phoneme"
)

func TestSyllabify(t *testing.T) {
	tests := []struct {
		name string
		pron string
		want string
	}{
		// The Alaska rule moves the S onto the lax AE1.
		{"alaska", "AH0 L AE1 S K AH0", "AH0.L-AE1-S.K-AH0"},
		{"cat", "K AE1 T", "K-AE1-T"},
		{"hello", "HH AH0 L OW1", "HH-AH0.L-OW1"},
		// Full depth-3 medial onset (S T R) plus an R borrowed into the
		// first nucleus.
		{"orchestra", "AO1 R K AH0 S T R AH0", "AO1 R.K-AH0.S T R-AH0"},
		// Trailing Y of a 3-consonant cluster joins the following nucleus.
		{"costume", "K AA1 S T Y UW2 M", "K-AA1.S T-Y UW2-M"},
		// Illicit medial pair (M Y) keeps only a single-consonant onset.
		{"communion", "K AH0 M Y UW1 N Y AH0 N", "K-AH0-M.Y-UW1-N.Y-AH0-N"},
		// Residual tail always lands on the last coda.
		{"hand", "HH AE1 N D", "HH-AE1-N D"},
		{"eye", "AY1", "AY1"},
		{"frustrating", "F R AH1 S T R EY2 T IH0 NG", "F R-AH1-S.T R-EY2.T-IH0-NG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pron := phoneme.Split(tt.pron)
			syllables, err := Syllabify(pron)
			require.NoError(t, err)
			assert.Equal(t, tt.want, PrettyPrint(syllables))
		})
	}
}

func TestSyllabifyCat(t *testing.T) {
	syllables, err := Syllabify(phoneme.Split("K AE1 T"))
	require.NoError(t, err)
	require.Len(t, syllables, 1)
	assert.Equal(t, phoneme.Split("K"), syllables[0].Onset)
	assert.Equal(t, phoneme.Split("AE1"), syllables[0].Nucleus)
	assert.Equal(t, phoneme.Split("T"), syllables[0].Coda)
}

func TestAlaskaRuleToggle(t *testing.T) {
	pron := phoneme.Split("AH0 L AE1 S K AH0")

	on, err := SyllabifyWith(pron, Options{AlaskaRule: true})
	require.NoError(t, err)
	assert.Equal(t, "AH0.L-AE1-S.K-AH0", PrettyPrint(on))

	// With the rule off the S K cluster stays a licit two-consonant onset.
	off, err := SyllabifyWith(pron, Options{AlaskaRule: false})
	require.NoError(t, err)
	assert.Equal(t, "AH0.L-AE1.S K-AH0", PrettyPrint(off))
	for _, s := range off {
		assert.Empty(t, s.Coda)
	}
}

func TestSyllabifyEmpty(t *testing.T) {
	syllables, err := Syllabify(nil)
	require.NoError(t, err)
	assert.Empty(t, syllables)
}

func TestSyllabifyNoVowel(t *testing.T) {
	_, err := Syllabify(phoneme.Split("S T R"))
	var serr *SyllabificationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, phoneme.Split("S T R"), serr.Input)
}

func TestRoundTrip(t *testing.T) {
	prons := []string{
		"AH0 L AE1 S K AH0",
		"K AE1 T",
		"HH AH0 L OW1",
		"AO1 R K AH0 S T R AH0",
		"K AA1 S T Y UW2 M",
		"F R AH1 S T R EY2 T IH0 NG",
		"IH2 N S T R AH0 M EH1 N T AH0 L",
		"S IH1 K S TH S",
		"P AH0 JH AA1 M AH0 Z",
		"K AH0 M Y UW1 N Y AH0 N",
	}
	for _, alaska := range []bool{true, false} {
		for _, s := range prons {
			pron := phoneme.Split(s)
			syllables, err := SyllabifyWith(pron, Options{AlaskaRule: alaska})
			require.NoError(t, err, "pron %q alaska=%v", s, alaska)

			assert.Equal(t, pron, flatten(syllables), "pron %q alaska=%v", s, alaska)

			vowels := 0
			for _, p := range pron {
				if p.IsVowel() {
					vowels++
				}
			}
			assert.Len(t, syllables, vowels, "pron %q", s)
		}
	}
}

func TestOnsetLegality(t *testing.T) {
	// Every multi-consonant final onset must end in a licit cluster.
	prons := []string{
		"AH0 L AE1 S K AH0",
		"AO1 R K AH0 S T R AH0",
		"IH2 N S T R AH0 M EH1 N T AH0 L",
		"EH1 K S T R AH0",
		"AE1 K T ER0",
	}
	for _, s := range prons {
		syllables, err := Syllabify(phoneme.Split(s))
		require.NoError(t, err, "pron %q", s)
		for _, syl := range syllables {
			onset := syl.Onset
			switch n := len(onset); {
			case n == 2:
				assert.True(t, onsetPairs[[2]phoneme.Phoneme{onset[0], onset[1]}],
					"pron %q: onset %v not a licit pair", s, onset)
			case n == 3:
				assert.True(t, onsetTriples[[3]phoneme.Phoneme{onset[0], onset[1], onset[2]}],
					"pron %q: onset %v not a licit triple", s, onset)
			case n > 3:
				t.Errorf("pron %q: onset %v longer than any licit cluster", s, onset)
			}
		}
	}
}

func TestOnsetTriplesExtendPairs(t *testing.T) {
	for triple := range onsetTriples {
		assert.True(t, onsetPairs[[2]phoneme.Phoneme{triple[1], triple[2]}],
			"triple %v does not extend a licit pair", triple)
	}
}

func TestResolveValidation(t *testing.T) {
	var ierr *InvalidInputError

	_, err := resolve(nil, nil, DefaultOptions())
	require.ErrorAs(t, err, &ierr)

	nuclei := [][]phoneme.Phoneme{{"AH0"}, {"AE1"}}
	onsets := [][]phoneme.Phoneme{{}}
	_, err = resolve(nuclei, onsets, DefaultOptions())
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Reason, "2 nucleus groups")
}

func TestDestress(t *testing.T) {
	syllables, err := Syllabify(phoneme.Split("HH AH0 L OW1"))
	require.NoError(t, err)

	destressed := Destress(syllables)
	assert.Equal(t, "HH-AH.L-OW", PrettyPrint(destressed))
	// Non-mutating.
	assert.Equal(t, "HH-AH0.L-OW1", PrettyPrint(syllables))
	// Idempotent.
	assert.Equal(t, destressed, Destress(destressed))
}

func TestDestressBorrowedNucleus(t *testing.T) {
	// A borrowed R in the nucleus carries no stress digit and is untouched.
	syllables, err := Syllabify(phoneme.Split("AO1 R K AH0 S T R AH0"))
	require.NoError(t, err)
	assert.Equal(t, "AO R.K-AH.S T R-AH", PrettyPrint(Destress(syllables)))
}

func TestPrettyPrint(t *testing.T) {
	tests := []struct {
		name      string
		syllables []Syllable
		want      string
	}{
		{"empty", []Syllable{}, ""},
		{
			"no dangling hyphen",
			[]Syllable{{Nucleus: phoneme.Split("AH0")}},
			"AH0",
		},
		{
			"full syllable",
			[]Syllable{{
				Onset:   phoneme.Split("S T"),
				Nucleus: phoneme.Split("AE1"),
				Coda:    phoneme.Split("M P"),
			}},
			"S T-AE1-M P",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrettyPrint(tt.syllables))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := Syllabify(phoneme.Split("S T R"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not syllabify")

	var serr *SyllabificationError
	require.True(t, errors.As(err, &serr))
}
