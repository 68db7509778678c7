package syllabify

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonolab/syllabify-go/lexicon"
	"github.com/phonolab/syllabify-go/phoneme"
)

const testDict = `;;; test slice of cmudict
ALASKA  AH0 L AE1 S K AH0
CAT  K AE1 T
HELLO  HH AH0 L OW1
STR  S T R
`

func testAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	d, err := lexicon.Load(strings.NewReader(testDict))
	require.NoError(t, err)
	a, err := NewAnalyzer("", append([]Option{WithDictionary(d)}, opts...)...)
	require.NoError(t, err)
	return a
}

func TestAnalyzeWord(t *testing.T) {
	a := testAnalyzer(t)

	res, err := a.AnalyzeWord("cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", res.Word)
	assert.Equal(t, phoneme.Split("K AE1 T"), res.Pronunciation)
	assert.Equal(t, "K-AE1-T", res.Pretty)
	assert.Equal(t, 2, res.Score)
}

func TestAnalyzeWordUnknown(t *testing.T) {
	a := testAnalyzer(t)

	_, err := a.AnalyzeWord("xylophone")
	assert.ErrorIs(t, err, ErrNotInDictionary)
}

func TestAnalyzeWordNoDictionary(t *testing.T) {
	a, err := NewAnalyzer("")
	require.NoError(t, err)

	_, err = a.AnalyzeWord("cat")
	assert.ErrorIs(t, err, ErrNoDictionary)
}

func TestAlaskaRuleOption(t *testing.T) {
	on := testAnalyzer(t)
	res, err := on.AnalyzeWord("alaska")
	require.NoError(t, err)
	assert.Equal(t, "AH0.L-AE1-S.K-AH0", res.Pretty)

	off := testAnalyzer(t, WithAlaskaRule(false))
	res, err = off.AnalyzeWord("alaska")
	require.NoError(t, err)
	assert.Equal(t, "AH0.L-AE1.S K-AH0", res.Pretty)
}

func TestAnalyzePronunciation(t *testing.T) {
	a, err := NewAnalyzer("")
	require.NoError(t, err)

	res, err := a.AnalyzePronunciation(phoneme.Split("HH AH0 L OW1"))
	require.NoError(t, err)
	assert.Equal(t, "HH-AH0.L-OW1", res.Pretty)
	assert.Len(t, res.Syllables, 2)
}

func TestAnalyzeBatch(t *testing.T) {
	a := testAnalyzer(t)

	words := []string{"cat", "unknown", "hello", "str"}
	results := a.AnalyzeBatch(context.Background(), words, 2)
	require.Len(t, results, 4)

	// Results stay in input order.
	for i, w := range words {
		assert.Equal(t, w, results[i].Word)
	}

	require.NotNil(t, results[0].Analysis)
	assert.Equal(t, 2, results[0].Analysis.Score)

	// An unknown word is a per-word failure, not a batch failure.
	assert.ErrorIs(t, results[1].Err, ErrNotInDictionary)

	require.NotNil(t, results[2].Analysis)

	// A vowelless pronunciation fails syllabification but only for its word.
	assert.Error(t, results[3].Err)
	assert.Nil(t, results[3].Analysis)
}

func TestAnalyzeBatchCancelled(t *testing.T) {
	a := testAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := a.AnalyzeBatch(ctx, []string{"cat", "hello"}, 1)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestNewAnalyzerMissingDictFile(t *testing.T) {
	_, err := NewAnalyzer("/nonexistent/cmudict.txt")
	assert.Error(t, err)
}
