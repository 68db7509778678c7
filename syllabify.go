// Package syllabify ties a pronunciation lexicon to the syllabifier and the
// word complexity scorer.
package syllabify

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/phonolab/syllabify-go/lexicon"
	"github.com/phonolab/syllabify-go/phoneme"
	"github.com/phonolab/syllabify-go/syllable"
	"github.com/phonolab/syllabify-go/wcm"
)

// Analyzer is the top-level word analyzer.
type Analyzer struct {
	Dict *lexicon.Dictionary
	Opts syllable.Options
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAlaskaRule toggles the Alaska rule (enabled by default).
func WithAlaskaRule(enabled bool) Option {
	return func(a *Analyzer) {
		a.Opts.AlaskaRule = enabled
	}
}

// WithDictionary attaches an already-loaded dictionary.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(a *Analyzer) {
		a.Dict = d
	}
}

// NewAnalyzer creates an Analyzer. dictPath may be empty when a dictionary is
// supplied via WithDictionary or when only AnalyzePronunciation is used.
func NewAnalyzer(dictPath string, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{Opts: syllable.DefaultOptions()}
	for _, opt := range opts {
		opt(a)
	}
	if dictPath != "" {
		d, err := lexicon.LoadFile(dictPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
		a.Dict = d
	}
	return a, nil
}

// Analysis holds the full result for one word.
type Analysis struct {
	Word          string
	Pronunciation []phoneme.Phoneme
	Syllables     []syllable.Syllable
	Pretty        string
	Score         int
}

// ErrNotInDictionary is returned by AnalyzeWord for unknown words.
var ErrNotInDictionary = errors.New("word not in dictionary")

// ErrNoDictionary is returned by AnalyzeWord when no dictionary is loaded.
var ErrNoDictionary = errors.New("no dictionary loaded")

// AnalyzePronunciation syllabifies and scores a raw phoneme sequence.
func (a *Analyzer) AnalyzePronunciation(pron []phoneme.Phoneme) (*Analysis, error) {
	syllables, err := syllable.SyllabifyWith(pron, a.Opts)
	if err != nil {
		return nil, err
	}
	score, err := wcm.Score(syllables)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Pronunciation: pron,
		Syllables:     syllables,
		Pretty:        syllable.PrettyPrint(syllables),
		Score:         score,
	}, nil
}

// AnalyzeWord looks a word up and analyzes its first pronunciation.
func (a *Analyzer) AnalyzeWord(word string) (*Analysis, error) {
	if a.Dict == nil {
		return nil, ErrNoDictionary
	}
	pron, ok := a.Dict.PhonemeSequence(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotInDictionary, word)
	}
	res, err := a.AnalyzePronunciation(pron)
	if err != nil {
		return nil, err
	}
	res.Word = word
	return res, nil
}

// BatchResult pairs a word with its analysis or its failure.
type BatchResult struct {
	Word     string
	Analysis *Analysis
	Err      error
}

// AnalyzeBatch analyzes words concurrently with at most workers goroutines.
// Words are independent, so per-word failures are recorded in the result and
// never abort the batch; a cancelled context marks the remaining words.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, words []string, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{Word: word, Err: err}
				return nil
			}
			res, err := a.AnalyzeWord(word)
			results[i] = BatchResult{Word: word, Analysis: res, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}
