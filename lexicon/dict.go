// Package lexicon loads pronunciation dictionaries in the CMU Pronouncing
// Dictionary format.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/phonolab/syllabify-go/phoneme"
)

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word     string
	Variant  int // 1-based alternative pronunciation number
	Phonemes []phoneme.Phoneme
}

// Dictionary holds word-to-pronunciation mappings. Words are stored and
// looked up lowercase.
type Dictionary struct {
	Entries map[string][]Entry // word -> list of alternative pronunciations
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add adds a pronunciation entry to the dictionary.
func (d *Dictionary) Add(word string, variant int, phonemes []phoneme.Phoneme) {
	word = strings.ToLower(word)
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:     word,
		Variant:  variant,
		Phonemes: phonemes,
	})
}

// Load reads a pronunciation dictionary in cmudict format:
//
//	WORD  PH PH PH ...
//	WORD(2)  PH PH PH ...
//
// A parenthesized number marks an alternative pronunciation. Lines starting
// with ";;;" are comments.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and phonemes, got %q", lineNum, line)
		}

		word := fields[0]
		variant := 1
		if i := strings.IndexByte(word, '('); i >= 0 && strings.HasSuffix(word, ")") {
			n, err := strconv.Atoi(word[i+1 : len(word)-1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad variant marker in %q", lineNum, word)
			}
			variant = n
			word = word[:i]
		}

		phonemes := make([]phoneme.Phoneme, len(fields)-1)
		for i, f := range fields[1:] {
			phonemes[i] = phoneme.Phoneme(f)
		}

		d.Add(word, variant, phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path. Files ending in
// .gz are decompressed transparently.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return Load(r)
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[strings.ToLower(word)]
}

// PhonemeSequence returns the phoneme sequence for a word (first pronunciation).
func (d *Dictionary) PhonemeSequence(word string) ([]phoneme.Phoneme, bool) {
	entries := d.Lookup(word)
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0].Phonemes, true
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	return words
}
