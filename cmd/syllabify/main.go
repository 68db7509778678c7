package main

import (
	"flag"
	"fmt"
	"os"

	syllabify "github.com/phonolab/syllabify-go"
	"github.com/phonolab/syllabify-go/phoneme"
	"github.com/phonolab/syllabify-go/syllable"
)

func main() {
	dictPath := flag.String("dict", "", "path to CMU pronouncing dictionary (.gz supported)")
	alaska := flag.Bool("alaska", true, "apply the Alaska rule")
	destress := flag.Bool("destress", false, "strip stress digits from the output")
	pron := flag.String("pron", "", `analyze a raw pronunciation, e.g. "K AE1 T"`)

	flag.Parse()

	if (*pron == "" && flag.NArg() == 0) || (flag.NArg() > 0 && *dictPath == "") {
		fmt.Fprintln(os.Stderr, "Usage: syllabify -dict cmudict.txt WORD [WORD...]")
		fmt.Fprintln(os.Stderr, `       syllabify -pron "HH AH0 L OW1"`)
		flag.PrintDefaults()
		os.Exit(1)
	}

	analyzer, err := syllabify.NewAnalyzer(*dictPath, syllabify.WithAlaskaRule(*alaska))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *pron != "" {
		printAnalysis(analyzer, "-", phoneme.Split(*pron), *destress)
		if analyzer.Dict != nil {
			if word, dist, ok := analyzer.Dict.Nearest(phoneme.Split(*pron)); ok {
				fmt.Fprintf(os.Stderr, "sounds like %q (distance %d)\n", word, dist)
			}
		}
	}

	for _, word := range flag.Args() {
		p, ok := analyzer.Dict.PhonemeSequence(word)
		if !ok {
			fmt.Fprintf(os.Stderr, "skip %s: not in dictionary\n", word)
			continue
		}
		printAnalysis(analyzer, word, p, *destress)
	}
}

func printAnalysis(a *syllabify.Analyzer, word string, pron []phoneme.Phoneme, destress bool) {
	res, err := a.AnalyzePronunciation(pron)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skip %s: %v\n", word, err)
		return
	}
	pretty := res.Pretty
	if destress {
		pretty = syllable.PrettyPrint(syllable.Destress(res.Syllables))
	}
	fmt.Printf("%s\t%s\t%d\n", word, pretty, res.Score)
}
