// wcmbatch scores every word of a word list against a pronunciation
// dictionary and writes word, syllabification and WCM score as TSV to stdout.
// Words that cannot be looked up or syllabified are logged and skipped.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	syllabify "github.com/phonolab/syllabify-go"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (env vars override)")
	flag.Parse()

	cfg, err := LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.DictPath == "" || cfg.WordsPath == "" {
		log.Error("dict_path and words_path are required")
		os.Exit(1)
	}

	analyzer, err := syllabify.NewAnalyzer(cfg.DictPath, syllabify.WithAlaskaRule(cfg.AlaskaRule))
	if err != nil {
		log.Error("load dictionary", slog.String("path", cfg.DictPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("dictionary loaded",
		slog.String("path", cfg.DictPath),
		slog.Int("words", len(analyzer.Dict.Entries)),
	)

	words, err := readWords(cfg.WordsPath)
	if err != nil {
		log.Error("read word list", slog.String("path", cfg.WordsPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	results := analyzer.AnalyzeBatch(context.Background(), words, cfg.Workers)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	skipped := 0
	for _, r := range results {
		if r.Err != nil {
			skipped++
			log.Warn("skip word", slog.String("word", r.Word), slog.String("error", r.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Word, r.Analysis.Pretty, r.Analysis.Score)
	}

	log.Info("done",
		slog.Int("scored", len(results)-skipped),
		slog.Int("skipped", skipped),
	)
}

// readWords reads a word-per-line list. Blank lines and lines starting with
// "#" are ignored.
func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
