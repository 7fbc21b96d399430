package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/djeday123/word2vec/dataloader"
	"github.com/djeday123/word2vec/train"
)

// ============================================================================
// cbowtrain — Train CBOW word embeddings from a plain text file
//
// One line of input is treated as one sentence; lines that tokenize to fewer
// than 2*window+1 words are skipped.
//
// Usage:
//   go run cmd/cbowtrain/main.go -input corpus.txt -window 2 -dim 64 -epochs 5
//   go run cmd/cbowtrain/main.go -input corpus.txt -min-count 5 -workers 4
// ============================================================================

func main() {
	input := flag.String("input", "", "path to plain text corpus (one sentence per line)")
	window := flag.Int("window", 2, "context words on each side of the center word")
	dim := flag.Int("dim", 64, "embedding dimension")
	epochs := flag.Int("epochs", 5, "training epochs")
	lr := flag.Float64("lr", 0.05, "learning rate")
	minCount := flag.Int("min-count", 0, "drop words occurring fewer than this many times (0 = keep all)")
	workers := flag.Int("workers", 1, "parallel training workers")
	seed := flag.Int64("seed", 1, "random seed for shuffling and init")
	topn := flag.Int("topn", 8, "neighbors to print per sample word")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	loader, err := dataloader.NewWithSeed(*window, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cbowtrain: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cbowtrain: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	lines, kept := 0, 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines++
		if loader.AddData(scanner.Text()) {
			kept++
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "cbowtrain: reading %s: %v\n", *input, err)
		os.Exit(1)
	}
	fmt.Printf("Ingested %d/%d lines, vocab %d, %d windows\n",
		kept, lines, loader.VocabSize(), loader.Size())

	if *minCount > 0 {
		loader.RemoveInfrequent(*minCount)
		fmt.Printf("After min-count %d: vocab %d, %d windows\n",
			*minCount, loader.VocabSize(), loader.Size())
	}
	if loader.Size() == 0 {
		fmt.Fprintln(os.Stderr, "cbowtrain: corpus produced no training windows")
		os.Exit(1)
	}

	cfg := train.DefaultConfig()
	cfg.EmbedDim = *dim
	cfg.LR = *lr
	cfg.Epochs = *epochs
	cfg.Workers = *workers
	cfg.Seed = *seed

	trainer := train.NewTrainer(loader, cfg)
	trainer.Train()

	for _, word := range topWords(loader, 5) {
		fmt.Printf("\nnearest(%q):\n", word)
		for _, n := range trainer.Nearest(word, *topn) {
			fmt.Printf("  %-20s %.4f\n", n.Word, n.Score)
		}
	}
}

// topWords returns the n most frequent vocabulary words.
func topWords(loader *dataloader.CBOWLoader, n int) []string {
	type wc struct {
		word  string
		count int
	}
	all := make([]wc, 0, loader.VocabSize())
	for word, e := range loader.GetVocab() {
		all = append(all, wc{word, e.Count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})
	if len(all) > n {
		all = all[:n]
	}
	words := make([]string, len(all))
	for i, w := range all {
		words[i] = w.word
	}
	return words
}
