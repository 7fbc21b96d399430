package dataloader

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/djeday123/word2vec/tensor"
	"github.com/djeday123/word2vec/tokenizer"
	"github.com/djeday123/word2vec/vocab"
)

// CBOWLoader turns raw sentences into continuous-bag-of-words training
// examples: for every word far enough from its sentence boundaries it yields
// the 2*windowSize surrounding word indices as context and the word's own
// index as label.
//
// Intended usage is a single-threaded ingestion phase (AddData, optionally
// RemoveInfrequent) followed by a generation phase over the then-frozen
// corpus. The loader does no locking; ingestion and pruning must not overlap
// with generation. For parallel consumption each worker takes its own Cursor
// via NewCursor and positions it with SetOffset.
type CBOWLoader struct {
	windowSize int
	tok        *tokenizer.WordTokenizer
	vocab      *vocab.Vocabulary
	corpus     [][]int64 // sentences as vocabulary indices, each len >= 2*windowSize+1
	cur        *Cursor
	rng        *rand.Rand
}

var _ DataLoader = (*CBOWLoader)(nil)

// New creates a loader with the given context width per side.
// The shuffle source is seeded from the clock; use NewWithSeed for
// reproducible runs.
func New(windowSize int) (*CBOWLoader, error) {
	return NewWithSeed(windowSize, time.Now().UnixNano())
}

// NewWithSeed creates a loader whose Reset shuffle order is determined by seed.
func NewWithSeed(windowSize int, seed int64) (*CBOWLoader, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("dataloader: window size must be >= 1, got %d", windowSize)
	}
	l := &CBOWLoader{
		windowSize: windowSize,
		tok:        tokenizer.NewWordTokenizer(),
		vocab:      vocab.New(),
		rng:        rand.New(rand.NewSource(seed)),
	}
	l.cur = l.NewCursor()
	return l, nil
}

// WindowSize returns the context width per side.
func (l *CBOWLoader) WindowSize() int {
	return l.windowSize
}

// AddData tokenizes s and appends it to the corpus as one sentence.
// It returns false, without touching the vocabulary or the corpus, when the
// string yields fewer than 2*windowSize+1 tokens (no full window fits).
func (l *CBOWLoader) AddData(s string) bool {
	tokens := l.tok.Tokenize(s)
	if len(tokens) < 2*l.windowSize+1 {
		return false
	}
	indexes := make([]int64, len(tokens))
	for i, w := range tokens {
		indexes[i] = l.vocab.Add(w)
	}
	l.corpus = append(l.corpus, indexes)
	return true
}

// Size returns the total number of windows the corpus can yield,
// recomputed from the current sentences.
func (l *CBOWLoader) Size() int {
	size := 0
	for _, s := range l.corpus {
		size += l.windows(s)
	}
	return size
}

// windows returns the number of valid center positions in one sentence.
// Every boundary check in this package derives from this quantity.
func (l *CBOWLoader) windows(sentence []int64) int {
	n := len(sentence) - 2*l.windowSize
	if n < 0 {
		return 0
	}
	return n
}

// IsDone reports whether the loader's own cursor is exhausted.
func (l *CBOWLoader) IsDone() bool {
	return l.cur.IsDone()
}

// GetNext produces the next context/label pair from the loader's own cursor.
// Calling it while IsDone is a contract violation and panics.
func (l *CBOWLoader) GetNext() (*tensor.Tensor, int64) {
	return l.cur.GetNext()
}

// Reset randomly permutes the sentence order and rewinds the loader's own
// cursor to the beginning of the new order. Cursors handed out by NewCursor
// are left where they are; reposition them with SetOffset after a Reset.
func (l *CBOWLoader) Reset() {
	l.rng.Shuffle(len(l.corpus), func(i, j int) {
		l.corpus[i], l.corpus[j] = l.corpus[j], l.corpus[i]
	})
	l.cur.rewind()
}

// SetOffset repositions the loader's own cursor to the (offset mod Size())-th
// window of the current scan order.
func (l *CBOWLoader) SetOffset(offset uint64) {
	l.cur.SetOffset(offset)
}

// VocabSize returns the number of distinct words seen so far.
func (l *CBOWLoader) VocabSize() int {
	return l.vocab.Size()
}

// GetVocab returns a detached snapshot of the word → (index, count) mapping.
func (l *CBOWLoader) GetVocab() map[string]vocab.Entry {
	return l.vocab.Snapshot()
}

// WordFromIndex returns the word with the given index in the current
// vocabulary generation, or "" if none maps to it.
func (l *CBOWLoader) WordFromIndex(index int64) string {
	return l.vocab.WordFromIndex(index)
}

// RemoveInfrequent rebuilds the corpus and vocabulary from scratch, keeping
// only words whose current count is at least min. Surviving words receive
// fresh indices in re-encounter order; sentences left with fewer than
// 2*windowSize+1 words are dropped entirely. The swap is atomic from the
// caller's view: old state or new state, never a mix. The loader's cursor is
// rewound since old positions are meaningless over the new corpus.
func (l *CBOWLoader) RemoveInfrequent(min int) {
	// Rebuilding beats in-place removal: indices stay dense without any
	// compaction pass, and the old state stays intact until the final swap.
	next, err := NewWithSeed(l.windowSize, l.rng.Int63())
	if err != nil {
		panic(err) // unreachable: windowSize was validated at construction
	}
	for _, sentence := range l.corpus {
		kept := make([]string, 0, len(sentence))
		for _, idx := range sentence {
			word := l.vocab.WordFromIndex(idx)
			if e, ok := l.vocab.Lookup(word); ok && e.Count >= min {
				kept = append(kept, word)
			}
		}
		next.AddData(strings.Join(kept, " "))
	}
	l.corpus = next.corpus
	l.vocab = next.vocab
	l.cur.rewind()
}
