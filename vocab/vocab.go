package vocab

// Entry holds the index and occurrence count of one vocabulary word.
// Indices are dense, assigned in first-seen order, and stay valid until the
// vocabulary is rebuilt.
type Entry struct {
	Index int64
	Count int
}

// Vocabulary is a growable bijection between words and dense int64 indices,
// with an occurrence count per word. The index-ordered word list makes the
// reverse lookup O(1) instead of a scan over the forward map.
type Vocabulary struct {
	byWord map[string]Entry
	words  []string // words[i] is the word with index i
}

func New() *Vocabulary {
	return &Vocabulary{
		byWord: make(map[string]Entry),
	}
}

// Add records one occurrence of word and returns its index.
// An unseen word is assigned the next sequential index with count 1;
// a seen word keeps its index and has its count incremented.
func (v *Vocabulary) Add(word string) int64 {
	if e, ok := v.byWord[word]; ok {
		e.Count++
		v.byWord[word] = e
		return e.Index
	}
	e := Entry{Index: int64(len(v.words)), Count: 1}
	v.byWord[word] = e
	v.words = append(v.words, word)
	return e.Index
}

// Lookup returns the entry for word, if present.
func (v *Vocabulary) Lookup(word string) (Entry, bool) {
	e, ok := v.byWord[word]
	return e, ok
}

// WordFromIndex returns the word with the given index, or "" if no entry
// currently maps to it.
func (v *Vocabulary) WordFromIndex(index int64) string {
	if index < 0 || index >= int64(len(v.words)) {
		return ""
	}
	return v.words[index]
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Snapshot returns a copy of the word → entry mapping.
// The copy is detached: later ingestion does not change it.
func (v *Vocabulary) Snapshot() map[string]Entry {
	out := make(map[string]Entry, len(v.byWord))
	for w, e := range v.byWord {
		out[w] = e
	}
	return out
}
