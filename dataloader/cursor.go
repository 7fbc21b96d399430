package dataloader

import (
	"github.com/djeday123/word2vec/tensor"
)

// Cursor is an independently owned traversal position over a loader's
// corpus. Each worker in a parallel consumer holds its own Cursor,
// positioned with SetOffset, over the shared read-only corpus; cursors must
// not be shared between goroutines.
type Cursor struct {
	l        *CBOWLoader
	sentence int
	word     int
}

// NewCursor returns a fresh cursor at the beginning of the current scan
// order. The cursor reads the loader's corpus; it remains valid across
// Reset and RemoveInfrequent but should be repositioned afterwards.
func (l *CBOWLoader) NewCursor() *Cursor {
	return &Cursor{l: l}
}

func (c *Cursor) rewind() {
	c.sentence = 0
	c.word = 0
}

// IsDone reports whether no further window is producible from this position.
func (c *Cursor) IsDone() bool {
	corpus := c.l.corpus
	if len(corpus) == 0 {
		return true
	}
	if c.sentence >= len(corpus) {
		return true
	}
	if c.sentence == len(corpus)-1 && c.word >= c.l.windows(corpus[c.sentence]) {
		return true
	}
	return false
}

// GetNext produces the context/label pair at the current position and
// advances the cursor. The context tensor holds the windowSize indices
// preceding the center word followed by the windowSize indices after it;
// the label is the center word's index.
//
// Calling GetNext on an exhausted cursor is a contract violation and panics.
func (c *Cursor) GetNext() (*tensor.Tensor, int64) {
	if c.IsDone() {
		panic("dataloader: GetNext called on an exhausted cursor")
	}

	w := c.l.windowSize
	sentence := c.l.corpus[c.sentence]
	label := sentence[c.word+w]

	ctx := make([]int64, 2*w)
	for i := 0; i < w; i++ {
		ctx[i] = sentence[c.word+i]
		ctx[i+w] = sentence[c.word+w+1+i]
	}
	t, _ := tensor.FromSlice(ctx, tensor.Shape{2 * w})

	c.word++
	if c.word >= c.l.windows(sentence) {
		c.word = 0
		c.sentence++
	}
	return t, label
}

// SetOffset repositions the cursor at the (offset mod Size())-th window of
// the current scan order, counted in windows across sentence boundaries.
// GetNext afterwards yields exactly what it would after that many natural
// advances from the start. Panics when the corpus holds no windows.
func (c *Cursor) SetOffset(offset uint64) {
	total := c.l.Size()
	if total == 0 {
		panic("dataloader: SetOffset on an empty corpus")
	}

	remaining := int(offset % uint64(total))
	c.rewind()
	for remaining >= c.l.windows(c.l.corpus[c.sentence]) {
		remaining -= c.l.windows(c.l.corpus[c.sentence])
		c.sentence++
	}
	c.word = remaining
}
