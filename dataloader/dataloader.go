package dataloader

import "github.com/djeday123/word2vec/tensor"

// DataLoader is the common contract between a data source and the training
// loop that consumes it. GetNext may only be called while IsDone reports
// false; Reset reshuffles the source and rewinds to the beginning.
type DataLoader interface {
	GetNext() (*tensor.Tensor, int64)
	Size() int
	IsDone() bool
	Reset()
}
