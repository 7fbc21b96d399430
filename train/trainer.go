package train

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/djeday123/word2vec/dataloader"
	"github.com/djeday123/word2vec/tensor"
)

// Config holds CBOW training hyperparameters.
type Config struct {
	EmbedDim int
	LR       float64
	Epochs   int
	Workers  int
	LogEvery int
	Seed     int64
}

func DefaultConfig() Config {
	return Config{
		EmbedDim: 64,
		LR:       0.05,
		Epochs:   5,
		Workers:  1,
		LogEvery: 10000,
		Seed:     1,
	}
}

// Trainer learns word embeddings from the context/label pairs a CBOWLoader
// produces. Two matrices are trained: In holds the context-side embeddings
// (the ones usually kept as "the" word vectors), Out the center-word side.
type Trainer struct {
	Loader *dataloader.CBOWLoader
	In     *tensor.Tensor // [vocabSize, embedDim]
	Out    *tensor.Tensor // [vocabSize, embedDim]
	Config Config
}

func NewTrainer(loader *dataloader.CBOWLoader, cfg Config) *Trainer {
	rng := rand.New(rand.NewSource(cfg.Seed))
	vocabSize := loader.VocabSize()

	in := tensor.New(tensor.Shape{vocabSize, cfg.EmbedDim})
	for i, d := 0, in.Data(); i < len(d); i++ {
		d[i] = float32(rng.NormFloat64() * 0.02)
	}
	out := tensor.New(tensor.Shape{vocabSize, cfg.EmbedDim})

	return &Trainer{
		Loader: loader,
		In:     in,
		Out:    out,
		Config: cfg,
	}
}

// Train runs the configured number of epochs. Each epoch reshuffles the
// sentence order; with Workers > 1 the corpus is partitioned between
// goroutines via per-worker cursors.
func (t *Trainer) Train() {
	total := t.Loader.Size()
	fmt.Printf("Training: %d windows/epoch, vocab %d, dim %d, lr %.3f, workers %d\n",
		total, t.Loader.VocabSize(), t.Config.EmbedDim, t.Config.LR, t.Config.Workers)

	start := time.Now()
	for epoch := 1; epoch <= t.Config.Epochs; epoch++ {
		t.Loader.Reset()

		var avgLoss float64
		epochStart := time.Now()
		if t.Config.Workers > 1 {
			avgLoss = t.runEpochParallel()
		} else {
			avgLoss = t.runEpoch(epoch)
		}

		elapsed := time.Since(epochStart)
		fmt.Printf("epoch %d/%d | loss %.4f | %.0f win/s | %v\n",
			epoch, t.Config.Epochs, avgLoss,
			float64(total)/elapsed.Seconds(), elapsed.Round(time.Millisecond))
	}
	fmt.Printf("Training complete in %v\n", time.Since(start).Round(time.Millisecond))
}

func (t *Trainer) runEpoch(epoch int) float64 {
	step := 0
	sum := float64(0)
	smooth := float64(0)

	for !t.Loader.IsDone() {
		ctx, label := t.Loader.GetNext()
		loss := t.step(ctx, label)
		sum += loss
		step++

		if smooth == 0 {
			smooth = loss
		} else {
			smooth = 0.99*smooth + 0.01*loss
		}
		if t.Config.LogEvery > 0 && step%t.Config.LogEvery == 0 {
			fmt.Printf("  epoch %d step %d | smooth loss %.4f\n", epoch, step, smooth)
		}
	}
	if step == 0 {
		return 0
	}
	return sum / float64(step)
}

// runEpochParallel splits the epoch's windows between Workers goroutines.
// Each worker owns a private cursor positioned with SetOffset over the
// shared frozen corpus. Matrix updates are lock-free, as in word2vec's
// usual asynchronous SGD; overlapping writes are tolerated.
func (t *Trainer) runEpochParallel() float64 {
	total := t.Loader.Size()
	workers := t.Config.Workers
	if workers > total {
		workers = total
	}
	if total == 0 {
		return 0
	}
	share := total / workers

	losses := make([]float64, workers)
	counts := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		begin := w * share
		count := share
		if w == workers-1 {
			count = total - begin
		}

		wg.Add(1)
		go func(w, begin, count int) {
			defer wg.Done()
			cur := t.Loader.NewCursor()
			cur.SetOffset(uint64(begin))
			for i := 0; i < count && !cur.IsDone(); i++ {
				ctx, label := cur.GetNext()
				losses[w] += t.step(ctx, label)
				counts[w]++
			}
		}(w, begin, count)
	}
	wg.Wait()

	sum := float64(0)
	steps := 0
	for w := 0; w < workers; w++ {
		sum += losses[w]
		steps += counts[w]
	}
	if steps == 0 {
		return 0
	}
	return sum / float64(steps)
}

// step does one full-softmax CBOW update and returns the cross-entropy loss.
func (t *Trainer) step(ctx *tensor.Tensor, label int64) float64 {
	dim := t.Config.EmbedDim
	lr := t.Config.LR
	vocabSize := t.In.Shape()[0]
	words := ctx.ToInt64Slice()
	n := float64(len(words))

	// Hidden state: mean of the context words' input embeddings.
	h := make([]float64, dim)
	for _, wi := range words {
		row := t.In.Row(int(wi))
		for d := 0; d < dim; d++ {
			h[d] += float64(row[d])
		}
	}
	for d := 0; d < dim; d++ {
		h[d] /= n
	}

	// Softmax over the full vocabulary.
	logits := make([]float64, vocabSize)
	maxLogit := math.Inf(-1)
	for j := 0; j < vocabSize; j++ {
		row := t.Out.Row(j)
		s := float64(0)
		for d := 0; d < dim; d++ {
			s += h[d] * float64(row[d])
		}
		logits[j] = s
		if s > maxLogit {
			maxLogit = s
		}
	}
	sumExp := float64(0)
	for j := range logits {
		logits[j] = math.Exp(logits[j] - maxLogit)
		sumExp += logits[j]
	}

	pLabel := logits[label] / sumExp
	loss := -math.Log(pLabel + 1e-12)

	// Backward: dlogits = softmax - onehot(label).
	dh := make([]float64, dim)
	for j := 0; j < vocabSize; j++ {
		g := logits[j] / sumExp
		if int64(j) == label {
			g -= 1
		}
		row := t.Out.Row(j)
		for d := 0; d < dim; d++ {
			dh[d] += g * float64(row[d])
			row[d] -= float32(lr * g * h[d])
		}
	}
	for _, wi := range words {
		row := t.In.Row(int(wi))
		for d := 0; d < dim; d++ {
			row[d] -= float32(lr * dh[d] / n)
		}
	}
	return loss
}

// Neighbor is one nearest-neighbor query result.
type Neighbor struct {
	Word  string
	Score float64
}

// Nearest returns the topn words closest to word by cosine similarity of
// their input embeddings, excluding the word itself. It returns nil when the
// word is not in the current vocabulary.
func (t *Trainer) Nearest(word string, topn int) []Neighbor {
	vocabulary := t.Loader.GetVocab()
	entry, ok := vocabulary[word]
	if !ok {
		return nil
	}
	query := t.In.Row(int(entry.Index))

	neighbors := make([]Neighbor, 0, len(vocabulary))
	for other, e := range vocabulary {
		if other == word {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Word:  other,
			Score: cosine(query, t.In.Row(int(e.Index))),
		})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Score > neighbors[j].Score
	})
	if len(neighbors) > topn {
		neighbors = neighbors[:topn]
	}
	return neighbors
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
