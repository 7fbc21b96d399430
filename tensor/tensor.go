package tensor

import (
	"fmt"
	"math"
)

// Tensor is a CPU n-dimensional float32 array with row-major layout.
// It is the container the dataloader fills with context windows and the
// trainer uses for embedding matrices.
type Tensor struct {
	data  []float32
	shape Shape
}

// ---- Constructors ----

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) *Tensor {
	return &Tensor{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// FromSlice creates a tensor from a Go slice.
func FromSlice[T float32 | float64 | int32 | int64](data []T, shape Shape) (*Tensor, error) {
	n := shape.NumElements()
	if len(data) != n {
		return nil, fmt.Errorf("data length %d != shape elements %d", len(data), n)
	}

	t := New(shape)
	for i, v := range data {
		t.data[i] = float32(v)
	}
	return t, nil
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) *Tensor {
	return New(shape)
}

// ---- Accessors ----

func (t *Tensor) Shape() Shape     { return t.shape }
func (t *Tensor) NDim() int        { return len(t.shape) }
func (t *Tensor) NumElements() int { return len(t.data) }

// Data returns the underlying flat storage. Mutations are visible to the tensor.
func (t *Tensor) Data() []float32 { return t.data }

// At returns the element at the given flat index.
func (t *Tensor) At(i int) float32 { return t.data[i] }

// Set assigns the element at the given flat index.
func (t *Tensor) Set(i int, v float32) { t.data[i] = v }

// Row returns the i-th row of a 2D tensor as a shared slice.
func (t *Tensor) Row(i int) []float32 {
	if t.NDim() != 2 {
		panic(fmt.Sprintf("tensor: Row requires 2D tensor, got %dD", t.NDim()))
	}
	cols := t.shape[1]
	return t.data[i*cols : (i+1)*cols]
}

// ToInt64Slice converts the tensor contents to int64 values, truncating.
func (t *Tensor) ToInt64Slice() []int64 {
	out := make([]int64, len(t.data))
	for i, v := range t.data {
		out[i] = int64(v)
	}
	return out
}

// Fill sets every element to v.
func (t *Tensor) Fill(v float32) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Norm returns the L2 norm of the flat data.
func (t *Tensor) Norm() float64 {
	sum := float64(0)
	for _, v := range t.data {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(shape=%v, elements=%d)", t.shape, len(t.data))
}
