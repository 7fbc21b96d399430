package tensor

import "testing"

func TestFromSlice(t *testing.T) {
	ten, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice() failed: %v", err)
	}
	if ten.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", ten.NumElements())
	}
	if !ten.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", ten.Shape())
	}
	if ten.At(4) != 5 {
		t.Errorf("At(4) = %v, want 5", ten.At(4))
	}
}

func TestFromSliceShapeMismatch(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromSlice() with mismatched shape should fail")
	}
}

func TestRow(t *testing.T) {
	ten, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	row := ten.Row(1)
	if len(row) != 3 || row[0] != 4 || row[2] != 6 {
		t.Errorf("Row(1) = %v, want [4 5 6]", row)
	}

	// Row shares storage with the tensor.
	row[0] = 40
	if ten.At(3) != 40 {
		t.Errorf("At(3) = %v after Row mutation, want 40", ten.At(3))
	}
}

func TestRowRequires2D(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Row() on 1D tensor should panic")
		}
	}()
	ten := New(Shape{4})
	ten.Row(0)
}

func TestToInt64Slice(t *testing.T) {
	ten, _ := FromSlice([]int64{7, 0, 42}, Shape{3})

	got := ten.ToInt64Slice()
	if len(got) != 3 || got[0] != 7 || got[2] != 42 {
		t.Errorf("ToInt64Slice() = %v, want [7 0 42]", got)
	}
}

func TestZerosAndFill(t *testing.T) {
	ten := Zeros(Shape{2, 2})
	for i := 0; i < ten.NumElements(); i++ {
		if ten.At(i) != 0 {
			t.Fatalf("Zeros element %d = %v, want 0", i, ten.At(i))
		}
	}

	ten.Fill(3)
	if ten.At(0) != 3 || ten.At(3) != 3 {
		t.Errorf("Fill(3) left data %v", ten.Data())
	}
}
