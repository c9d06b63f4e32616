package edt

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewField allocates a zeroed rows×cols field.
// Returns ErrNegativeSize if either dimension is negative.
// Complexity: O(R×C) time and memory.
func NewField(rows, cols int) (*Field, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeSize
	}

	return &Field{Rows: rows, Cols: cols, Data: make([]int, rows*cols)}, nil
}

// FromRows builds a Field from a rectangular 2D slice.
// It deep-copies the input. A nil slice, a slice without rows, or rows of
// length zero produce an empty field; rows of differing lengths return
// ErrNonRectangular.
// Complexity: O(R×C) time and memory.
func FromRows(values [][]int) (*Field, error) {
	h, w, err := shape(values)
	if err != nil {
		return nil, err
	}
	f := &Field{Rows: h, Cols: w, Data: make([]int, h*w)}
	for r := 0; r < h; r++ {
		copy(f.Data[r*w:(r+1)*w], values[r])
	}

	return f, nil
}

// FromBitmap builds a rows×cols field whose features are the row-major
// cell indices stored in features. Feature cells are set to 1.
// Returns ErrFeatureOutOfRange (wrapped with the offending index) if any
// index does not address a cell. A nil bitmap yields an empty-feature field.
// Indices are uint32, so only the first MaxBitmapCells cells of a larger
// field can be addressed.
// Complexity: O(R×C + |features|).
func FromBitmap(rows, cols int, features *roaring.Bitmap) (*Field, error) {
	f, err := NewField(rows, cols)
	if err != nil {
		return nil, err
	}
	if features == nil || features.IsEmpty() {
		return f, nil
	}
	if last := uint64(features.Maximum()); last >= uint64(len(f.Data)) {
		return nil, fmt.Errorf("%w: %d (cells=%d)", ErrFeatureOutOfRange, last, len(f.Data))
	}
	it := features.Iterator()
	for it.HasNext() {
		f.Data[it.Next()] = 1
	}

	return f, nil
}

// shape validates a 2D slice and returns its row and column counts.
func shape(values [][]int) (rows, cols int, err error) {
	if len(values) == 0 {
		return 0, 0, nil
	}
	rows, cols = len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// Empty reports whether the field has no cells.
func (f *Field) Empty() bool {
	return f.Rows == 0 || f.Cols == 0
}

// InBounds reports whether (r,c) lies within the field.
// Complexity: O(1).
func (f *Field) InBounds(r, c int) bool {
	return r >= 0 && r < f.Rows && c >= 0 && c < f.Cols
}

// Index maps (r,c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (f *Field) Index(r, c int) int {
	return r*f.Cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (f *Field) Coordinate(idx int) (r, c int) {
	return idx / f.Cols, idx % f.Cols
}

// At returns the value stored at (r,c). It panics when out of bounds,
// like a slice access.
func (f *Field) At(r, c int) int {
	return f.Data[f.Index(r, c)]
}

// Set stores v at (r,c).
func (f *Field) Set(r, c, v int) {
	f.Data[f.Index(r, c)] = v
}

// Distance returns the Euclidean distance stored at (r,c) after a
// transform, i.e. the square root of the squared distance.
func (f *Field) Distance(r, c int) float64 {
	return math.Sqrt(float64(f.At(r, c)))
}

// HasFeature reports whether at least one cell is non-zero.
func (f *Field) HasFeature() bool {
	for _, v := range f.Data {
		if v != 0 {
			return true
		}
	}

	return false
}

// Features returns the row-major indices of all non-zero cells.
// Roaring keys are uint32, so f must hold at most MaxBitmapCells cells;
// a larger field panics rather than aliasing indices.
// Complexity: O(R×C).
func (f *Field) Features() *roaring.Bitmap {
	requireBitmapCells(uint64(len(f.Data)))
	bm := roaring.New()
	for i, v := range f.Data {
		if v != 0 {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	data := make([]int, len(f.Data))
	copy(data, f.Data)

	return &Field{Rows: f.Rows, Cols: f.Cols, Data: data}
}

// ToRows copies the field into a freshly allocated [][]int.
func (f *Field) ToRows() [][]int {
	out := make([][]int, f.Rows)
	for r := range out {
		out[r] = make([]int, f.Cols)
		copy(out[r], f.Data[r*f.Cols:(r+1)*f.Cols])
	}

	return out
}
