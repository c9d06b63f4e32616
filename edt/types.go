package edt

import (
	"errors"
)

// Sentinel errors for edt operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("edt: all rows must have the same length")
	// ErrNegativeSize indicates a negative row or column count.
	ErrNegativeSize = errors.New("edt: rows and columns must be non-negative")
	// ErrFeatureOutOfRange indicates a feature index outside rows*cols.
	ErrFeatureOutOfRange = errors.New("edt: feature index out of range")
)

// MaxBitmapCells is the largest cell count whose row-major indices fit the
// uint32 keys of a roaring bitmap. Features panics on larger fields.
const MaxBitmapCells = 1 << 32

const panicTooManyCells = "edt: Features: field exceeds MaxBitmapCells cells"

// requireBitmapCells panics if n cells cannot be indexed by a roaring bitmap.
func requireBitmapCells(n uint64) {
	if n > MaxBitmapCells {
		panic(panicTooManyCells)
	}
}

// Field is a rectangular grid stored row-major in a single slice.
// Cell (r, c) lives at Data[r*Cols+c]. Before a transform a non-zero
// value marks a feature; afterwards every cell holds a squared distance.
type Field struct {
	Rows, Cols int
	Data       []int
}
