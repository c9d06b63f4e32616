package morph

import (
	"math"

	"github.com/katalvlaran/lvedt/edt"
)

// Dilate returns the cells within Euclidean distance radius of any set cell
// of m. A mask with no set cell dilates to an empty mask.
// Complexity: O(W×H).
func Dilate(m *edt.Field, radius float64, opts ...edt.Option) (*edt.Field, error) {
	if math.IsNaN(radius) || radius < 0 {
		return nil, ErrBadRadius
	}
	out := &edt.Field{Rows: m.Rows, Cols: m.Cols, Data: make([]int, len(m.Data))}
	if !m.HasFeature() {
		return out, nil
	}

	d := m.Clone()
	d.Transform(opts...)
	r2 := radius * radius
	for i, v := range d.Data {
		if float64(v) <= r2 {
			out.Data[i] = 1
		}
	}

	return out, nil
}

// Erode returns the set cells of m whose distance to the nearest background
// cell exceeds radius. Cells outside the grid do not count as background, so
// a mask without background cells is returned whole.
// Complexity: O(W×H).
func Erode(m *edt.Field, radius float64, opts ...edt.Option) (*edt.Field, error) {
	if math.IsNaN(radius) || radius < 0 {
		return nil, ErrBadRadius
	}
	out := binarize(m)
	background := invert(m)
	if !background.HasFeature() {
		return out, nil
	}

	background.Transform(opts...)
	r2 := radius * radius
	for i, v := range background.Data {
		if float64(v) <= r2 {
			out.Data[i] = 0
		}
	}

	return out, nil
}

// Open erodes then dilates m by radius: it removes specks and thin spurs
// narrower than the disk.
func Open(m *edt.Field, radius float64, opts ...edt.Option) (*edt.Field, error) {
	e, err := Erode(m, radius, opts...)
	if err != nil {
		return nil, err
	}

	return Dilate(e, radius, opts...)
}

// Close dilates then erodes m by radius: it fills holes and gaps narrower
// than the disk.
func Close(m *edt.Field, radius float64, opts ...edt.Option) (*edt.Field, error) {
	d, err := Dilate(m, radius, opts...)
	if err != nil {
		return nil, err
	}

	return Erode(d, radius, opts...)
}

// Bands quantizes a transformed field into rings: each cell receives
// floor(sqrt(d²) / width). Ring 0 holds the features and every cell closer
// than width.
// Complexity: O(W×H).
func Bands(dist *edt.Field, width float64) (*edt.Field, error) {
	if math.IsNaN(width) || width <= 0 {
		return nil, ErrBadWidth
	}
	out := &edt.Field{Rows: dist.Rows, Cols: dist.Cols, Data: make([]int, len(dist.Data))}
	for i, v := range dist.Data {
		out.Data[i] = int(math.Floor(math.Sqrt(float64(v)) / width))
	}

	return out, nil
}

// binarize copies m with every set cell normalized to 1.
func binarize(m *edt.Field) *edt.Field {
	out := &edt.Field{Rows: m.Rows, Cols: m.Cols, Data: make([]int, len(m.Data))}
	for i, v := range m.Data {
		if v != 0 {
			out.Data[i] = 1
		}
	}

	return out
}

// invert returns a mask that is set exactly where m is background.
func invert(m *edt.Field) *edt.Field {
	out := &edt.Field{Rows: m.Rows, Cols: m.Cols, Data: make([]int, len(m.Data))}
	for i, v := range m.Data {
		if v == 0 {
			out.Data[i] = 1
		}
	}

	return out
}
