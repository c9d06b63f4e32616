package edt

// Squared Euclidean Distance Transform
//
// Algorithm Outline (R rows, C columns, uinf = R + C):
//  1. Column phase, per column c (independent):
//     forward  r = 0..R-1:  g[r][c] = 0 if feature, else g[r-1][c] + 1 (uinf at r = 0)
//     backward r = R-2..0:  g[r][c] = min(g[r][c], g[r+1][c] + 1)
//  2. Barrier: every column of g is complete.
//  3. Row phase, per row r (independent): lower envelope of the parabolas
//     f_i(x) = (x-i)² + g[r][i]², i = 0..C-1, built on a monotonic stack
//     s (columns) / t (first x each column owns), then read back right to left.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C) for g, O(C) scratch per worker

// Transform replaces every cell of grid with the squared Euclidean distance
// to the nearest non-zero cell, in place.
//
// An empty grid (no rows or no columns) is left untouched. A jagged grid
// returns ErrNonRectangular and is left untouched.
func Transform(grid [][]int, opts ...Option) error {
	f, err := FromRows(grid)
	if err != nil {
		return err
	}
	if f.Empty() {
		return nil
	}
	f.Transform(opts...)
	for r := range grid {
		copy(grid[r], f.Data[r*f.Cols:(r+1)*f.Cols])
	}

	return nil
}

// Transform replaces every cell of f with the squared Euclidean distance to
// the nearest non-zero cell, in place. The result does not depend on the
// worker count.
//
// If f has no feature at all the output is bounded by (2R+C)² but carries
// no meaning; see HasFeature.
func (f *Field) Transform(opts ...Option) {
	if f.Empty() {
		return
	}
	o := GatherOptions(opts...)
	log := Logger()

	g := make([]int, len(f.Data))
	blocks := forBlocks(f.Cols, o, func(lo, hi int) {
		columnPhase(f, g, lo, hi)
	})
	log.Debug("edt: column phase done",
		"rows", f.Rows, "cols", f.Cols, "workers", o.workers, "blocks", blocks)

	blocks = forBlocks(f.Rows, o, func(lo, hi int) {
		s := make([]int, f.Cols)
		t := make([]int, f.Cols)
		for r := lo; r < hi; r++ {
			rowPhase(f.Data[r*f.Cols:(r+1)*f.Cols], g[r*f.Cols:(r+1)*f.Cols], s, t)
		}
	})
	log.Debug("edt: row phase done",
		"rows", f.Rows, "cols", f.Cols, "workers", o.workers, "blocks", blocks)
}

// columnPhase fills g for columns [lo,hi) with the vertical distance to the
// nearest feature in the same column. Rows are swept in the outer loop so a
// block of adjacent columns is read contiguously.
func columnPhase(f *Field, g []int, lo, hi int) {
	rows, cols := f.Rows, f.Cols
	uinf := rows + cols

	for c := lo; c < hi; c++ {
		if f.Data[c] != 0 {
			g[c] = 0
		} else {
			g[c] = uinf
		}
	}
	for r := 1; r < rows; r++ {
		cur, prev := r*cols, (r-1)*cols
		for c := lo; c < hi; c++ {
			if f.Data[cur+c] != 0 {
				g[cur+c] = 0
			} else {
				g[cur+c] = g[prev+c] + 1
			}
		}
	}
	for r := rows - 2; r >= 0; r-- {
		cur, next := r*cols, (r+1)*cols
		for c := lo; c < hi; c++ {
			if below := g[next+c] + 1; below < g[cur+c] {
				g[cur+c] = below
			}
		}
	}
}

// rowPhase writes into out the lower envelope of the parabolas defined by
// the column distances g of one row. s and t are scratch of length len(g).
func rowPhase(out, g, s, t []int) {
	n := len(g)
	q := 0
	s[0], t[0] = 0, 0

	for u := 1; u < n; u++ {
		for q >= 0 && parabola(t[q], s[q], g[s[q]]) > parabola(t[q], u, g[u]) {
			q--
		}
		if q < 0 {
			q = 0
			s[0], t[0] = u, 0
			continue
		}
		if w := 1 + separation(s[q], u, g[s[q]], g[u]); w < n {
			q++
			s[q], t[q] = u, w
		}
	}

	for u := n - 1; u >= 0; u-- {
		out[u] = parabola(u, s[q], g[s[q]])
		if u == t[q] {
			q--
		}
	}
}
