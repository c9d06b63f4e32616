package morph

import (
	"container/heap"
	"math"
	"slices"

	"github.com/katalvlaran/lvedt/edt"
)

// Components finds all contiguous regions ("islands") of set cells of m
// according to conn. Each component is a slice of row-major cell indices in
// BFS order; components appear in row-major order of their first cell.
//
// To convert an index back to (r,c), use m.Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components(m *edt.Field, conn Connectivity) [][]int {
	seen := make([]bool, len(m.Data))
	var comps [][]int
	offsets := conn.offsets()

	for i0, v := range m.Data {
		if v == 0 || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ur, uc := m.Coordinate(queue[qi])
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !m.InBounds(vr, vc) {
					continue
				}
				vi := m.Index(vr, vc)
				if m.Data[vi] != 0 && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Gap returns the squared Euclidean distance between the closest pair of
// cells of components src and dst (indices into Components(m, conn)).
// src == dst yields 0.
//
// Complexity: O(W·H·d).
func Gap(m *edt.Field, conn Connectivity, src, dst int, opts ...edt.Option) (int, error) {
	comps := Components(m, conn)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return 0, ErrComponentIndex
	}

	d := &edt.Field{Rows: m.Rows, Cols: m.Cols, Data: make([]int, len(m.Data))}
	for _, i := range comps[src] {
		d.Data[i] = 1
	}
	d.Transform(opts...)

	best := -1
	for _, i := range comps[dst] {
		if best < 0 || d.Data[i] < best {
			best = d.Data[i]
		}
	}

	return best, nil
}

// Bridge finds a path that connects component src to component dst while
// converting as few background cells as possible. Among all paths with that
// minimum number of conversions it returns one of least Euclidean length,
// measured between cell centres (1 per orthogonal step, √2 per diagonal).
//
// The path lists row-major cell indices from a src cell to a dst cell,
// inclusive; cost is the number of background cells on it.
//
// The search is A* over (conversions, length). The remaining length is
// estimated by the exact distance to dst, taken from one transform of the
// dst component; that estimate never overshoots and is consistent, so the
// first dst cell reached closes an optimal path. opts tune that transform.
//
// Complexity: O(W·H·d·log(W·H)), Memory: O(W·H).
func Bridge(m *edt.Field, conn Connectivity, src, dst int, opts ...edt.Option) (path []int, cost int, err error) {
	comps := Components(m, conn)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	toDst := &edt.Field{Rows: m.Rows, Cols: m.Cols, Data: make([]int, len(m.Data))}
	for _, i := range comps[dst] {
		toDst.Data[i] = 1
	}
	toDst.Transform(opts...)

	const inf = int(^uint(0) >> 1)
	conv := make([]int, len(m.Data))
	length := make([]float64, len(m.Data))
	prev := make([]int, len(m.Data))
	for i := range conv {
		conv[i] = inf
		length[i] = math.Inf(1)
		prev[i] = -1
	}

	open := &bridgeQueue{}
	for _, i := range comps[src] {
		conv[i], length[i] = 0, 0
		heap.Push(open, bridgeStep{cell: i, est: estimate(toDst, i)})
	}

	offsets := conn.offsets()
	target := -1
	for open.Len() > 0 {
		top := heap.Pop(open).(bridgeStep)
		u := top.cell
		if top.conv > conv[u] || top.length > length[u] {
			continue // superseded
		}
		if toDst.Data[u] == 0 {
			target = u
			break
		}
		ur, uc := m.Coordinate(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !m.InBounds(vr, vc) {
				continue
			}
			v := m.Index(vr, vc)
			nc, nl := conv[u], length[u]+1
			if m.Data[v] == 0 {
				nc++
			}
			if d[0] != 0 && d[1] != 0 {
				nl = length[u] + math.Sqrt2
			}
			if nc < conv[v] || (nc == conv[v] && nl < length[v]) {
				conv[v], length[v], prev[v] = nc, nl, u
				heap.Push(open, bridgeStep{cell: v, conv: nc, length: nl, est: nl + estimate(toDst, v)})
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, conv[target], nil
}

// estimate is the straight-line distance from cell i to the nearest dst cell.
func estimate(toDst *edt.Field, i int) float64 {
	return math.Sqrt(float64(toDst.Data[i]))
}

// bridgeStep is a frontier entry of Bridge.
type bridgeStep struct {
	cell   int
	conv   int     // background cells converted so far
	length float64 // path length so far
	est    float64 // length plus straight-line distance to dst
}

// bridgeQueue orders steps by conversions, then by estimated total length.
type bridgeQueue []bridgeStep

func (q bridgeQueue) Len() int { return len(q) }
func (q bridgeQueue) Less(i, j int) bool {
	if q[i].conv != q[j].conv {
		return q[i].conv < q[j].conv
	}
	return q[i].est < q[j].est
}
func (q bridgeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *bridgeQueue) Push(x any) { *q = append(*q, x.(bridgeStep)) }
func (q *bridgeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
