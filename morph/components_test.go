// File: morph/components_test.go
package morph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvedt/edt"
	"github.com/katalvlaran/lvedt/morph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents_Simple4 tests Components on a 3×4 mask with orthogonal
// connectivity.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands, in BFS order from their first cell.
func TestComponents_Simple4(t *testing.T) {
	m := mustField(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	comps := morph.Components(m, morph.Conn4)
	assert.Equal(t, [][]int{{1, 2, 5, 4}, {10, 11}}, comps)
}

// TestComponents_Diagonal tests an X pattern: one island under Conn8, nine
// single cells under Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal(t *testing.T) {
	m := mustField(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	comps8 := morph.Components(m, morph.Conn8)
	require.Len(t, comps8, 1)
	assert.Len(t, comps8[0], 9)

	assert.Len(t, morph.Components(m, morph.Conn4), 9)
}

func TestComponents_Empty(t *testing.T) {
	m := mustField(t, [][]int{{0, 0}, {0, 0}})
	assert.Empty(t, morph.Components(m, morph.Conn4))
}

func TestGap(t *testing.T) {
	m := mustField(t, [][]int{{1, 0, 0, 0, 1, 1}})

	gap, err := morph.Gap(m, morph.Conn4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, gap)

	gap, err = morph.Gap(m, morph.Conn4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, gap)

	_, err = morph.Gap(m, morph.Conn4, 0, 2)
	assert.ErrorIs(t, err, morph.ErrComponentIndex)
}

// TestBridge connects islands of the mask
//
//	0 1 1 0 2
//	1 1 0 2 2
//	0 0 2 2 0
//	3 0 0 0 0
//
// where component 0 = {1,2,5,6}, 1 = {4,8,9,12,13}, 2 = {15}.
func TestBridge(t *testing.T) {
	m := mustField(t, [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{0, 0, 2, 2, 0},
		{3, 0, 0, 0, 0},
	})
	comps := morph.Components(m, morph.Conn4)
	require.Len(t, comps, 3)

	path, cost, err := morph.Bridge(m, morph.Conn4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	require.Len(t, path, 3)
	assert.Contains(t, comps[0], path[0])
	assert.Contains(t, comps[1], path[len(path)-1])

	path, cost, err = morph.Bridge(m, morph.Conn4, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{5, 10, 15}, path)

	_, _, err = morph.Bridge(m, morph.Conn4, -1, 0)
	assert.ErrorIs(t, err, morph.ErrComponentIndex)
}

// pathLength sums the Euclidean lengths of the steps of path.
func pathLength(t *testing.T, cols int, path []int) float64 {
	t.Helper()
	total := 0.0
	for k := 1; k < len(path); k++ {
		dr := path[k]/cols - path[k-1]/cols
		dc := path[k]%cols - path[k-1]%cols
		total += math.Hypot(float64(dr), float64(dc))
	}
	return total
}

// TestBridge_Shortest checks that among equal-conversion bridges the
// straightest one wins:
//
//	1 0 0 0 0
//	0 0 0 0 0
//	2 2 2 2 2
//
// Under Conn8 every one-cell bridge through (1,0) or (1,1) converts one
// cell, but only 0→5→10 has length 2; the others are 1+√2 or 2√2.
func TestBridge_Shortest(t *testing.T) {
	m := mustField(t, [][]int{
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{2, 2, 2, 2, 2},
	})
	path, cost, err := morph.Bridge(m, morph.Conn8, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 5, 10}, path)

	// Same answer whatever the transform's parallelism.
	path, _, err = morph.Bridge(m, morph.Conn8, 0, 1, edt.WithWorkers(3), edt.WithMinBlock(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, path)
}

// TestBridge_ThroughIsland crosses a third island for free and still takes
// the shortest of the cheapest routes:
//
//	1 1 1 0 3 3 0 2
//	1 1 1 0 3 3 0 2
//
// Two conversions are needed; the cheapest route runs straight from column 2
// to column 7, length 5.
func TestBridge_ThroughIsland(t *testing.T) {
	m := mustField(t, [][]int{
		{1, 1, 1, 0, 3, 3, 0, 2},
		{1, 1, 1, 0, 3, 3, 0, 2},
	})
	comps := morph.Components(m, morph.Conn8)
	require.Len(t, comps, 3)

	path, cost, err := morph.Bridge(m, morph.Conn8, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Contains(t, comps[0], path[0])
	assert.Contains(t, comps[2], path[len(path)-1])
	assert.InDelta(t, 5.0, pathLength(t, m.Cols, path), 1e-9)

	// Every returned step is a legal Conn8 move.
	for k := 1; k < len(path); k++ {
		dr := path[k]/m.Cols - path[k-1]/m.Cols
		dc := path[k]%m.Cols - path[k-1]%m.Cols
		assert.LessOrEqual(t, dr*dr+dc*dc, 2)
	}
}
