package edt_test

import (
	"math/rand"
)

// bruteForce is the O(R²C²) reference: for every cell, scan every feature.
func bruteForce(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for r := range grid {
		out[r] = make([]int, len(grid[r]))
		for c := range grid[r] {
			best := -1
			for i := range grid {
				for j := range grid[i] {
					if grid[i][j] == 0 {
						continue
					}
					d := (r-i)*(r-i) + (c-j)*(c-j)
					if best < 0 || d < best {
						best = d
					}
				}
			}
			out[r][c] = best
		}
	}

	return out
}

// randomGrid returns a rows×cols grid with each cell a feature with
// probability p, and at least one feature.
func randomGrid(rng *rand.Rand, rows, cols int, p float64) [][]int {
	grid := make([][]int, rows)
	found := false
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			if rng.Float64() < p {
				grid[r][c] = 1 + rng.Intn(255)
				found = true
			}
		}
	}
	if !found {
		grid[rng.Intn(rows)][rng.Intn(cols)] = 1
	}

	return grid
}

func cloneGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for r := range grid {
		out[r] = append([]int(nil), grid[r]...)
	}

	return out
}

// flipRows reverses the order of rows (vertical flip).
func flipRows(grid [][]int) [][]int {
	out := cloneGrid(grid)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// flipCols reverses every row (horizontal flip).
func flipCols(grid [][]int) [][]int {
	out := cloneGrid(grid)
	for _, row := range out {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}

	return out
}

// transpose swaps rows and columns.
func transpose(grid [][]int) [][]int {
	if len(grid) == 0 {
		return nil
	}
	out := make([][]int, len(grid[0]))
	for c := range out {
		out[c] = make([]int, len(grid))
		for r := range grid {
			out[c][r] = grid[r][c]
		}
	}

	return out
}
