// Package edt computes the exact squared Euclidean distance transform of a
// binary grid in O(R·C) time.
//
// 🚀 What is a distance transform?
//
//	Given a grid where non-zero cells are "features", the transform replaces
//	every cell with the squared straight-line distance to the nearest
//	feature cell. It is the workhorse behind:
//	  • glow, outline and offset effects on raster masks
//	  • morphological dilation/erosion by a disk of any radius
//	  • skeletons, medial axes and clearance maps for planners
//	  • banding a field into "within k cells of an edge" zones
//
// ✨ Key features:
//   - exact integer results (no floating point, bit-identical everywhere)
//   - separable two-phase algorithm (Meijster, Roerdink, Hesselink):
//     a vertical sweep per column, then a lower envelope of parabolas per row
//   - data-parallel: columns in phase one, rows in phase two, joined by a barrier
//   - in-place on [][]int or on a flat row-major Field
//   - sparse inputs from a roaring bitmap of feature indices
//
// ⚙️ Usage:
//
//	grid := [][]int{
//	  {0, 0, 0},
//	  {0, 1, 0},
//	  {0, 0, 0},
//	}
//	if err := edt.Transform(grid, edt.WithWorkers(4)); err != nil {
//	  // only ErrNonRectangular is possible
//	}
//	// grid == [[2 1 2] [1 0 1] [2 1 2]]
//
// Conventions:
//
//   - grid[r][c]: R rows, C columns; zero = background, non-zero = feature.
//   - Output values are squared distances; use Field.Distance for sqrt.
//   - A grid without any feature is not rejected: the output is bounded
//     but meaningless. Check Field.HasFeature when that matters.
//
// Performance:
//
//   - Time:   O(R·C)
//   - Memory: O(R·C) for the column buffer + O(C) scratch per worker
package edt
