// Package lvedt is a small toolkit for exact Euclidean distance fields on
// integer grids: the transform itself, morphology built on top of it, and
// adapters to and from images.
//
// 🚀 What is lvedt?
//
//	A pure-Go, data-parallel library that brings together:
//		• Kernel: squared Euclidean distance transform in O(R·C), exact integers
//		• Morphology: dilate, erode, open, close by a disk; distance bands
//		• Regions: connected components, Euclidean gaps, minimal bridges
//		• Raster: threshold images into masks, render fields to grayscale
//
// ✨ Why choose lvedt?
//
//   - Exact – integer arithmetic, no rounding, identical output on any core count
//   - Fast – linear time, columns then rows in parallel with a single barrier
//   - Sparse friendly – feed features as a roaring bitmap of cell indices
//   - Plain data – [][]int in, [][]int out, or a flat row-major Field
//
// Subpackages:
//
//	edt/    — Field, Transform, options and logging
//	morph/  — morphology and region analysis on masks
//	raster/ — image decoding, thresholding, rendering and encoding
//	cmd/lvedt — command line front end
//
// Quick ASCII example:
//
//	0 0 0      2 1 2
//	0 1 0  ->  1 0 1
//	0 0 0      2 1 2
//
// squared distances to the single feature in the middle.
//
//	go get github.com/katalvlaran/lvedt/edt
package lvedt
