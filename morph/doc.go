// Package morph performs binary morphology and region analysis on masks by
// way of the exact Euclidean distance transform in package edt.
//
// What:
//
//   - Dilate / Erode / Open / Close a mask by a Euclidean disk of any radius.
//   - Bands: quantize a distance field into rings of fixed width.
//   - Components: 4- or 8-connected regions ("islands") of non-zero cells.
//   - Gap: exact squared Euclidean gap between two regions.
//   - Bridge: fewest background cells to convert so two regions touch; the
//     shortest such path, searched with A* guided by a distance transform.
//
// Why:
//
//   - Raster cleanup: remove specks (Open), fill pinholes (Close).
//   - Clearance: keep-out zones around obstacles for planners.
//   - Visual effects: outlines and glows at exact pixel radii.
//
// Complexity:
//
//   - Dilate, Erode, Bands: O(W×H), Memory: O(W×H).
//   - Components:           O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - Bridge:               O(W×H×d×log(W×H)), Memory: O(W×H).
//   - Gap:                  O(W×H×d), Memory: O(W×H).
//
// Masks are *edt.Field values: zero is background, anything else is set.
// Results are fresh fields holding 0 or 1; inputs are never modified.
//
// Errors:
//
//   - ErrBadRadius: negative or NaN radius.
//   - ErrBadWidth: non-positive or NaN band width.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between the two components.
package morph
