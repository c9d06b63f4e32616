// Package raster connects images to distance fields: it thresholds a
// decoded image into an edt.Field of features and renders a transformed
// field back into a grayscale image.
//
// Decoding understands PNG, JPEG and GIF from the standard library and BMP,
// TIFF and WebP from golang.org/x/image. Encoding writes PNG, BMP or TIFF.
package raster
