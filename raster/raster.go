package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/katalvlaran/lvedt/edt"
)

// ErrUnknownFormat indicates an output format other than png, bmp or tiff.
var ErrUnknownFormat = errors.New("raster: unknown image format")

// ThresholdOptions configures how an image becomes a feature mask.
//
// Fields:
//   - Level  — luminance (0..255) at or above which a pixel is a feature.
//   - Invert — if true, pixels strictly below Level are features instead.
type ThresholdOptions struct {
	Level  uint8
	Invert bool
}

// DefaultThresholdOptions returns Level=128, Invert=false.
func DefaultThresholdOptions() ThresholdOptions {
	return ThresholdOptions{Level: 128}
}

// Threshold converts img into a field with one cell per pixel: row r is
// image row Bounds().Min.Y + r. Feature cells are set to 1.
// Complexity: O(W×H).
func Threshold(img image.Image, opts ThresholdOptions) *edt.Field {
	b := img.Bounds()
	f := &edt.Field{Rows: b.Dy(), Cols: b.Dx(), Data: make([]int, b.Dx()*b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := (y - b.Min.Y) * f.Cols
		for x := b.Min.X; x < b.Max.X; x++ {
			lum := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if (lum >= opts.Level) != opts.Invert {
				f.Data[row+x-b.Min.X] = 1
			}
		}
	}

	return f
}

// Render maps the Euclidean distances of a transformed field linearly onto
// 0..255, saturating at maxDist. A maxDist that is not a positive finite
// number (<= 0, NaN, ±Inf) scales to the field maximum instead.
// A field whose distances are all zero renders black.
// Complexity: O(W×H).
func Render(f *edt.Field, maxDist float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Cols, f.Rows))
	if !(maxDist > 0) || math.IsInf(maxDist, 1) {
		maxDist = 0
		for _, v := range f.Data {
			maxDist = math.Max(maxDist, math.Sqrt(float64(v)))
		}
	}
	if maxDist <= 0 {
		return img
	}

	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			v := math.Min(f.Distance(r, c)/maxDist, 1)
			img.Pix[r*img.Stride+c] = uint8(math.Round(v * 255))
		}
	}

	return img
}

// Decode reads an image in any registered format and returns the format
// name reported by the decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("raster: decode: %w", err)
	}

	return img, format, nil
}

// Encode writes img in the named format: "png", "bmp" or "tiff"/"tif".
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %s: %w", format, err)
	}

	return nil
}

// RenderLabels maps small integer labels (band indices, component ids)
// linearly onto 0..255 so that the largest label is white.
// Complexity: O(W×H).
func RenderLabels(f *edt.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Cols, f.Rows))
	top := 0
	for _, v := range f.Data {
		top = max(top, v)
	}
	if top == 0 {
		return img
	}

	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			v := max(f.At(r, c), 0)
			img.Pix[r*img.Stride+c] = uint8(v * 255 / top)
		}
	}

	return img
}
