package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/katalvlaran/lvedt/edt"
	"github.com/katalvlaran/lvedt/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grayImage builds a gray image from luminance rows.
func grayImage(rows [][]uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, v := range row {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return img
}

func TestThreshold(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 127, 128},
		{255, 10, 200},
	})

	f := raster.Threshold(img, raster.DefaultThresholdOptions())
	assert.Equal(t, [][]int{{0, 0, 1}, {1, 0, 1}}, f.ToRows())

	inv := raster.Threshold(img, raster.ThresholdOptions{Level: 128, Invert: true})
	assert.Equal(t, [][]int{{1, 1, 0}, {0, 1, 0}}, inv.ToRows())
}

// TestThreshold_OffsetBounds checks that images not anchored at the origin
// map their first pixel to cell (0,0).
func TestThreshold_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 22))
	img.SetGray(10, 20, color.Gray{Y: 255})
	img.SetGray(12, 21, color.Gray{Y: 255})

	f := raster.Threshold(img, raster.DefaultThresholdOptions())
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 0, 1}}, f.ToRows())
}

func TestRender(t *testing.T) {
	f, err := edt.FromRows([][]int{{1, 0, 0}})
	require.NoError(t, err)
	f.Transform()

	auto := raster.Render(f, 0)
	assert.Equal(t, []uint8{0, 128, 255}, auto.Pix)

	clipped := raster.Render(f, 1)
	assert.Equal(t, []uint8{0, 255, 255}, clipped.Pix)

	flat, err := edt.FromRows([][]int{{1, 1}})
	require.NoError(t, err)
	flat.Transform()
	assert.Equal(t, []uint8{0, 0}, raster.Render(flat, 0).Pix)
}

// TestRender_NonFiniteMax falls back to the field maximum.
func TestRender_NonFiniteMax(t *testing.T) {
	f, err := edt.FromRows([][]int{{1, 0, 0, 0}})
	require.NoError(t, err)
	f.Transform()

	want := raster.Render(f, 0).Pix
	for _, maxDist := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -2} {
		assert.Equal(t, want, raster.Render(f, maxDist).Pix, "maxDist=%v", maxDist)
	}
}

// TestEncodeDecode_RoundTrip writes a mask in every output format and reads
// it back into the same feature field.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 255, 0, 0},
		{255, 255, 0, 255},
		{0, 0, 0, 0},
	})
	want := raster.Threshold(img, raster.DefaultThresholdOptions())

	for _, format := range []string{"png", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, raster.Encode(&buf, img, format))

			got, name, err := raster.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, name)
			assert.Equal(t, want.ToRows(), raster.Threshold(got, raster.DefaultThresholdOptions()).ToRows())
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := raster.Encode(&bytes.Buffer{}, image.NewGray(image.Rect(0, 0, 1, 1)), "xcf")
	assert.ErrorIs(t, err, raster.ErrUnknownFormat)
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := raster.Decode(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestRenderLabels(t *testing.T) {
	f, err := edt.FromRows([][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 85, 170, 255}, raster.RenderLabels(f).Pix)

	zero, err := edt.NewField(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0}, raster.RenderLabels(zero).Pix)
}
