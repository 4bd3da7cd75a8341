package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestThumbnailFitsBoundingBox(t *testing.T) {
	proc := NewImageProcessor()

	out, err := proc.Thumbnail(pngImage(t, 800, 400), 200, 200)
	require.NoError(t, err)

	thumb, err := jpeg.Decode(out)
	require.NoError(t, err)

	bounds := thumb.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 200)
	assert.LessOrEqual(t, bounds.Dy(), 200)
	// Aspect ratio is preserved, so the wide side hits the limit.
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())
}

func TestThumbnailRejectsNonImage(t *testing.T) {
	proc := NewImageProcessor()

	_, err := proc.Thumbnail(strings.NewReader("not an image"), 200, 200)
	assert.Error(t, err)
}
