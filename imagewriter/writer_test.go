package imagewriter

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 255, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"png": PNG, "jpeg": JPEG, "jpg": JPEG, "bmp": BMP, "tga": TGA}
	for name, want := range cases {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	require.Error(t, err)
}

func TestWritePicturePNG(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir, Format: PNG}
	require.NoError(t, w.WritePicture(fixtureImage(), 0))

	f, err := os.Open(filepath.Join(dir, "thumb_0000.png"))
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, fixtureImage().Bounds(), decoded.Bounds())
}

func TestWritePictureJPEG(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir, Format: JPEG, Quality: 80}
	require.NoError(t, w.WritePicture(fixtureImage(), 1))

	f, err := os.Open(filepath.Join(dir, "thumb_0001.jpg"))
	require.NoError(t, err)
	defer f.Close()
	decoded, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, fixtureImage().Bounds(), decoded.Bounds())
}

func TestWritePictureUnknownFormat(t *testing.T) {
	w := &Writer{Dir: t.TempDir(), Format: Format(99)}
	err := w.WritePicture(fixtureImage(), 0)
	require.Error(t, err)
}

func TestWritePictureBadDir(t *testing.T) {
	w := &Writer{Dir: "/nonexistent/path/that/does/not/exist", Format: PNG}
	err := w.WritePicture(fixtureImage(), 0)
	require.Error(t, err)
}
