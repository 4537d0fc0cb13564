package imagewriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTGAHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeTGA(&buf, fixtureImage()))

	out := buf.Bytes()
	require.GreaterOrEqual(t, len(out), tgaHeaderLen)

	assert.Equal(t, byte(tgaUncompressedTrueColor), out[2])
	width := int(out[12]) | int(out[13])<<8
	height := int(out[14]) | int(out[15])<<8
	assert.Equal(t, 4, width)
	assert.Equal(t, 3, height)
	assert.Equal(t, byte(24), out[16])
	assert.Equal(t, byte(tgaTopLeftOrigin), out[17])
}

func TestEncodeTGABodySize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeTGA(&buf, fixtureImage()))
	want := tgaHeaderLen + 4*3*3 // width*bpp*height
	assert.Equal(t, want, buf.Len())
}

func TestEncodeTGAPixelOrder(t *testing.T) {
	var buf bytes.Buffer
	img := fixtureImage()
	require.NoError(t, encodeTGA(&buf, img))

	out := buf.Bytes()
	r, g, b, _ := img.At(0, 0).RGBA()
	pixel := out[tgaHeaderLen:]
	assert.Equal(t, byte(b>>8), pixel[0])
	assert.Equal(t, byte(g>>8), pixel[1])
	assert.Equal(t, byte(r>>8), pixel[2])
}
