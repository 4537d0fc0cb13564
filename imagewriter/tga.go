package imagewriter

import (
	"bufio"
	"image"
	"io"
)

// tgaHeaderLen is the fixed 18-byte TARGA header; this encoder never
// writes an image ID field or a color map, so pixel data starts
// immediately after it.
const tgaHeaderLen = 18

// tgaUncompressedTrueColor is the TARGA image-type byte for raw,
// uncompressed RGB data (the only variant this encoder produces).
const tgaUncompressedTrueColor = 2

// tgaTopLeftOrigin sets bit 5 of the image descriptor byte, so rows are
// stored top-to-bottom instead of the format's bottom-to-top default.
const tgaTopLeftOrigin = 1 << 5

// encodeTGA writes img as an uncompressed 24-bit true-color TARGA
// image: no library in the retrieval pack covers this format, so it is
// hand-rolled directly against the (trivial) header-plus-raw-BGR-rows
// layout.
func encodeTGA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	bw := bufio.NewWriter(w)

	var header [tgaHeaderLen]byte
	header[2] = tgaUncompressedTrueColor
	header[12] = byte(width)
	header[13] = byte(width >> 8) //nolint:mnd
	header[14] = byte(height)
	header[15] = byte(height >> 8) //nolint:mnd
	header[16] = 24                //nolint:mnd // bits per pixel
	header[17] = tgaTopLeftOrigin
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	row := make([]byte, width*3) //nolint:mnd // 3 bytes per BGR pixel
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			i := (x - b.Min.X) * 3 //nolint:mnd
			row[i] = byte(bl >> 8) //nolint:mnd
			row[i+1] = byte(g >> 8) //nolint:mnd
			row[i+2] = byte(r >> 8) //nolint:mnd
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
