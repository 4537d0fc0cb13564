// Package rgb is the 24-bit picture buffer h264.SliceDecoder fills in
// place and imagewriter.Writer encodes: the dispatcher sizes one RGB
// per decoded IDR from its active SPS's frame dimensions, hands it to
// the slice decoder as a destination, then passes it straight on to
// the picture sink as an image.Image.
package rgb

import (
	"image"
	"image/color"
)

const (
	byteSize    = 8
	solid       = 65535
	bytesPerPix = 3
)

// Color is one packed 24-bit RGB pixel.
type Color struct {
	R, G, B byte
}

// RGBA satisfies color.Color, expanding each 8-bit channel to 16 bits.
func (rgb Color) RGBA() (uint32, uint32, uint32, uint32) {
	r := uint32(rgb.R)
	r |= r << byteSize
	g := uint32(rgb.G)
	g |= g << byteSize
	b := uint32(rgb.B)
	b |= b << byteSize
	return r, g, b, solid
}

// Model is the color.Model every RGB image reports.
type Model struct{}

// Convert reduces any color.Color down to a Color, dropping alpha.
func (Model) Convert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{byte(r >> byteSize), byte(g >> byteSize), byte(b >> byteSize)}
}

// RGB is a tightly packed 24-bit picture buffer, laid out the way a
// decoded IDR frame fills in: no alpha channel, no padding between
// rows beyond Stride.
type RGB struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewRGB allocates a zeroed RGB buffer sized to r.
func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]byte, bytesPerPix*r.Dx()*r.Dy()),
		Stride: r.Dx() * bytesPerPix,
		Rect:   r,
	}
}

// ColorModel satisfies image.Image.
func (*RGB) ColorModel() color.Model {
	return Model{}
}

// Bounds satisfies image.Image.
func (rgb *RGB) Bounds() image.Rectangle {
	return rgb.Rect
}

// PixOffset returns the index into Pix of the pixel at (x, y).
func (rgb *RGB) PixOffset(x, y int) int {
	return (y-rgb.Rect.Min.Y)*rgb.Stride + (x-rgb.Rect.Min.X)*bytesPerPix
}

// Opaque always reports true: this buffer carries no alpha channel.
func (*RGB) Opaque() bool {
	return true
}

// At satisfies image.Image.
func (rgb *RGB) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(rgb.Rect)) {
		return Color{}
	}
	i := rgb.PixOffset(x, y)
	s := rgb.Pix[i : i+bytesPerPix : i+bytesPerPix]
	return Color{s[0], s[1], s[2]}
}

// Set writes c at (x, y), converting it to Color first.
func (rgb *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(rgb.Rect)) {
		return
	}
	i := rgb.PixOffset(x, y)

	c1, _ := rgb.ColorModel().Convert(c).(Color)

	s := rgb.Pix[i : i+bytesPerPix : i+bytesPerPix]
	s[0] = c1.R
	s[1] = c1.G
	s[2] = c1.B
}
