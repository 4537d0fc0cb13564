// Package imagewriter is the image-writer collaborator (§6): it takes
// the pictures the H.264 dispatcher decodes and encodes each to its
// own file, in one of four formats, under a destination directory.
package imagewriter

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/ugparu/mp4thumb/internal/errs"
)

// Format selects the on-disk encoding a Writer produces.
type Format uint8

const (
	PNG Format = iota
	JPEG
	BMP
	TGA
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpg"
	case BMP:
		return "bmp"
	case TGA:
		return "tga"
	default:
		return "unknown"
	}
}

// ParseFormat maps a CLI-facing format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tga":
		return TGA, nil
	default:
		return 0, errs.New(errs.UnsupportedFeature, fmt.Sprintf("imagewriter: unknown format %q", name), 0)
	}
}

// Writer receives decoded pictures from the NAL dispatcher and encodes
// each to its own file under Dir, named by decode-order index. It
// implements h264.PictureSink.
type Writer struct {
	Dir     string
	Format  Format
	Quality int // [1,100], JPEG only
}

// WritePicture encodes img to Dir/thumb_<index>.<ext>.
func (w *Writer) WritePicture(img image.Image, index int) error {
	if w.Format > TGA {
		return errs.New(errs.UnsupportedFeature, "imagewriter: unknown format", 0)
	}

	name := filepath.Join(w.Dir, fmt.Sprintf("thumb_%04d.%s", index, w.Format))

	f, err := os.Create(name)
	if err != nil {
		return errs.Wrap(errs.IOFailure, "imagewriter: create output file", 0, err)
	}
	defer f.Close()

	if err := w.encode(f, img); err != nil {
		return errs.Wrap(errs.IOFailure, "imagewriter: encode picture", 0, err)
	}
	return nil
}

func (w *Writer) encode(f *os.File, img image.Image) error {
	switch w.Format {
	case PNG:
		return png.Encode(f, img)
	case JPEG:
		return jpeg.Encode(f, img, &jpeg.Options{Quality: w.Quality})
	case BMP:
		return bmp.Encode(f, img)
	default: // TGA
		return encodeTGA(f, img)
	}
}
