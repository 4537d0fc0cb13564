// Package mp4thumb wires the container demuxer, the IDR selection
// filter and the H.264 NAL dispatcher into one end-to-end extraction
// run: open a file, build its sample map, trim it to the requested
// picture count, decode the survivors and hand each picture to an
// image-writer collaborator.
package mp4thumb

import (
	"os"

	"github.com/ugparu/mp4thumb/bitstream"
	"github.com/ugparu/mp4thumb/container/mp4"
	"github.com/ugparu/mp4thumb/h264"
	"github.com/ugparu/mp4thumb/imagewriter"
	"github.com/ugparu/mp4thumb/internal/errs"
	"github.com/ugparu/mp4thumb/internal/lifecycle"
	"github.com/ugparu/mp4thumb/samplemap"
)

// Config is one extraction run's parameters: the DecodingContext's
// output configuration (§3) plus the input/output paths, populated as
// real run parameters by a CLI front end from flags.
type Config struct {
	InputPath string
	OutputDir string

	Format         imagewriter.Format
	Quality        int
	PictureNumber  int
	ExtractionMode samplemap.ExtractionMode
}

// Extract runs one full file through the pipeline and returns the
// number of thumbnails written. slice is the external slice/macroblock
// decoder collaborator (§1 Non-goals): this package supplies every
// surrounding piece — demux, selection, dispatch, teardown — but not
// pixel reconstruction itself.
func Extract(cfg Config, slice h264.SliceDecoder) (int, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return 0, errs.Wrap(errs.IOFailure, "mp4thumb: open input file", 0, err)
	}
	defer f.Close()

	sm, err := mp4.Demux(f)
	if err != nil {
		return 0, err
	}

	filtered, idrCount := samplemap.Filter(sm, cfg.PictureNumber, cfg.ExtractionMode)

	feeder, err := bitstream.Open(f, filtered)
	if err != nil {
		return 0, err
	}

	sink := &imagewriter.Writer{
		Dir:     cfg.OutputDir,
		Format:  cfg.Format,
		Quality: cfg.Quality,
	}

	dc := h264.NewDecodingContext(feeder, slice, sink, idrCount)
	mgr := lifecycle.NewManager[*h264.DecodingContext](dc)

	var written int
	startErr := mgr.Start(func(ctx *h264.DecodingContext) error {
		n, runErr := ctx.Run()
		written = n
		return runErr
	})
	mgr.Close()

	return written, startErr
}
