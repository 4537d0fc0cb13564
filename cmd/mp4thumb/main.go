// Command mp4thumb extracts IDR keyframe thumbnails from an MP4 file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	mp4thumb "github.com/ugparu/mp4thumb"
	"github.com/ugparu/mp4thumb/frame/rgb"
	"github.com/ugparu/mp4thumb/h264"
	"github.com/ugparu/mp4thumb/imagewriter"
	"github.com/ugparu/mp4thumb/internal/errs"
	"github.com/ugparu/mp4thumb/internal/logger"
	"github.com/ugparu/mp4thumb/samplemap"
)

func main() {
	os.Exit(run())
}

// run does the real work and returns a process exit code. Keeping
// os.Exit out of it means logger.Flush (deferred below) always runs
// before the process terminates, regardless of which path returns —
// os.Exit called directly from main would skip every pending defer and
// drop whatever log lines were still sitting in the channel.
func run() int {
	var (
		input   = flag.String("input", "", "path to the source MP4 file")
		output  = flag.String("output", ".", "directory to write thumbnails into")
		format  = flag.String("format", "png", "output image format: png, jpeg, bmp, tga")
		quality = flag.Int("quality", 90, "JPEG quality, 1-100") //nolint:mnd
		count   = flag.Int("count", 1, "number of thumbnails to extract")
		mode    = flag.String("mode", "ordered", "IDR selection mode: unfiltered, ordered, distributed")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	lvl := logrus.InfoLevel
	if *verbose {
		lvl = logrus.DebugLevel
	}
	logger.Init(lvl)
	defer logger.Flush()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "mp4thumb: -input is required")
		return 2 //nolint:mnd
	}

	extractionMode, err := parseMode(*mode)
	if err != nil {
		return fail(err)
	}

	fmtID, err := imagewriter.ParseFormat(*format)
	if err != nil {
		return fail(err)
	}

	cfg := mp4thumb.Config{
		InputPath:      *input,
		OutputDir:      *output,
		Format:         fmtID,
		Quality:        *quality,
		PictureNumber:  *count,
		ExtractionMode: extractionMode,
	}

	n, err := mp4thumb.Extract(cfg, unimplementedSliceDecoder{})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("wrote %d thumbnail(s) to %s\n", n, *output)
	return 0
}

func parseMode(name string) (samplemap.ExtractionMode, error) {
	switch name {
	case "unfiltered":
		return samplemap.Unfiltered, nil
	case "ordered":
		return samplemap.Ordered, nil
	case "distributed":
		return samplemap.Distributed, nil
	default:
		return 0, errs.New(errs.UnsupportedFeature, fmt.Sprintf("mp4thumb: unknown mode %q", name), 0)
	}
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, "mp4thumb:", err)
	return 1
}

// unimplementedSliceDecoder stands in for the slice/macroblock pixel
// reconstruction pipeline, which is explicitly out of scope (§1
// Non-goals): this command exercises the full demux/select/dispatch
// orchestration around it, but decoding an actual IDR picture requires
// plugging in a real h264.SliceDecoder.
type unimplementedSliceDecoder struct{}

func (unimplementedSliceDecoder) Decode(_ []byte, _ *h264.SPSInfo, _ *h264.PPS, _ *h264.QuantTables, _ *rgb.RGB) error {
	return errs.New(errs.UnsupportedFeature, "mp4thumb: slice/macroblock decoding is not implemented", 0)
}
