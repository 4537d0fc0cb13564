package h264

import (
	"image"

	"github.com/ugparu/mp4thumb/bitstream"
	"github.com/ugparu/mp4thumb/frame/rgb"
	"github.com/ugparu/mp4thumb/internal/errs"
	"github.com/ugparu/mp4thumb/internal/logger"
	"github.com/ugparu/mp4thumb/samplemap"
)

// sampleFeeder is the subset of *bitstream.Feeder the dispatcher needs.
// Narrowing it to an interface keeps the dispatch loop (§4.E) testable
// without a real mmapped file behind it.
type sampleFeeder interface {
	Done() bool
	FeedNextSample() (samplemap.Sample, error)
	CleanSample() []byte
	Close() error
}

// errorBudget is the §4.E/§8 abort threshold: once errorCounter exceeds
// it the dispatcher stops the run with a failure, regardless of how
// many IDRs it has already produced.
const errorBudget = 64

// SliceDecoder is the external collaborator that turns a clean IDR NAL
// plus its validated SPS/PPS into a decoded picture. Slice/macroblock
// reconstruction is explicitly out of scope for this package; callers
// inject a concrete decoder (or a stub, for tests exercising only
// dispatch/orchestration). dst is sized to the active SPS's frame
// dimensions before Decode is called, so the decoder never has to
// determine the picture's geometry itself.
type SliceDecoder interface {
	Decode(nal []byte, sps *SPSInfo, pps *PPS, quant *QuantTables, dst *rgb.RGB) error
}

// PictureSink receives every picture the dispatcher successfully
// decodes, in decode order.
type PictureSink interface {
	WritePicture(img image.Image, index int) error
}

// DecodingContext is the per-file NAL dispatcher and its owned
// resources (§3, §4.E). One instance exists per decode run; it is
// created fresh for each input file and torn down on completion.
type DecodingContext struct {
	feeder sampleFeeder
	cache  *Cache
	quant  *QuantTables
	slice  SliceDecoder
	sink   PictureSink

	pictureNumber int

	idrCounter   int
	frameCounter int
	errorCounter int

	activeSEI []byte
}

// NewDecodingContext wires a feeder over an already-filtered SampleMap
// together with a slice decoder and picture sink. pictureNumber is the
// dispatcher's success target: the loop stops once idrCounter reaches
// it.
func NewDecodingContext(feeder sampleFeeder, slice SliceDecoder, sink PictureSink,
	pictureNumber int) *DecodingContext {
	return &DecodingContext{
		feeder:        feeder,
		cache:         NewCache(),
		quant:         NewQuantTables(),
		slice:         slice,
		sink:          sink,
		pictureNumber: pictureNumber,
	}
}

// String identifies this context in log output.
func (dc *DecodingContext) String() string {
	return "h264.DecodingContext"
}

// Close_ releases every resource this context owns (§5 ownership: the
// DecodingContext exclusively owns its sub-resources, the file handle
// behind the feeder is merely borrowed). It satisfies lifecycle.Instance
// so a caller can wrap a DecodingContext in lifecycle.NewManager for
// idempotent teardown on both normal completion and fatal abort.
func (dc *DecodingContext) Close_() {
	if err := dc.feeder.Close(); err != nil {
		logger.Warningf(dc, "error closing feeder: %v", err)
	}
	dc.cache = nil
	dc.activeSEI = nil
}

// Run drives the main dispatch loop (§4.E) until termination: success
// when idrCounter reaches pictureNumber, failure when errorCounter
// exceeds errorBudget or a fatal error occurs, and a clean stop when the
// feeder runs out of samples first (fewer IDRs survived the filter than
// requested). It returns the number of pictures written.
func (dc *DecodingContext) Run() (int, error) {
	for !dc.feeder.Done() {
		sample, err := dc.feeder.FeedNextSample()
		if err != nil {
			return dc.frameCounter, err
		}

		if err = dc.dispatch(sample); err != nil {
			if isFatal(err) {
				return dc.frameCounter, err
			}
			dc.errorCounter++
			logger.Warningf(dc, "NAL dispatch error (errorCounter=%d): %v", dc.errorCounter, err)
		}

		if dc.idrCounter == dc.pictureNumber {
			return dc.frameCounter, nil
		}
		if dc.errorCounter > errorBudget {
			return dc.frameCounter, errs.New(errs.MalformedBitstream, "h264: error budget exceeded", 0)
		}
	}
	return dc.frameCounter, nil
}

func isFatal(err error) bool {
	for _, k := range []errs.Kind{errs.ResourceExhaustion, errs.IOFailure} {
		if errs.As(err, k) {
			return true
		}
	}
	return false
}

// dispatch classifies and routes one sample per §4.E step 2-3. SPS/PPS
// pseudo-samples and slice samples both flow through here; the demuxer
// tags each sample with its role so the dispatcher never has to
// re-parse the NAL header to find out what it is.
func (dc *DecodingContext) dispatch(sample samplemap.Sample) error {
	clean := dc.feeder.CleanSample()
	if len(clean) < 1 {
		return errs.New(errs.MalformedBitstream, "h264: empty NAL", sample.Offset)
	}

	switch sample.Type {
	case samplemap.TypeSPS:
		sps, err := ParseSPS(clean)
		if err != nil {
			return err
		}
		return dc.cache.PutSPS(sps)

	case samplemap.TypePPS:
		pps, err := ParsePPS(clean)
		if err != nil {
			return err
		}
		return dc.cache.PutPPS(pps)

	case samplemap.TypeSEI:
		dc.activeSEI = clean
		return nil

	case samplemap.TypeIDR:
		return dc.decodeIDR(clean)

	case samplemap.TypeNonIDR:
		// Non-IDR slice types are outside this decoder's scope (§1
		// Non-goals): log and move on rather than counting it as an
		// error, per §4.E step 3's case 1.
		logger.Debugf(dc, "skipping non-IDR slice at offset %d", sample.Offset)
		return nil

	default:
		return errs.New(errs.UnsupportedFeature, "h264: unrecognized sample type", sample.Offset)
	}
}

// decodeIDR implements the §4.F validation gate and the §4.E IDR
// handler: on a successful decode it hands the picture to the sink,
// advances idrCounter and frameCounter, and resets errorCounter.
func (dc *DecodingContext) decodeIDR(nal []byte) error {
	ppsID, err := activePPSID(nal)
	if err != nil {
		return err
	}

	pps, sps, err := dc.cache.Validate(ppsID)
	if err != nil {
		return err
	}

	dst := rgb.NewRGB(image.Rect(0, 0, int(sps.Width), int(sps.Height))) //nolint:gosec
	if err = dc.slice.Decode(nal, sps, pps, dc.quant, dst); err != nil {
		return err
	}

	if err = dc.sink.WritePicture(dst, dc.frameCounter); err != nil {
		return err
	}

	dc.idrCounter++
	dc.frameCounter++
	dc.errorCounter = 0
	return nil
}

// activePPSID reads slice_header.pic_parameter_set_id, the first field
// of every slice_header() regardless of slice type.
func activePPSID(nal []byte) (uint, error) {
	if len(nal) < 2 { //nolint:mnd
		return 0, errs.New(errs.MalformedBitstream, "h264: slice NAL too short", 0)
	}
	r := bitstream.NewReader(nal[1:])
	if _, err := readUE(r, "slice first_mb_in_slice"); err != nil {
		return 0, err
	}
	if _, err := readUE(r, "slice slice_type"); err != nil {
		return 0, err
	}
	id, err := readUE(r, "slice pic_parameter_set_id")
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
