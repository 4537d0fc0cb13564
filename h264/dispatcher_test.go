package h264

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugparu/mp4thumb/frame/rgb"
	"github.com/ugparu/mp4thumb/samplemap"
)

// fakeFeeder replays a fixed slice of (Sample, payload) pairs, letting
// dispatcher tests drive Run() without a real mmapped file.
type fakeFeeder struct {
	samples  []samplemap.Sample
	payloads [][]byte
	index    int
}

func (f *fakeFeeder) Done() bool { return f.index >= len(f.samples) }

func (f *fakeFeeder) FeedNextSample() (samplemap.Sample, error) {
	s := f.samples[f.index]
	f.index++
	return s, nil
}

func (f *fakeFeeder) CleanSample() []byte {
	return f.payloads[f.index-1]
}

func (f *fakeFeeder) Close() error { return nil }

type fakeSliceDecoder struct {
	calls int
	fail  bool
}

func (d *fakeSliceDecoder) Decode(_ []byte, _ *SPSInfo, _ *PPS, _ *QuantTables, _ *rgb.RGB) error {
	d.calls++
	if d.fail {
		return ErrDecconfInvalid
	}
	return nil
}

type fakeSink struct {
	written int
}

func (s *fakeSink) WritePicture(_ image.Image, _ int) error {
	s.written++
	return nil
}

func TestDispatcherExactFit(t *testing.T) {
	sps := spsRBSP(t, 1)
	pps := ppsRBSP(t, 0, 1)
	slice := idrSliceRBSP(t, 0)

	feeder := &fakeFeeder{
		samples: []samplemap.Sample{
			{Type: samplemap.TypeSPS},
			{Type: samplemap.TypePPS},
			{Type: samplemap.TypeIDR},
			{Type: samplemap.TypeIDR},
			{Type: samplemap.TypeIDR},
		},
		payloads: [][]byte{sps, pps, slice, slice, slice},
	}
	decoder := &fakeSliceDecoder{}
	sink := &fakeSink{}

	dc := NewDecodingContext(feeder, decoder, sink, 3)
	written, err := dc.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, written)
	assert.Equal(t, 3, decoder.calls)
	assert.Equal(t, 3, sink.written)
}

func TestDispatcherDanglingPPS(t *testing.T) {
	sps := spsRBSP(t, 1)
	slice := idrSliceRBSP(t, 2) // references PPS 2, never parsed

	feeder := &fakeFeeder{
		samples: []samplemap.Sample{
			{Type: samplemap.TypeSPS},
			{Type: samplemap.TypeIDR},
		},
		payloads: [][]byte{sps, slice},
	}
	decoder := &fakeSliceDecoder{}
	sink := &fakeSink{}

	dc := NewDecodingContext(feeder, decoder, sink, 1)
	written, err := dc.Run()
	require.NoError(t, err) // feeder runs dry, not a fatal error
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, decoder.calls)
	assert.Equal(t, 1, dc.errorCounter)
}

func TestDispatcherErrorBudgetExceeded(t *testing.T) {
	samples := make([]samplemap.Sample, 0, errorBudget+2)
	payloads := make([][]byte, 0, errorBudget+2)
	for range errorBudget + 1 {
		samples = append(samples, samplemap.Sample{Type: samplemap.TypeSPS})
		payloads = append(payloads, []byte{}) // empty NAL -> MalformedBitstream every time
	}

	feeder := &fakeFeeder{samples: samples, payloads: payloads}
	dc := NewDecodingContext(feeder, &fakeSliceDecoder{}, &fakeSink{}, 1)

	_, err := dc.Run()
	require.Error(t, err)
	assert.Greater(t, dc.errorCounter, errorBudget)
}
