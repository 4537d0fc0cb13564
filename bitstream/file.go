package bitstream

import (
	"os"
	"syscall"

	"github.com/ugparu/mp4thumb/internal/errs"
	"github.com/ugparu/mp4thumb/samplemap"
)

// Feeder is the random-access byte/bit reader over a file described by
// spec component A: it walks a SampleMap sample by sample, memory-maps
// the whole file once, and hands each sample's raw bytes to the
// dispatcher as its working buffer. Samples arrive already split into
// one NAL unit each by the demuxer; emulation-prevention bytes are
// stripped only when CleanSample is called.
type Feeder struct {
	region []byte // whole-file read-only mapping
	file   *os.File

	samples []samplemap.Sample
	index   int

	current []byte // active NAL buffer for the sample just fed
}

// Open mmaps f and prepares to feed samples from m in order.
func Open(f *os.File, m *samplemap.SampleMap) (*Feeder, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "bitstream: stat input file", 0, err)
	}
	size := int(info.Size())
	if size == 0 {
		return nil, errs.New(errs.IOFailure, "bitstream: empty input file", 0)
	}

	region, err := syscall.Mmap(int(f.Fd()), 0, size, syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "bitstream: mmap input file", 0, err)
	}

	return &Feeder{region: region, file: f, samples: m.Samples}, nil
}

// Close releases the mapping. It does not close the underlying file.
func (fd *Feeder) Close() error {
	if fd.region == nil {
		return nil
	}
	err := syscall.Munmap(fd.region)
	fd.region = nil
	if err != nil {
		return errs.Wrap(errs.IOFailure, "bitstream: munmap input file", 0, err)
	}
	return nil
}

// Done reports whether every sample has been fed.
func (fd *Feeder) Done() bool {
	return fd.index >= len(fd.samples)
}

// FeedNextSample advances to the next sample and loads its bytes,
// returning the sample's role so the dispatcher can route it without a
// second lookup.
func (fd *Feeder) FeedNextSample() (samplemap.Sample, error) {
	if fd.Done() {
		return samplemap.Sample{}, errs.New(errs.IOFailure, "bitstream: no more samples", 0)
	}
	s := fd.samples[fd.index]
	fd.index++

	start := s.Offset
	end := start + int64(s.Size)
	if start < 0 || end > int64(len(fd.region)) {
		return s, errs.New(errs.IOFailure, "bitstream: sample out of file bounds", s.Offset)
	}

	fd.current = fd.region[start:end]
	return s, nil
}

// CurrentSample returns the raw bytes loaded by the last FeedNextSample.
func (fd *Feeder) CurrentSample() []byte {
	return fd.current
}

// CleanSample strips NAL emulation-prevention bytes from the working
// buffer and returns the cleaned RBSP.
func (fd *Feeder) CleanSample() []byte {
	return StripEmulationPrevention(fd.current)
}
