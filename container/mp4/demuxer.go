// Package mp4 reconstructs the per-sample layout of an MP4 file's AVC
// video track (§4.C) into a samplemap.SampleMap: it walks the box tree
// via mp4io, rebuilds the sample table's offsets/sizes/timing/sync
// flags, splits each access unit into individual NAL units, and
// classifies every NAL (plus the avcC-embedded SPS/PPS) by its
// dispatch role.
package mp4

import (
	"os"

	"github.com/ugparu/mp4thumb/bitstream"
	"github.com/ugparu/mp4thumb/container/mp4/mp4io"
	"github.com/ugparu/mp4thumb/h264"
	"github.com/ugparu/mp4thumb/internal/errs"
	"github.com/ugparu/mp4thumb/internal/logger"
	"github.com/ugparu/mp4thumb/samplemap"
	"github.com/ugparu/mp4thumb/utils/bits/pio"
	"github.com/ugparu/mp4thumb/utils/buffer"
)

// avcParamSetHeaderLen is the fixed prefix of an AVCDecoderConfRecord
// before the first SPS length field: version, profile, profile
// compatibility, level, length-size-minus-one, and the SPS count byte.
const avcParamSetHeaderLen = 6

// Demux opens f, locates its first AVC video track and returns a
// SampleMap with the avcC-embedded SPS/PPS prepended as pseudo-samples
// ahead of every NAL split out of the track's access units, in decode
// order. f must stay open and unmodified for the lifetime of any
// bitstream.Feeder built over the returned map.
func Demux(f *os.File) (*samplemap.SampleMap, error) {
	atoms, err := mp4io.ReadFileAtoms(f)
	if err != nil {
		return nil, errs.Wrap(errs.MalformedContainer, "mp4: read top-level atoms", 0, err)
	}

	movie := findMovie(atoms)
	if movie == nil {
		return nil, errs.New(errs.MalformedContainer, "mp4: no moov box", 0)
	}

	track, desc := findAVCTrack(movie)
	if track == nil || desc.Conf == nil {
		return nil, errs.New(errs.UnsupportedFeature, "mp4: no AVC video track with avcC", 0)
	}

	timescale := uint32(track.Media.Header.TimeScale) //nolint:gosec

	aus, err := buildAccessUnits(track.Media.Info.Sample, timescale)
	if err != nil {
		return nil, err
	}

	paramSamples, err := avcParamSetSamples(desc.Conf)
	if err != nil {
		return nil, err
	}

	m := &samplemap.SampleMap{
		StreamType:       samplemap.Video,
		StreamCodec:      "avc1",
		TimeScale:        timescale,
		Width:            uint(desc.Width),  //nolint:gosec
		Height:           uint(desc.Height), //nolint:gosec
		AVCDecoderConfig: desc.Conf.Data,
	}
	for _, s := range paramSamples {
		m.Append(s)
	}

	for _, au := range aus {
		samples, err := splitAccessUnit(f, au)
		if err != nil {
			return nil, err
		}
		for _, s := range samples {
			if s.Type == samplemap.TypeIDR && !au.Sync {
				logger.Warningf("mp4.Demux", "IDR NAL at offset %d not marked sync by stss", s.Offset)
			}
			m.Append(s)
		}
	}

	return m, nil
}

func findMovie(atoms []mp4io.Atom) *mp4io.Movie {
	for _, a := range atoms {
		if mv, ok := a.(*mp4io.Movie); ok {
			return mv
		}
	}
	return nil
}

// findAVCTrack returns the first track whose media handler is `vide`
// and whose sample description carries an avc1 entry.
func findAVCTrack(movie *mp4io.Movie) (*mp4io.Track, *mp4io.AVC1Desc) {
	for _, t := range movie.Tracks {
		if t.Media == nil || t.Media.Handler == nil || t.Media.Header == nil {
			continue
		}
		if string(t.Media.Handler.HandlerType[:]) != "vide" {
			continue
		}
		if t.Media.Info == nil || t.Media.Info.Sample == nil || t.Media.Info.Sample.SampleDesc == nil {
			continue
		}
		if desc := t.Media.Info.Sample.SampleDesc.AVC1Desc; desc != nil {
			return t, desc
		}
	}
	return nil, nil
}

// avcParamSetSamples walks avcC's SPS/PPS tables the same way
// h264.AVCDecoderConfRecord.Unmarshal does, but tracks absolute file
// position instead of slicing, since Unmarshal's returned byte slices
// carry no offset information of their own.
func avcParamSetSamples(conf *mp4io.AVC1Conf) ([]samplemap.Sample, error) {
	var rec h264.AVCDecoderConfRecord
	if _, err := rec.Unmarshal(conf.Data); err != nil {
		return nil, errs.Wrap(errs.MalformedContainer, "mp4: parse avcC", int64(conf.AtomPos.Offset), err)
	}

	dataOffset := int64(conf.AtomPos.Offset + mp4io.HeaderSize)

	samples := make([]samplemap.Sample, 0, len(rec.SPS)+len(rec.PPS))
	pos := int64(avcParamSetHeaderLen)
	for _, sps := range rec.SPS {
		pos += 2 //nolint:mnd // 2-byte length field
		samples = append(samples, samplemap.Sample{
			Offset: dataOffset + pos,
			Size:   uint32(len(sps)), //nolint:gosec
			Type:   samplemap.TypeSPS,
		})
		pos += int64(len(sps))
	}
	pos++ // pps count byte
	for _, pps := range rec.PPS {
		pos += 2 //nolint:mnd
		samples = append(samples, samplemap.Sample{
			Offset: dataOffset + pos,
			Size:   uint32(len(pps)), //nolint:gosec
			Type:   samplemap.TypePPS,
		})
		pos += int64(len(pps))
	}
	return samples, nil
}

// splitAccessUnit reads one AVCC length-prefixed access unit and emits
// one Sample per embedded NAL unit, each tagged by its NAL header type
// and carrying the unit's absolute file offset.
func splitAccessUnit(f *os.File, au accessUnit) ([]samplemap.Sample, error) {
	buf := buffer.Get(int(au.Size))
	defer buf.Release()

	data := buf.Data()
	if _, err := f.ReadAt(data, au.Offset); err != nil {
		return nil, errs.Wrap(errs.IOFailure, "mp4: read access unit", au.Offset, err)
	}

	regions, err := avccNALRegions(data)
	if err != nil {
		return nil, errs.Wrap(errs.MalformedContainer, "mp4: split access unit into NALs", au.Offset, err)
	}

	samples := make([]samplemap.Sample, 0, len(regions))
	for _, r := range regions {
		samples = append(samples, samplemap.Sample{
			Offset: au.Offset + int64(r.offset),
			Size:   uint32(r.size), //nolint:gosec
			Type:   classifyNAL(data[r.offset]),
			PTS:    au.PTS,
			DTS:    au.DTS,
		})
	}
	return samples, nil
}

type nalRegion struct {
	offset int
	size   int
}

// avccNALRegions walks buf's AVCC length-prefixed NAL table and records
// each NAL's (offset, size) within buf. Every sample this module reads
// is already AVCC-framed (§4.C: avc1 tracks are length-prefixed, never
// Annex B), so there is no start-code scan to share with anything
// else — this is the one and only NAL split the demuxer needs, and it
// has to track position rather than just slice content, since the
// caller needs each NAL's absolute file offset, not just its bytes.
func avccNALRegions(buf []byte) ([]nalRegion, error) {
	var regions []nalRegion
	pos := 0
	for pos+bitstream.MinNaluSize <= len(buf) {
		size := int(pio.U32BE(buf[pos:]))
		pos += bitstream.MinNaluSize
		if size <= 0 {
			break
		}
		if pos+size > len(buf) {
			return nil, errs.New(errs.MalformedContainer, "mp4: NAL length prefix exceeds access unit", int64(pos))
		}
		regions = append(regions, nalRegion{offset: pos, size: size})
		pos += size
	}
	if len(regions) == 0 {
		return nil, errs.New(errs.MalformedContainer, "mp4: access unit contains no length-prefixed NAL units", 0)
	}
	return regions, nil
}

// classifyNAL maps a NAL header byte to its dispatch role (§4.E).
func classifyNAL(header byte) samplemap.Type {
	const nalTypeMask = 0x1f
	switch header & nalTypeMask {
	case bitstream.NalTypeSPS:
		return samplemap.TypeSPS
	case bitstream.NalTypePPS:
		return samplemap.TypePPS
	case bitstream.NalTypeSEI:
		return samplemap.TypeSEI
	case bitstream.NalTypeIDRSlice:
		return samplemap.TypeIDR
	case bitstream.NalTypeNonIDRSlice:
		return samplemap.TypeNonIDR
	default:
		return samplemap.TypeOther
	}
}
