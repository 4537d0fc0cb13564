package mp4

import (
	"time"

	"github.com/ugparu/mp4thumb/container/mp4/mp4io"
	"github.com/ugparu/mp4thumb/internal/errs"
)

// accessUnit is one materialized container-level sample before per-NALU
// splitting: its absolute file byte range, decode/presentation timing,
// and whether stss marks it a sync point.
type accessUnit struct {
	Offset int64
	Size   uint32
	Sync   bool
	DTS    time.Duration
	PTS    time.Duration
}

// buildAccessUnits reconstructs the sample table per §4.C: chunk
// membership from stsc, byte offsets from stco/co64 plus cumulative
// sizes within the chunk, sizes from stsz, sync flags from stss
// (its absence means every sample is a sync point), and timing from
// stts (+ ctts).
func buildAccessUnits(stbl *mp4io.SampleTable, timescale uint32) ([]accessUnit, error) {
	if stbl.SampleSize == nil || stbl.SampleToChunk == nil || stbl.TimeToSample == nil {
		return nil, errs.New(errs.MalformedContainer, "mp4: stbl missing a mandatory child box", 0)
	}

	offsets := stbl.Offsets()
	if len(offsets) == 0 {
		return nil, errs.New(errs.MalformedContainer, "mp4: stbl has no chunk offset table", 0)
	}

	count := stbl.SampleSize.Count()
	aus := make([]accessUnit, 0, count)

	sampleIdx := 0
	for chunkIdx := 0; chunkIdx < len(offsets) && sampleIdx < count; chunkIdx++ {
		samplesPerChunk := samplesInChunk(stbl.SampleToChunk.Entries, uint32(chunkIdx+1)) //nolint:gosec
		cursor := int64(offsets[chunkIdx])
		for s := uint32(0); s < samplesPerChunk && sampleIdx < count; s++ {
			size := stbl.SampleSize.SizeOf(sampleIdx)
			aus = append(aus, accessUnit{Offset: cursor, Size: size})
			cursor += int64(size)
			sampleIdx++
		}
	}
	if sampleIdx != count {
		return nil, errs.New(errs.MalformedContainer, "mp4: stsc chunk layout does not cover every stsz sample", 0)
	}

	assignSyncFlags(aus, stbl.SyncSample)
	assignTiming(aus, stbl.TimeToSample, stbl.CompositionOffset, timescale)

	return aus, nil
}

// samplesInChunk returns the SamplesPerChunk in effect for the 1-based
// chunkNum: the stsc entry whose FirstChunk is the largest one
// not exceeding chunkNum.
func samplesInChunk(entries []mp4io.SampleToChunkEntry, chunkNum uint32) uint32 {
	samples := uint32(0)
	for i, e := range entries {
		if chunkNum < e.FirstChunk {
			break
		}
		if i+1 < len(entries) && chunkNum >= entries[i+1].FirstChunk {
			continue
		}
		samples = e.SamplesPerChunk
	}
	return samples
}

func assignSyncFlags(aus []accessUnit, stss *mp4io.SyncSample) {
	if stss == nil {
		for i := range aus {
			aus[i].Sync = true
		}
		return
	}
	for i := range aus {
		aus[i].Sync = stss.IsSync(uint32(i + 1)) //nolint:gosec
	}
}

func assignTiming(aus []accessUnit, stts *mp4io.TimeToSample, ctts *mp4io.CompositionOffset, timescale uint32) {
	var dts time.Duration
	i := 0
	for _, e := range stts.Entries {
		for c := uint32(0); c < e.Count && i < len(aus); c++ {
			aus[i].DTS = dts
			aus[i].PTS = dts
			dts += scaleToDuration(e.Duration, timescale)
			i++
		}
	}

	if ctts == nil {
		return
	}
	i = 0
	for _, e := range ctts.Entries {
		for c := uint32(0); c < e.Count && i < len(aus); c++ {
			aus[i].PTS = aus[i].DTS + scaleToDuration(e.Offset, timescale)
			i++
		}
	}
}

func scaleToDuration(units, timescale uint32) time.Duration {
	if timescale == 0 {
		return 0
	}
	return time.Duration(units) * time.Second / time.Duration(timescale)
}
