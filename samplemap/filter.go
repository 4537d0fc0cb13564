package samplemap

import "math"

// ExtractionMode selects how the IDR filter picks survivors once the
// size-threshold prune and border cut have run.
type ExtractionMode uint8

const (
	Unfiltered ExtractionMode = iota
	Ordered
	Distributed
)

// borderCutFraction is the fraction of leading/trailing IDR samples
// discarded before threshold pruning, per the source's border-cut rule.
const borderCutFraction = 0.03

// thresholdDivisor turns the average IDR payload size into a prune
// threshold: samples at or below average/1.66 are dropped as probable
// filler frames.
const thresholdDivisor = 1.66

// Filter trims m down to at most pictureNumber IDR samples selected per
// mode, retaining every non-IDR auxiliary sample (SPS/PPS) verbatim. It
// returns the filtered map, the number of IDR samples it contains, and
// never mutates m — the caller is responsible for replacing its handle
// with the returned map, which is the explicit ownership-transfer this
// filter uses instead of the pointer-to-pointer swap the routine was
// ported from.
func Filter(m *SampleMap, pictureNumber int, mode ExtractionMode) (*SampleMap, int) {
	if m.SampleCountIDR == 0 {
		return emptyIDRMap(m), 0
	}

	if pictureNumber > m.SampleCountIDR {
		pictureNumber = m.SampleCountIDR
	}

	if mode == Unfiltered {
		return takeFirstIDRs(m, pictureNumber), pictureNumber
	}

	survivors := pruneSurvivors(m)

	n := len(survivors)
	if pictureNumber > n {
		pictureNumber = n
	}
	if pictureNumber == 0 {
		return emptyIDRMap(m), 0
	}

	var selected []Sample
	switch mode {
	case Distributed:
		selected = distributedSelect(survivors, pictureNumber)
	case Ordered, Unfiltered:
		selected = survivors[:pictureNumber]
	}

	return buildFiltered(m, selected), len(selected)
}

// pruneSurvivors applies the border cut and size threshold to the IDR
// samples of m, in decode order.
func pruneSurvivors(m *SampleMap) []Sample {
	idrs := make([]Sample, 0, m.SampleCountIDR)
	for _, s := range m.Samples {
		if s.IsIDR() {
			idrs = append(idrs, s)
		}
	}

	var total uint64
	for _, s := range idrs {
		total += uint64(s.Size)
	}
	average := float64(total) / float64(len(idrs))
	threshold := average / thresholdDivisor

	cut := int(math.Ceil(borderCutFraction * float64(len(idrs))))
	lo, hi := cut, len(idrs)-cut
	if lo > hi {
		lo, hi = hi, lo
	}

	survivors := make([]Sample, 0, len(idrs))
	for i, s := range idrs {
		if i < lo || i >= hi {
			continue
		}
		if float64(s.Size) <= threshold {
			continue
		}
		survivors = append(survivors, s)
	}
	return survivors
}

// distributedSelect spreads pictureNumber picks evenly across survivors.
// picture_number==1 is the source's documented zero-division hazard
// (frame_jump = N/(picture_number-1)); it falls back to the median
// survivor instead of dividing by zero.
func distributedSelect(survivors []Sample, pictureNumber int) []Sample {
	n := len(survivors)
	if pictureNumber == 1 {
		return []Sample{survivors[n/2]}
	}

	jump := n / (pictureNumber - 1)
	if jump == 0 {
		jump = 1
	}

	selected := make([]Sample, 0, pictureNumber)
	for i := 0; i < pictureNumber; i++ {
		idx := i * jump
		if idx >= n {
			idx = n - 1
		}
		selected = append(selected, survivors[idx])
	}
	return selected
}

func takeFirstIDRs(m *SampleMap, n int) *SampleMap {
	idrs := make([]Sample, 0, n)
	for _, s := range m.Samples {
		if s.IsIDR() {
			idrs = append(idrs, s)
			if len(idrs) == n {
				break
			}
		}
	}
	return buildFiltered(m, idrs)
}

func emptyIDRMap(m *SampleMap) *SampleMap {
	return buildFiltered(m, nil)
}

// buildFiltered assembles the output map: every auxiliary sample
// (SPS/PPS/SEI) from m verbatim, followed by the selected IDR samples
// in decode order (survivors are already decode-ordered, so a simple
// append preserves order here).
func buildFiltered(m *SampleMap, idrs []Sample) *SampleMap {
	out := &SampleMap{
		StreamType:       m.StreamType,
		StreamCodec:      m.StreamCodec,
		TimeScale:        m.TimeScale,
		Width:            m.Width,
		Height:           m.Height,
		AVCDecoderConfig: m.AVCDecoderConfig,
	}
	for _, s := range m.Samples {
		if s.Type.IsAuxiliary() {
			out.Append(s)
		}
	}
	for _, s := range idrs {
		out.Append(s)
	}
	return out
}
