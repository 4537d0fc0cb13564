package bitstream

// NAL unit type values relevant to IDR-only thumbnail extraction.
const (
	NalTypeNonIDRSlice = 1
	NalTypeIDRSlice    = 5
	NalTypeSEI         = 6
	NalTypeSPS         = 7
	NalTypePPS         = 8
)

// MinNaluSize is the width in bytes of the big-endian length prefix in
// front of every AVCC-framed NAL unit. container/mp4 uses this constant
// as the prefix width when it walks an access unit's AVCC length
// prefixes itself, since it needs each NAL's absolute file offset rather
// than just its content; the avcC's own length-size field is not
// consulted, so only 4-byte prefixes are handled.
const MinNaluSize = 4

// StripEmulationPrevention removes the 0x03 emulation-prevention byte
// from every "00 00 03" sequence, recovering the original RBSP from the
// NAL unit's encapsulated byte stream.
func StripEmulationPrevention(b []byte) []byte {
	out := make([]byte, 0, len(b))
	zeros := 0
	for _, c := range b {
		if zeros >= 2 && c == 3 { //nolint:mnd
			zeros = 0
			continue
		}
		if c == 0 {
			zeros++
		} else {
			zeros = 0
		}
		out = append(out, c)
	}
	return out
}
