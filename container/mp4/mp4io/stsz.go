package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const STSZ = Tag(0x7374737a)

func (self SampleSize) Tag() Tag {
	return STSZ
}

type SampleSize struct {
	Version     uint8
	Flags       uint32
	SampleSize  uint32
	SampleCount uint32
	Entries     []uint32
	AtomPos
}

// Count returns the track's total sample count regardless of whether
// stsz stores a uniform SampleSize (no per-sample Entries) or a variable
// size table (one Entries element per sample).
func (self SampleSize) Count() int {
	if self.SampleSize != 0 {
		return int(self.SampleCount)
	}
	return len(self.Entries)
}

// SizeOf returns the size of the 0-based sample at index i.
func (self SampleSize) SizeOf(i int) uint32 {
	if self.SampleSize != 0 {
		return self.SampleSize
	}
	return self.Entries[i]
}

func (self SampleSize) Marshal(b []byte) (n int) {
	return writeBox(b, STSZ, self.marshal)
}
func (self SampleSize) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], self.SampleSize)
	n += 4
	if self.SampleSize != 0 {
		pio.PutU32BE(b[n:], self.SampleCount)
		n += 4
		return
	}
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		pio.PutU32BE(b[n:], entry)
		n += 4
	}
	return
}
func (self SampleSize) Len() (n int) {
	n += 8
	n += 1
	n += 3
	n += 4
	n += 4
	if self.SampleSize != 0 {
		return
	}
	n += 4 * len(self.Entries)
	return
}
func (self *SampleSize) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	self.Version, self.Flags, n, err = readFullBoxPrefix(b, HeaderSize, offset)
	if err != nil {
		return
	}
	if len(b) < n+4 {
		err = parseErr("SampleSize", n+offset, err)
		return
	}
	self.SampleSize = pio.U32BE(b[n:])
	n += 4
	if len(b) < n+4 {
		err = parseErr("SampleCount", n+offset, err)
		return
	}
	self.SampleCount = pio.U32BE(b[n:])
	n += 4
	if self.SampleSize != 0 {
		return
	}
	self.Entries = make([]uint32, self.SampleCount)
	if len(b) < n+4*len(self.Entries) {
		err = parseErr("uint32", n+offset, err)
		return
	}
	for i := range self.Entries {
		self.Entries[i] = pio.U32BE(b[n:])
		n += 4
	}
	return
}
func (self SampleSize) Children() (r []Atom) {
	return
}
