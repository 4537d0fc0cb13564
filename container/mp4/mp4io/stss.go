package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const STSS = Tag(0x73747373)

func (self SyncSample) Tag() Tag {
	return STSS
}

// SyncSample is the `stss` box: the 1-based sample numbers that are random
// access points (IDR pictures, for an AVC track). Its absence means every
// sample in the track is a sync point.
type SyncSample struct {
	Version uint8
	Flags   uint32
	Entries []uint32
	AtomPos
}

func (self SyncSample) Marshal(b []byte) (n int) {
	return writeBox(b, STSS, self.marshal)
}

func (self SyncSample) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		pio.PutU32BE(b[n:], entry)
		n += 4
	}
	return
}

func (self SyncSample) Len() (n int) {
	n += 8 + 1 + 3 + 4
	n += 4 * len(self.Entries)
	return
}

func (self *SyncSample) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	self.Version, self.Flags, n, err = readFullBoxPrefix(b, HeaderSize, offset)
	if err != nil {
		return
	}
	if len(b) < n+4 {
		err = parseErr("Version", n+offset, err)
		return
	}
	count := pio.U32BE(b[n:])
	n += 4
	if len(b) < n+4*int(count) {
		err = parseErr("SyncSampleEntry", n+offset, err)
		return
	}
	self.Entries = make([]uint32, count)
	for i := range self.Entries {
		self.Entries[i] = pio.U32BE(b[n:])
		n += 4
	}
	return
}

// IsSync reports whether the 1-based sample number num is a random access
// point.
func (self SyncSample) IsSync(num uint32) bool {
	for _, e := range self.Entries {
		if e == num {
			return true
		}
	}
	return false
}

func (self SyncSample) Children() (r []Atom) {
	return
}
