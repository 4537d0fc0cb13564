package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const STCO = Tag(0x7374636f)

func (self ChunkOffset) Tag() Tag {
	return STCO
}

// ChunkOffset is the `stco` box: one 32-bit file offset per chunk. Tracks
// whose mdat sits beyond 4GiB use `co64` (Co64Offset) instead; both parse
// into an Entries []uint64 field, and SampleTable.Offsets returns
// whichever one is present, so stream.go never has to care which one a
// file used.
type ChunkOffset struct {
	Version uint8
	Flags   uint32
	Entries []uint64
	AtomPos
}

func (self ChunkOffset) Marshal(b []byte) (n int) {
	return writeBox(b, STCO, self.marshal)
}

func (self ChunkOffset) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		pio.PutU32BE(b[n:], uint32(entry))
		n += 4
	}
	return
}

func (self ChunkOffset) Len() (n int) {
	n += 8 + 1 + 3 + 4
	n += 4 * len(self.Entries)
	return
}

func (self *ChunkOffset) Unmarshal(b []byte, offset int) (n int, err error) {
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
		err = parseErr("ChunkOffsetEntry", n+offset, err)
		return
	}
	self.Entries = make([]uint64, count)
	for i := range self.Entries {
		self.Entries[i] = uint64(pio.U32BE(b[n:]))
		n += 4
	}
	return
}

func (self ChunkOffset) Children() (r []Atom) {
	return
}

const CO64 = Tag(0x636f3634)

func (self Co64Offset) Tag() Tag {
	return CO64
}

// Co64Offset is the `co64` box, the 64-bit-offset variant of ChunkOffset.
type Co64Offset struct {
	Version uint8
	Flags   uint32
	Entries []uint64
	AtomPos
}

func (self Co64Offset) Marshal(b []byte) (n int) {
	return writeBox(b, CO64, self.marshal)
}

func (self Co64Offset) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		pio.PutU64BE(b[n:], entry)
		n += 8
	}
	return
}

func (self Co64Offset) Len() (n int) {
	n += 8 + 1 + 3 + 4
	n += 8 * len(self.Entries)
	return
}

func (self *Co64Offset) Unmarshal(b []byte, offset int) (n int, err error) {
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
	if len(b) < n+8*int(count) {
		err = parseErr("Co64OffsetEntry", n+offset, err)
		return
	}
	self.Entries = make([]uint64, count)
	for i := range self.Entries {
		self.Entries[i] = pio.U64BE(b[n:])
		n += 8
	}
	return
}

func (self Co64Offset) Children() (r []Atom) {
	return
}
