package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const CTTS = Tag(0x63747473)

func (self CompositionOffset) Tag() Tag {
	return CTTS
}

type CompositionOffset struct {
	Version uint8
	Flags   uint32
	Entries []CompositionOffsetEntry
	AtomPos
}

func (self CompositionOffset) Marshal(b []byte) (n int) {
	return writeBox(b, CTTS, self.marshal)
}
func (self CompositionOffset) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		PutCompositionOffsetEntry(b[n:], entry)
		n += LenCompositionOffsetEntry
	}
	return
}
func (self CompositionOffset) Len() (n int) {
	n += 8
	n += 1
	n += 3
	n += 4
	n += LenCompositionOffsetEntry * len(self.Entries)
	return
}
func (self *CompositionOffset) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	self.Version, self.Flags, n, err = readFullBoxPrefix(b, HeaderSize, offset)
	if err != nil {
		return
	}
	var _len_Entries uint32
	_len_Entries = pio.U32BE(b[n:])
	n += 4
	self.Entries = make([]CompositionOffsetEntry, _len_Entries)
	if len(b) < n+LenCompositionOffsetEntry*len(self.Entries) {
		err = parseErr("CompositionOffsetEntry", n+offset, err)
		return
	}
	for i := range self.Entries {
		self.Entries[i] = GetCompositionOffsetEntry(b[n:])
		n += LenCompositionOffsetEntry
	}
	return
}
func (self CompositionOffset) Children() (r []Atom) {
	return
}
