package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const STTS = Tag(0x73747473)

func (self TimeToSample) Tag() Tag {
	return STTS
}

type TimeToSample struct {
	Version uint8
	Flags   uint32
	Entries []TimeToSampleEntry
	AtomPos
}

func (self TimeToSample) Marshal(b []byte) (n int) {
	return writeBox(b, STTS, self.marshal)
}
func (self TimeToSample) marshal(b []byte) (n int) {
	n = writeFullBoxPrefix(b, self.Version, self.Flags)
	pio.PutU32BE(b[n:], uint32(len(self.Entries)))
	n += 4
	for _, entry := range self.Entries {
		PutTimeToSampleEntry(b[n:], entry)
		n += LenTimeToSampleEntry
	}
	return
}
func (self TimeToSample) Len() (n int) {
	n += 8
	n += 1
	n += 3
	n += 4
	n += LenTimeToSampleEntry * len(self.Entries)
	return
}
func (self *TimeToSample) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	self.Version, self.Flags, n, err = readFullBoxPrefix(b, HeaderSize, offset)
	if err != nil {
		return
	}
	var _len_Entries uint32
	_len_Entries = pio.U32BE(b[n:])
	n += 4
	self.Entries = make([]TimeToSampleEntry, _len_Entries)
	if len(b) < n+LenTimeToSampleEntry*len(self.Entries) {
		err = parseErr("TimeToSampleEntry", n+offset, err)
		return
	}
	for i := range self.Entries {
		self.Entries[i] = GetTimeToSampleEntry(b[n:])
		n += LenTimeToSampleEntry
	}
	return
}
func (self TimeToSample) Children() (r []Atom) {
	return
}
