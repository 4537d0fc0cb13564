package mp4io

import "github.com/ugparu/mp4thumb/utils/bits/pio"

const STSD = Tag(0x73747364)

func (self SampleDesc) Tag() Tag {
	return STSD
}

// SampleDesc is the `stsd` box. Only the AVC1 sample entry is decoded into
// a typed field; every other sample entry (audio, other video codecs) is
// preserved as an Unknown so a non-AVC track never aborts the parse, it
// simply leaves AVC1Desc nil.
type SampleDesc struct {
	Version  uint8
	AVC1Desc *AVC1Desc
	Unknowns []Atom
	AtomPos
}

func (self SampleDesc) Marshal(b []byte) (n int) {
	return writeBox(b, STSD, self.marshal)
}
func (self SampleDesc) marshal(b []byte) (n int) {
	pio.PutU8(b[n:], self.Version)
	n++
	n += 3
	childrenNR := len(self.Unknowns)
	if self.AVC1Desc != nil {
		childrenNR++
	}
	pio.PutI32BE(b[n:], int32(childrenNR))
	n += 4
	if self.AVC1Desc != nil {
		n += self.AVC1Desc.Marshal(b[n:])
	}
	for _, atom := range self.Unknowns {
		n += atom.Marshal(b[n:])
	}
	return
}
func (self SampleDesc) Len() (n int) {
	n += 8 + 1 + 3 + 4
	if self.AVC1Desc != nil {
		n += self.AVC1Desc.Len()
	}
	for _, atom := range self.Unknowns {
		n += atom.Len()
	}
	return
}
func (self *SampleDesc) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	n += 8
	if len(b) < n+1 {
		err = parseErr("Version", n+offset, err)
		return
	}
	self.Version = pio.U8(b[n:])
	n += 1 + 3 + 4
	for n+8 < len(b) {
		tag := Tag(pio.U32BE(b[n+4:]))
		size := int(pio.U32BE(b[n:]))
		if len(b) < n+size {
			err = parseErr("TagSizeInvalid", n+offset, err)
			return
		}
		switch tag {
		case AVC1:
			{
				atom := &AVC1Desc{}
				if _, err = atom.Unmarshal(b[n:n+size], offset+n); err != nil {
					err = parseErr("avc1", n+offset, err)
					return
				}
				self.AVC1Desc = atom
			}
		default:
			{
				atom := &Dummy{Tag_: tag, Data: b[n : n+size]}
				if _, err = atom.Unmarshal(b[n:n+size], offset+n); err != nil {
					err = parseErr("", n+offset, err)
					return
				}
				self.Unknowns = append(self.Unknowns, atom)
			}
		}
		n += size
	}
	return
}
func (self SampleDesc) Children() (r []Atom) {
	if self.AVC1Desc != nil {
		r = append(r, self.AVC1Desc)
	}
	r = append(r, self.Unknowns...)
	return
}
