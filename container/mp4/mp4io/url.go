package mp4io

const URL = Tag(0x75726c20)

func (self DataReferUrl) Tag() Tag {
	return URL
}

type DataReferUrl struct {
	Version uint8
	Flags   uint32
	AtomPos
}

func (self DataReferUrl) Marshal(b []byte) (n int) {
	return writeBox(b, URL, self.marshal)
}
func (self DataReferUrl) marshal(b []byte) (n int) {
	return writeFullBoxPrefix(b, self.Version, self.Flags)
}
func (self DataReferUrl) Len() (n int) {
	n += 8
	n += fullBoxPrefixLen
	return
}
func (self *DataReferUrl) Unmarshal(b []byte, offset int) (n int, err error) {
	(&self.AtomPos).setPos(offset, len(b))
	self.Version, self.Flags, n, err = readFullBoxPrefix(b, HeaderSize, offset)
	return
}
func (self DataReferUrl) Children() (r []Atom) {
	return
}
