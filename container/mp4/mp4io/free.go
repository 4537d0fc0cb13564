// nolint: all
package mp4io

const FREE = Tag(0x66726565)
const freeSize = 8

type FreeType struct {
	AtomPos
}

func (*FreeType) Tag() Tag {
	return FREE
}

func (*FreeType) Marshal(b []byte) (n int) {
	return writeBox(b, FREE, func([]byte) int { return 0 })
}

func (*FreeType) Len() int {
	return freeSize
}

func (f *FreeType) Unmarshal(b []byte, offset int) (n int, err error) {
	n = len(b)
	f.AtomPos.setPos(offset, n)
	return n, nil
}

func (*FreeType) Children() []Atom {
	return nil
}
