package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadBits(t *testing.T) {
	r := NewReader([]byte{0b10110001, 0b11110000})
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0b1011), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0b00011111), v)
}

func TestReaderReadBitsPastEnd(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.ReadBits(16)
	require.Error(t, err)
}

// bitstream "1 010 011 00100" packed MSB-first: ue(v) codes 0, 1, 2, 3.
var ueCodeStream = []byte{0b10100110, 0b01000000}

func TestReaderReadUE(t *testing.T) {
	r := NewReader(ueCodeStream)
	for _, want := range []uint64{0, 1, 2, 3} {
		v, err := r.ReadUE()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestReaderReadSE(t *testing.T) {
	// codeNum 0,1,2,3 -> se(v) 0,1,-1,2
	r := NewReader(ueCodeStream)
	for _, want := range []int64{0, 1, -1, 2} {
		v, err := r.ReadSE()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestReaderByteAlign(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xAA})
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	r.ByteAlign()
	assert.Equal(t, 1, r.BytePos())
}
