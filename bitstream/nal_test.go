package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripEmulationPrevention(t *testing.T) {
	in := []byte{0x00, 0x00, 0x03, 0x01, 0x00, 0x00, 0x03, 0x02, 0x00, 0x00, 0x01}
	out := StripEmulationPrevention(in)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x02, 0x00, 0x00, 0x01}, out)
}
