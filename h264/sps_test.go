package h264

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSPSDimensions(t *testing.T) {
	sps, err := ParseSPS(spsRBSP(t, 3))
	require.NoError(t, err)
	assert.Equal(t, uint(3), sps.ID)
	assert.Equal(t, uint(66), sps.ProfileIDC)
	assert.Equal(t, uint(176), sps.Width)
	assert.Equal(t, uint(144), sps.Height)
}

func TestParseSPSEmpty(t *testing.T) {
	_, err := ParseSPS(nil)
	assert.Error(t, err)
}

func TestParsePPS(t *testing.T) {
	pps, err := ParsePPS(ppsRBSP(t, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, uint(2), pps.ID)
	assert.Equal(t, uint(3), pps.SPSID)
}
