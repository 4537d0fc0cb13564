package h264

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutAndGetSPS(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.PutSPS(&SPSInfo{ID: 4}))

	sps, ok := c.SPS(4)
	require.True(t, ok)
	assert.Equal(t, uint(4), sps.ID)

	_, ok = c.SPS(5)
	assert.False(t, ok)
}

func TestCachePutSPSOutOfRange(t *testing.T) {
	c := NewCache()
	err := c.PutSPS(&SPSInfo{ID: MaxSPS})
	assert.ErrorIs(t, err, ErrParamSetIDRange)
}

func TestCacheValidateMissingPPS(t *testing.T) {
	c := NewCache()
	_, _, err := c.Validate(0)
	assert.ErrorIs(t, err, ErrPPSMissing)
}

func TestCacheValidateMissingSPS(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.PutPPS(&PPS{ID: 0, SPSID: 1}))

	_, _, err := c.Validate(0)
	assert.ErrorIs(t, err, ErrSPSMissing)
}

func TestCacheValidateSuccess(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.PutSPS(&SPSInfo{ID: 1, Width: 640, Height: 480}))
	require.NoError(t, c.PutPPS(&PPS{ID: 0, SPSID: 1}))

	pps, sps, err := c.Validate(0)
	require.NoError(t, err)
	assert.Equal(t, uint(1), pps.SPSID)
	assert.Equal(t, uint(640), sps.Width)
}
