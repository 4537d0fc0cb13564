package mp4

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugparu/mp4thumb/container/mp4/mp4io"
)

func sampleTableFixture() *mp4io.SampleTable {
	return &mp4io.SampleTable{
		SampleToChunk: &mp4io.SampleToChunk{
			Entries: []mp4io.SampleToChunkEntry{
				{FirstChunk: 1, SamplesPerChunk: 2, SampleDescId: 1},
				{FirstChunk: 2, SamplesPerChunk: 3, SampleDescId: 1},
			},
		},
		ChunkOffset: &mp4io.ChunkOffset{
			Entries: []uint64{1000, 2000},
		},
		SampleSize: &mp4io.SampleSize{
			Entries: []uint32{10, 20, 30, 40, 50},
		},
		SyncSample: &mp4io.SyncSample{
			Entries: []uint32{1, 4},
		},
		TimeToSample: &mp4io.TimeToSample{
			Entries: []mp4io.TimeToSampleEntry{
				{Count: 5, Duration: 1000},
			},
		},
	}
}

func TestBuildAccessUnitsOffsetsAndSizes(t *testing.T) {
	aus, err := buildAccessUnits(sampleTableFixture(), 1000)
	require.NoError(t, err)
	require.Len(t, aus, 5)

	assert.Equal(t, int64(1000), aus[0].Offset)
	assert.Equal(t, uint32(10), aus[0].Size)
	assert.Equal(t, int64(1010), aus[1].Offset)
	assert.Equal(t, uint32(20), aus[1].Size)

	assert.Equal(t, int64(2000), aus[2].Offset)
	assert.Equal(t, uint32(30), aus[2].Size)
	assert.Equal(t, int64(2030), aus[3].Offset)
	assert.Equal(t, uint32(40), aus[3].Size)
	assert.Equal(t, int64(2070), aus[4].Offset)
	assert.Equal(t, uint32(50), aus[4].Size)
}

func TestBuildAccessUnitsSyncAndTiming(t *testing.T) {
	aus, err := buildAccessUnits(sampleTableFixture(), 1000)
	require.NoError(t, err)

	assert.True(t, aus[0].Sync)
	assert.False(t, aus[1].Sync)
	assert.False(t, aus[2].Sync)
	assert.True(t, aus[3].Sync)
	assert.False(t, aus[4].Sync)

	for i, au := range aus {
		assert.Equal(t, time.Duration(i)*time.Second, au.DTS)
		assert.Equal(t, au.DTS, au.PTS)
	}
}

func TestBuildAccessUnitsMissingSTSS(t *testing.T) {
	stbl := sampleTableFixture()
	stbl.SyncSample = nil
	aus, err := buildAccessUnits(stbl, 1000)
	require.NoError(t, err)
	for _, au := range aus {
		assert.True(t, au.Sync)
	}
}

func TestBuildAccessUnitsCompositionOffset(t *testing.T) {
	stbl := sampleTableFixture()
	stbl.CompositionOffset = &mp4io.CompositionOffset{
		Entries: []mp4io.CompositionOffsetEntry{
			{Count: 5, Offset: 2000},
		},
	}
	aus, err := buildAccessUnits(stbl, 1000)
	require.NoError(t, err)
	for i, au := range aus {
		assert.Equal(t, time.Duration(i)*time.Second, au.DTS)
		assert.Equal(t, au.DTS+2*time.Second, au.PTS)
	}
}

func TestBuildAccessUnitsUniformSampleSize(t *testing.T) {
	stbl := sampleTableFixture()
	stbl.SampleSize = &mp4io.SampleSize{SampleSize: 15, SampleCount: 5}
	aus, err := buildAccessUnits(stbl, 1000)
	require.NoError(t, err)
	require.Len(t, aus, 5)
	for _, au := range aus {
		assert.Equal(t, uint32(15), au.Size)
	}
}

func TestBuildAccessUnitsMissingMandatoryBox(t *testing.T) {
	stbl := sampleTableFixture()
	stbl.TimeToSample = nil
	_, err := buildAccessUnits(stbl, 1000)
	require.Error(t, err)
}

func TestBuildAccessUnitsNoChunkOffsets(t *testing.T) {
	stbl := sampleTableFixture()
	stbl.ChunkOffset = nil
	_, err := buildAccessUnits(stbl, 1000)
	require.Error(t, err)
}

func TestSamplesInChunk(t *testing.T) {
	entries := []mp4io.SampleToChunkEntry{
		{FirstChunk: 1, SamplesPerChunk: 2},
		{FirstChunk: 3, SamplesPerChunk: 5},
	}
	assert.Equal(t, uint32(2), samplesInChunk(entries, 1))
	assert.Equal(t, uint32(2), samplesInChunk(entries, 2))
	assert.Equal(t, uint32(5), samplesInChunk(entries, 3))
	assert.Equal(t, uint32(5), samplesInChunk(entries, 100))
}

func TestScaleToDuration(t *testing.T) {
	assert.Equal(t, time.Second, scaleToDuration(1000, 1000))
	assert.Equal(t, time.Duration(0), scaleToDuration(1000, 0))
}
