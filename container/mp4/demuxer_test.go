package mp4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugparu/mp4thumb/container/mp4/mp4io"
	"github.com/ugparu/mp4thumb/samplemap"
)

func lenPrefixed(nal []byte) []byte {
	out := make([]byte, 4+len(nal)) //nolint:mnd
	out[0] = byte(len(nal) >> 24) //nolint:mnd
	out[1] = byte(len(nal) >> 16) //nolint:mnd
	out[2] = byte(len(nal) >> 8)  //nolint:mnd
	out[3] = byte(len(nal))
	copy(out[4:], nal)
	return out
}

func TestAvccNALRegions(t *testing.T) {
	sps := []byte{0x67, 0x01, 0x02}
	pps := []byte{0x68, 0x03}

	var buf []byte
	buf = append(buf, lenPrefixed(sps)...)
	buf = append(buf, lenPrefixed(pps)...)

	regions, err := avccNALRegions(buf)
	require.NoError(t, err)
	require.Len(t, regions, 2)

	assert.Equal(t, 4, regions[0].offset)
	assert.Equal(t, 3, regions[0].size)
	assert.Equal(t, 11, regions[1].offset)
	assert.Equal(t, 2, regions[1].size)
}

func TestAvccNALRegionsTruncated(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x10, 0x67, 0x01}
	_, err := avccNALRegions(buf)
	require.Error(t, err)
}

func TestAvccNALRegionsEmpty(t *testing.T) {
	_, err := avccNALRegions(nil)
	require.Error(t, err)
}

func TestClassifyNAL(t *testing.T) {
	cases := []struct {
		header byte
		want   samplemap.Type
	}{
		{0x67, samplemap.TypeSPS},
		{0x68, samplemap.TypePPS},
		{0x06, samplemap.TypeSEI},
		{0x65, samplemap.TypeIDR},
		{0x61, samplemap.TypeNonIDR},
		{0x0c, samplemap.TypeOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classifyNAL(c.header))
	}
}

func TestAvcParamSetSamplesOffsets(t *testing.T) {
	sps := []byte{0x67, 0xaa, 0xbb}
	pps := []byte{0x68, 0xcc}

	var data []byte
	data = append(data, 1, 0x42, 0x00, 0x1f, 0xff, 0xe1) // header + SPS count=1
	data = append(data, 0x00, byte(len(sps)))
	data = append(data, sps...)
	data = append(data, 0x01) // PPS count=1
	data = append(data, 0x00, byte(len(pps)))
	data = append(data, pps...)

	conf := &mp4io.AVC1Conf{}
	_, err := conf.Unmarshal(append(make([]byte, 8), data...), 100)
	require.NoError(t, err)

	samples, err := avcParamSetSamples(conf)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	spsDataOffset := int64(100 + mp4io.HeaderSize)
	assert.Equal(t, samplemap.TypeSPS, samples[0].Type)
	assert.Equal(t, spsDataOffset+avcParamSetHeaderLen+2, samples[0].Offset)
	assert.Equal(t, uint32(len(sps)), samples[0].Size)

	assert.Equal(t, samplemap.TypePPS, samples[1].Type)
	assert.Equal(t, uint32(len(pps)), samples[1].Size)
}

func TestFindMovie(t *testing.T) {
	mv := &mp4io.Movie{}
	atoms := []mp4io.Atom{&mp4io.Dummy{}, mv}
	assert.Same(t, mv, findMovie(atoms))
	assert.Nil(t, findMovie([]mp4io.Atom{&mp4io.Dummy{}}))
}

func TestFindAVCTrackSkipsNonVideo(t *testing.T) {
	audio := &mp4io.Track{
		Media: &mp4io.Media{
			Header:  &mp4io.MediaHeader{},
			Handler: &mp4io.HandlerRefer{HandlerType: [4]byte{'s', 'o', 'u', 'n'}},
		},
	}
	desc := &mp4io.AVC1Desc{Width: 640, Height: 480, Conf: &mp4io.AVC1Conf{}}
	video := &mp4io.Track{
		Media: &mp4io.Media{
			Header:  &mp4io.MediaHeader{},
			Handler: &mp4io.HandlerRefer{HandlerType: [4]byte{'v', 'i', 'd', 'e'}},
			Info: &mp4io.MediaInfo{
				Sample: &mp4io.SampleTable{
					SampleDesc: &mp4io.SampleDesc{AVC1Desc: desc},
				},
			},
		},
	}
	movie := &mp4io.Movie{Tracks: []*mp4io.Track{audio, video}}

	track, got := findAVCTrack(movie)
	require.NotNil(t, track)
	assert.Same(t, video, track)
	assert.Same(t, desc, got)
}

func TestFindAVCTrackNoneFound(t *testing.T) {
	movie := &mp4io.Movie{Tracks: []*mp4io.Track{{}}}
	track, desc := findAVCTrack(movie)
	assert.Nil(t, track)
	assert.Nil(t, desc)
}
