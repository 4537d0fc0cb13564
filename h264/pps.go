package h264

import "github.com/ugparu/mp4thumb/bitstream"

// PPS holds the picture-parameter-set fields the cache needs to
// cross-reference a slice back to its SPS.
type PPS struct {
	ID    uint
	SPSID uint
}

// ParsePPS reads just enough of a clean PPS RBSP — pic_parameter_set_id
// and seq_parameter_set_id — to key the parameter-set cache. The
// remaining PPS fields (entropy coding mode, slice group layout,
// deblocking defaults) never affect picture sizing or cache validation
// and are left unparsed.
func ParsePPS(rbsp []byte) (*PPS, error) {
	if len(rbsp) < 1 {
		return nil, ErrDecconfInvalid
	}

	r := bitstream.NewReader(rbsp[1:]) // skip the NAL header byte

	id, err := readUE(r, "PPS pic_parameter_set_id")
	if err != nil {
		return nil, err
	}
	spsID, err := readUE(r, "PPS seq_parameter_set_id")
	if err != nil {
		return nil, err
	}

	return &PPS{ID: uint(id), SPSID: uint(spsID)}, nil
}
