package h264

import "testing"

// bitWriter is a test-only mirror of bitstream.Reader: it packs bits
// MSB-first into a byte slice, used to build minimal-but-valid SPS/PPS/
// slice RBSPs for dispatcher and parser tests.
type bitWriter struct {
	bits []bool
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, (v>>uint(i))&1 == 1)
	}
}

func (w *bitWriter) writeFlag(b bool) {
	w.bits = append(w.bits, b)
}

func (w *bitWriter) writeUE(v uint64) {
	n := v + 1
	length := 0
	for t := n; t > 0; t >>= 1 {
		length++
	}
	for range length - 1 {
		w.bits = append(w.bits, false)
	}
	for i := length - 1; i >= 0; i-- {
		w.bits = append(w.bits, (n>>uint(i))&1 == 1)
	}
}

func (w *bitWriter) bytes() []byte {
	out := make([]byte, (len(w.bits)+7)/8) //nolint:mnd
	for i, b := range w.bits {
		if b {
			out[i/8] |= 1 << uint(7-i%8) //nolint:mnd
		}
	}
	return out
}

// spsRBSP builds a baseline-profile SPS (profile_idc=66, no chroma
// info block) describing an 11x9 macroblock (176x144) picture with no
// frame cropping, keyed by id.
func spsRBSP(t *testing.T, id uint) []byte {
	t.Helper()
	w := &bitWriter{}
	w.writeBits(66, bits8) // profile_idc: baseline
	w.writeBits(0, bits8)  // constraint flags + reserved
	w.writeBits(30, bits8) // level_idc
	w.writeUE(uint64(id))  // seq_parameter_set_id
	w.writeUE(0)           // log2_max_frame_num_minus4
	w.writeUE(0)           // pic_order_cnt_type
	w.writeUE(0)           // log2_max_pic_order_cnt_lsb_minus4
	w.writeUE(0)           // max_num_ref_frames
	w.writeFlag(false)     // gaps_in_frame_num_value_allowed_flag
	w.writeUE(10)          // pic_width_in_mbs_minus1 -> 11 MBs -> 176px
	w.writeUE(8)           // pic_height_in_map_units_minus1 -> 9 MBs -> 144px
	w.writeFlag(true)      // frame_mbs_only_flag
	w.writeFlag(false)     // direct_8x8_inference_flag
	w.writeFlag(false)     // frame_cropping_flag
	return append([]byte{0x67}, w.bytes()...)
}

// ppsRBSP builds a PPS naming spsID, keyed by id.
func ppsRBSP(t *testing.T, id, spsID uint) []byte {
	t.Helper()
	w := &bitWriter{}
	w.writeUE(uint64(id))
	w.writeUE(uint64(spsID))
	return append([]byte{0x68}, w.bytes()...)
}

// idrSliceRBSP builds a minimal I-slice header referencing ppsID.
func idrSliceRBSP(t *testing.T, ppsID uint) []byte {
	t.Helper()
	w := &bitWriter{}
	w.writeUE(0) // first_mb_in_slice
	w.writeUE(7) // slice_type: I
	w.writeUE(uint64(ppsID))
	return append([]byte{0x65}, w.bytes()...)
}
