package h264

import (
	"github.com/ugparu/mp4thumb/bitstream"
	"github.com/ugparu/mp4thumb/internal/errs"
)

// profileNeedsChromaInfo lists the ProfileIDC values whose SPS carries
// the chroma-format / scaling-matrix block before the rest of the
// fixed fields (Rec. ITU-T H.264 §7.3.2.1.1).
var profileNeedsChromaInfo = map[uint]bool{
	100: true, 110: true, 122: true, 244: true, 44: true,
	83: true, 86: true, 118: true, 128: true, 138: true, 139: true, 134: true, 135: true,
}

// ParseSPS parses a clean (emulation-prevention-stripped) SPS RBSP into
// SPSInfo. Fields the dispatcher never consults (VUI, HRD) are
// intentionally left unparsed once width/height are known.
func ParseSPS(rbsp []byte) (*SPSInfo, error) {
	if len(rbsp) < 1 {
		return nil, errs.New(errs.MalformedBitstream, "h264: empty SPS RBSP", 0)
	}

	r := bitstream.NewReader(rbsp[1:]) // skip the NAL header byte
	sps := &SPSInfo{}

	profile, err := readBits(r, bits8, "SPS profile_idc")
	if err != nil {
		return nil, err
	}
	sps.ProfileIDC = uint(profile)

	constraints, err := readBits(r, bits8, "SPS constraint flags")
	if err != nil {
		return nil, err
	}
	sps.ConstraintSetFlag = uint(constraints)

	level, err := readBits(r, bits8, "SPS level_idc")
	if err != nil {
		return nil, err
	}
	sps.LevelIDC = uint(level)

	id, err := readUE(r, "SPS seq_parameter_set_id")
	if err != nil {
		return nil, err
	}
	sps.ID = uint(id)

	chromaFormatIDC := uint(1) // inferred default when absent
	if profileNeedsChromaInfo[sps.ProfileIDC] {
		if chromaFormatIDC, err = parseChromaInfo(r); err != nil {
			return nil, err
		}
	}

	if _, err = readUE(r, "SPS log2_max_frame_num_minus4"); err != nil {
		return nil, err
	}
	if err = skipPicOrderCount(r); err != nil {
		return nil, err
	}
	if _, err = readUE(r, "SPS max_num_ref_frames"); err != nil {
		return nil, err
	}
	if _, err = readFlag(r, "SPS gaps_in_frame_num_value_allowed_flag"); err != nil {
		return nil, err
	}

	frameMBSOnly, err := parseDimensions(r, sps)
	if err != nil {
		return nil, err
	}

	if _, err = readFlag(r, "SPS direct_8x8_inference_flag"); err != nil {
		return nil, err
	}
	if err = parseCropping(r, sps); err != nil {
		return nil, err
	}

	sps.Width, sps.Height = computeDimensions(sps, chromaFormatIDC, frameMBSOnly)
	return sps, nil
}

func parseChromaInfo(r *bitstream.Reader) (uint, error) {
	chroma, err := readUE(r, "SPS chroma_format_idc")
	if err != nil {
		return 0, err
	}
	chromaFormatIDC := uint(chroma)

	if chromaFormatIDC == chromaFormat3 {
		if _, err = readFlag(r, "SPS separate_colour_plane_flag"); err != nil {
			return 0, err
		}
	}
	if _, err = readUE(r, "SPS bit_depth_luma_minus8"); err != nil {
		return 0, err
	}
	if _, err = readUE(r, "SPS bit_depth_chroma_minus8"); err != nil {
		return 0, err
	}
	if _, err = readFlag(r, "SPS qpprime_y_zero_transform_bypass_flag"); err != nil {
		return 0, err
	}
	scalingPresent, err := readFlag(r, "SPS seq_scaling_matrix_present_flag")
	if err != nil {
		return 0, err
	}
	if scalingPresent {
		if err = skipScalingMatrix(r, chromaFormatIDC); err != nil {
			return 0, err
		}
	}
	return chromaFormatIDC, nil
}

func skipPicOrderCount(r *bitstream.Reader) error {
	picOrderCountType, err := readUE(r, "SPS pic_order_cnt_type")
	if err != nil {
		return err
	}
	switch picOrderCountType {
	case 0:
		if _, err = readUE(r, "SPS log2_max_pic_order_cnt_lsb_minus4"); err != nil {
			return err
		}
	case 1:
		if _, err = readFlag(r, "SPS delta_pic_order_always_zero_flag"); err != nil {
			return err
		}
		if _, err = readSE(r, "SPS offset_for_non_ref_pic"); err != nil {
			return err
		}
		if _, err = readSE(r, "SPS offset_for_top_to_bottom_field"); err != nil {
			return err
		}
		numRefFrames, ueErr := readUE(r, "SPS num_ref_frames_in_pic_order_cnt_cycle")
		if ueErr != nil {
			return ueErr
		}
		for range numRefFrames {
			if _, err = readSE(r, "SPS offset_for_ref_frame"); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseDimensions(r *bitstream.Reader, sps *SPSInfo) (frameMBSOnly bool, err error) {
	mbWidth, err := readUE(r, "SPS pic_width_in_mbs_minus1")
	if err != nil {
		return false, err
	}
	sps.MbWidth = uint(mbWidth) + 1

	mbHeight, err := readUE(r, "SPS pic_height_in_map_units_minus1")
	if err != nil {
		return false, err
	}

	frameMBSOnly, err = readFlag(r, "SPS frame_mbs_only_flag")
	if err != nil {
		return false, err
	}

	heightMapUnits := uint(mbHeight) + 1
	if frameMBSOnly {
		sps.MbHeight = heightMapUnits
	} else {
		sps.MbHeight = heightMapUnits * frameHeightBase
		if _, err = readFlag(r, "SPS mb_adaptive_frame_field_flag"); err != nil {
			return false, err
		}
	}
	return frameMBSOnly, nil
}

func parseCropping(r *bitstream.Reader, sps *SPSInfo) error {
	cropping, err := readFlag(r, "SPS frame_cropping_flag")
	if err != nil {
		return err
	}
	if !cropping {
		return nil
	}

	left, err := readUE(r, "SPS frame_crop_left_offset")
	if err != nil {
		return err
	}
	right, err := readUE(r, "SPS frame_crop_right_offset")
	if err != nil {
		return err
	}
	top, err := readUE(r, "SPS frame_crop_top_offset")
	if err != nil {
		return err
	}
	bottom, err := readUE(r, "SPS frame_crop_bottom_offset")
	if err != nil {
		return err
	}
	sps.CropLeft, sps.CropRight, sps.CropTop, sps.CropBottom = uint(left), uint(right), uint(top), uint(bottom)
	return nil
}

func computeDimensions(sps *SPSInfo, chromaFormatIDC uint, frameMBSOnly bool) (width, height uint) {
	cropUnitX, cropUnitY := uint(cropMultiplier), uint(cropMultiplier)
	if chromaFormatIDC == chromaFormat3 {
		cropUnitX, cropUnitY = 1, 1
	}

	width = sps.MbWidth*mbSize - cropUnitX*(sps.CropLeft+sps.CropRight)

	frameHeightFactor := uint(1)
	if !frameMBSOnly {
		frameHeightFactor = frameHeightBase
	}
	height = sps.MbHeight*mbSize - frameHeightFactor*cropUnitY*(sps.CropTop+sps.CropBottom)
	return
}

// skipScalingMatrix consumes seq_scaling_list_present_flag[i] and, when
// present, the scaling_list() payload, without retaining the values —
// this module's picture sizing and cache validation never consult them.
func skipScalingMatrix(r *bitstream.Reader, chromaFormatIDC uint) error {
	count := scalingListThreshold + 2 //nolint:mnd
	if chromaFormatIDC == chromaFormat3 {
		count = scalingListThreshold + 6 //nolint:mnd
	}
	for i := range count {
		present, err := readFlag(r, "SPS seq_scaling_list_present_flag")
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		size := scalingListSizeSmall
		if i >= scalingListThreshold {
			size = scalingListSizeLarge
		}
		if err = skipScalingList(r, size); err != nil {
			return err
		}
	}
	return nil
}

func skipScalingList(r *bitstream.Reader, size int) error {
	lastScale, nextScale := defaultScaleValue, defaultScaleValue
	for range size {
		if nextScale != 0 {
			delta, err := readSE(r, "SPS scaling_list delta_scale")
			if err != nil {
				return err
			}
			nextScale = (lastScale + int(delta) + maxScaleValue) % maxScaleValue
		}
		if nextScale != 0 {
			lastScale = nextScale
		}
	}
	return nil
}

func readBits(r *bitstream.Reader, n int, ctx string) (uint32, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, errs.Wrap(errs.MalformedBitstream, "h264: "+ctx, int64(r.BytePos()), err)
	}
	return v, nil
}

func readFlag(r *bitstream.Reader, ctx string) (bool, error) {
	v, err := r.ReadFlag()
	if err != nil {
		return false, errs.Wrap(errs.MalformedBitstream, "h264: "+ctx, int64(r.BytePos()), err)
	}
	return v, nil
}

func readUE(r *bitstream.Reader, ctx string) (uint64, error) {
	v, err := r.ReadUE()
	if err != nil {
		return 0, errs.Wrap(errs.MalformedBitstream, "h264: "+ctx, int64(r.BytePos()), err)
	}
	return v, nil
}

func readSE(r *bitstream.Reader, ctx string) (int64, error) {
	v, err := r.ReadSE()
	if err != nil {
		return 0, errs.Wrap(errs.MalformedBitstream, "h264: "+ctx, int64(r.BytePos()), err)
	}
	return v, nil
}
