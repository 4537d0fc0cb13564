package h264

import "github.com/ugparu/mp4thumb/internal/errs"

// ErrDecconfInvalid is returned when an AVCDecoderConfRecord is too
// short or internally inconsistent to parse.
var ErrDecconfInvalid = errs.New(errs.MalformedContainer, "h264: invalid AVCDecoderConfRecord", 0)

// ErrParamSetIDRange is returned when a parsed SPS or PPS id falls
// outside [0, MaxSPS) / [0, MaxPPS).
var ErrParamSetIDRange = errs.New(errs.MalformedBitstream, "h264: parameter set id out of range", 0)

// ErrPPSMissing and ErrSPSMissing are the two referential-integrity
// failures the cache validation in §4.F can raise: a slice names a PPS
// that was never parsed, or a PPS names an SPS that was never parsed.
var (
	ErrPPSMissing = errs.New(errs.ReferentialIntegrity, "h264: referenced PPS not cached", 0)
	ErrSPSMissing = errs.New(errs.ReferentialIntegrity, "h264: referenced SPS not cached", 0)
)
