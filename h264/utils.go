package h264

// Common magic numbers used in the package
const (
	// Bit masks
	maskLengthSizeMinusOne = 0x03
	maskSPSCount           = 0x1f

	// Scaling values
	defaultScaleValue = 8
	maxScaleValue     = 256

	// Bit sizes
	bits8 = 8

	// Chroma format values
	chromaFormat3 = 3

	// Scaling list sizes
	scalingListSizeSmall = 16
	scalingListSizeLarge = 64
	scalingListThreshold = 6

	// Macroblock size
	mbSize = 16

	// Crop multiplier
	cropMultiplier = 2

	// Frame height calculation constant
	frameHeightBase = 2
)

// SPSInfo represents information extracted from Sequence Parameter Sets (SPS) in a video stream.
type SPSInfo struct {
	ID                uint // Identifier for the SPS.
	ProfileIDC        uint // Profile identifier for the SPS.
	LevelIDC          uint // Level identifier for the SPS.
	ConstraintSetFlag uint // Constraint set flag for the SPS.

	MbWidth  uint // Width of macroblocks in the SPS.
	MbHeight uint // Height of macroblocks in the SPS.

	CropLeft   uint // Left cropping value for the SPS.
	CropRight  uint // Right cropping value for the SPS.
	CropTop    uint // Top cropping value for the SPS.
	CropBottom uint // Bottom cropping value for the SPS.

	Width  uint // Width of the video frame.
	Height uint // Height of the video frame.
}
