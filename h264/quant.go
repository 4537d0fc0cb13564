package h264

// QuantSteps is the number of quantization steps the normAdjust tables
// are indexed by (Rec. ITU-T H.264 §8.5.9).
const QuantSteps = 6

// v4x4 and v8x8 are the fixed seed matrices the normAdjust tables are
// expanded from.
var v4x4 = [QuantSteps][3]int{
	{10, 16, 13},
	{11, 18, 14},
	{13, 20, 16},
	{14, 23, 18},
	{16, 25, 20},
	{18, 29, 23},
}

var v8x8 = [QuantSteps][6]int{
	{20, 18, 32, 19, 25, 24},
	{22, 19, 35, 21, 28, 26},
	{26, 23, 42, 24, 33, 31},
	{28, 25, 45, 26, 35, 33},
	{32, 28, 51, 30, 40, 38},
	{36, 32, 58, 34, 46, 43},
}

// QuantTables holds the expanded inverse-quantization correction
// matrices for every step q. They depend only on the fixed seed
// matrices above, so one instance is computed per DecodingContext and
// shared across every IDR it decodes.
type QuantTables struct {
	Norm4x4 [QuantSteps][4][4]int
	Norm8x8 [QuantSteps][8][8]int
}

// NewQuantTables expands v4x4/v8x8 into the full per-position matrices
// per the §4.G placement rules.
func NewQuantTables() *QuantTables {
	t := &QuantTables{}
	for q := range QuantSteps {
		for i := range 4 {
			for j := range 4 {
				t.Norm4x4[q][i][j] = v4x4[q][norm4x4Index(i, j)]
			}
		}
		for i := range 8 {
			for j := range 8 {
				t.Norm8x8[q][i][j] = v8x8[q][norm8x8Index(i, j)]
			}
		}
	}
	return t
}

func norm4x4Index(i, j int) int {
	switch {
	case i%2 == 0 && j%2 == 0:
		return 0
	case i%2 == 1 && j%2 == 1:
		return 1
	default:
		return 2
	}
}

func norm8x8Index(i, j int) int {
	switch {
	case i%4 == 0 && j%4 == 0:
		return 0
	case i%2 == 1 && j%2 == 1:
		return 1
	case i%4 == 2 && j%4 == 2:
		return 2
	case (i%4 == 0 && j%2 == 1) || (i%2 == 1 && j%4 == 0):
		return 3
	case (i%4 == 0 && j%4 == 2) || (i%4 == 2 && j%4 == 0):
		return 4
	default:
		return 5
	}
}
