package h264

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuantTablesMembership(t *testing.T) {
	tables := NewQuantTables()

	for q := range QuantSteps {
		for i := range 4 {
			for j := range 4 {
				assert.Contains(t, v4x4[q][:], tables.Norm4x4[q][i][j])
			}
		}
		for i := range 8 {
			for j := range 8 {
				assert.Contains(t, v8x8[q][:], tables.Norm8x8[q][i][j])
			}
		}
	}
}

func TestNorm4x4Placement(t *testing.T) {
	tables := NewQuantTables()
	const q = 0
	assert.Equal(t, v4x4[q][0], tables.Norm4x4[q][0][0]) // even,even
	assert.Equal(t, v4x4[q][1], tables.Norm4x4[q][1][1]) // odd,odd
	assert.Equal(t, v4x4[q][2], tables.Norm4x4[q][0][1]) // mixed
}

func TestNorm8x8Placement(t *testing.T) {
	tables := NewQuantTables()
	const q = 0
	assert.Equal(t, v8x8[q][0], tables.Norm8x8[q][0][0])
	assert.Equal(t, v8x8[q][1], tables.Norm8x8[q][1][1])
	assert.Equal(t, v8x8[q][2], tables.Norm8x8[q][2][2])
	assert.Equal(t, v8x8[q][3], tables.Norm8x8[q][0][1])
	assert.Equal(t, v8x8[q][4], tables.Norm8x8[q][0][2])
	assert.Equal(t, v8x8[q][5], tables.Norm8x8[q][1][2])
}
