package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
	assert.Equal(t, 0, len(ConstArray(0, 1)))
	assert.InDelta(t, 0.1, RelativeError(1.1, 1.0, 1.e-8), 1.e-12)
	assert.InDelta(t, 0.1, RelativeError(0.9, -1.0, 1.e-8), 1.e-12)
	assert.Equal(t, 0.5, RelativeError(0.5, 0, 1))
	assert.Equal(t, 0., RelativeError(0, 0, 1.e-8))
	assert.Equal(t, 0, CountNonFinite(1, 2, 3))
	assert.Equal(t, 2, CountNonFinite(1, math.NaN(), math.Inf(-1)))
	assert.NotEmpty(t, GetMemUsage())
}
