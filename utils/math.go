package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// RelativeError returns |a-b|/max(|b|, scale), the scale guards comparisons against zero
func RelativeError(a, b, scale float64) (re float64) {
	re = math.Abs(a-b) / math.Max(math.Abs(b), scale)
	return
}
