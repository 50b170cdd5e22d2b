package transport_model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBatchEvaluator(t *testing.T) {
	factory := func() (*FluidModel, error) {
		return NewFluidModel(NewSutherland(1.716e-5, 273.15, 110.4), NewConstantPrandtl(0.72)), nil
	}
	var (
		K   = 1001
		T   = floats.Span(make([]float64, K), 200, 1200)
		Rho = floats.Span(make([]float64, K), 0.2, 2.)
		Cp  = floats.Span(make([]float64, K), 1000, 1200)
	)
	serial := NewFluidModel(NewSutherland(1.716e-5, 273.15, 110.4), NewConstantPrandtl(0.72))
	for _, np := range []int{1, 3, 8, 2000} {
		be, err := NewBatchEvaluator(np, factory)
		require.NoError(t, err)
		assert.Equal(t, np, len(be.Models))
		mu, kt, err := be.Evaluate(T, Rho, Cp)
		require.NoError(t, err)
		require.Equal(t, K, len(mu))
		require.Equal(t, K, len(kt))
		for k := 0; k < K; k++ {
			serial.SetTDState(T[k], Rho[k], Cp[k])
			assert.Equal(t, serial.Mu, mu[k])
			assert.Equal(t, serial.Kt, kt[k])
		}
		// Each partition has its own model instance
		if np > 1 {
			assert.NotSame(t, be.Models[0], be.Models[1])
		}
	}
	{ // Errors
		be, err := NewBatchEvaluator(0, factory)
		require.NoError(t, err)
		assert.Equal(t, 1, be.ParallelDegree)
		_, _, err = be.Evaluate(T, Rho[:10], Cp)
		assert.Error(t, err)

		_, err = NewBatchEvaluator(2, func() (*FluidModel, error) {
			return nil, fmt.Errorf("no models")
		})
		assert.Error(t, err)
		_, err = NewBatchEvaluator(2, func() (*FluidModel, error) { return nil, nil })
		assert.Error(t, err)
	}
	{ // Empty batch
		be, _ := NewBatchEvaluator(4, factory)
		mu, kt, err := be.Evaluate(nil, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, mu)
		assert.Empty(t, kt)
	}
}
