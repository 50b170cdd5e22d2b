package transport_model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestFitSutherland(t *testing.T) {
	{ // Exact samples recover the constants
		ref := NewSutherland(1.716e-5, 273.15, 110.4)
		T := floats.Span(make([]float64, 25), 150, 1500)
		Mu := make([]float64, len(T))
		for i := range T {
			Mu[i] = ref.Viscosity(T[i], 1)
		}
		sl, err := FitSutherland(T, Mu, 273.15)
		require.NoError(t, err)
		assert.InDelta(t, 110.4, sl.S, 1.e-6)
		assert.InDelta(t, 1.716e-5, sl.MuRef, 1.e-13)
		assert.Equal(t, 273.15, sl.TRef)

		// Changing the reference temperature moves MuRef along the same curve
		sl, err = FitSutherland(T, Mu, 300)
		require.NoError(t, err)
		assert.InDelta(t, ref.Viscosity(300, 1), sl.MuRef, 1.e-13)
	}
	{ // Invalid samples
		_, err := FitSutherland([]float64{300}, []float64{1.8e-5}, 273.15)
		assert.Error(t, err)
		_, err = FitSutherland([]float64{300, 400}, []float64{1.8e-5}, 273.15)
		assert.Error(t, err)
		_, err = FitSutherland([]float64{300, 400}, []float64{1.8e-5, -1}, 273.15)
		assert.Error(t, err)
		_, err = FitSutherland([]float64{300, 400}, []float64{1.8e-5, 2.3e-5}, 0)
		assert.Error(t, err)
		// Viscosity growing faster than T^1.5
		_, err = FitSutherland([]float64{300, 400, 500}, []float64{1.e-5, 2.37e-5, 4.63e-5}, 300)
		assert.Error(t, err)
	}
}
