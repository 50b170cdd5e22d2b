package transport_model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

func TestConstantViscosity(t *testing.T) {
	cv := NewConstantViscosity(1.8e-5)
	for _, T := range []float64{1, 300, 5000, -10, 0} {
		for _, rho := range []float64{0.01, 1.2, 1000, 0} {
			assert.Equal(t, 1.8e-5, cv.Viscosity(T, rho))
			dMudRho, dMudT := cv.ViscosityDerivatives(T, rho)
			assert.Equal(t, 0., dMudRho)
			assert.Equal(t, 0., dMudT)
		}
	}
	vs := EvaluateViscosity(cv, 300, 1.2)
	assert.Equal(t, ViscosityState{Mu: 1.8e-5}, vs)
}

func TestSutherland(t *testing.T) {
	sl := NewSutherland(1.716e-5, 273.15, 110.4)
	{ // Reference point
		assert.InDelta(t, 1.716e-5, sl.Viscosity(273.15, 1.2), 1.e-20)
	}
	{ // Known value for air at 300K
		mu := 1.716e-5 * math.Pow(300./273.15, 1.5) * (273.15 + 110.4) / (300. + 110.4)
		assert.InDelta(t, mu, sl.Viscosity(300, 1.2), 1.e-18)
		assert.InDelta(t, 1.846e-5, mu, 1.e-8)
	}
	{ // No density dependence
		for _, T := range []float64{50, 300, 2000} {
			for _, rho := range []float64{1.e-3, 1, 100} {
				dMudRho, _ := sl.ViscosityDerivatives(T, rho)
				assert.Equal(t, 0., dMudRho)
				assert.Equal(t, sl.Viscosity(T, 1), sl.Viscosity(T, rho))
			}
		}
	}
	{ // Temperature derivative against central differences from 50K to 2000K
		Ts := floats.Span(make([]float64, 40), 50, 2000)
		for _, T := range Ts {
			_, dMudT := sl.ViscosityDerivatives(T, 1.2)
			dfd := fd.Derivative(func(x float64) float64 {
				return sl.Viscosity(x, 1.2)
			}, T, &fd.Settings{Formula: fd.Central, Step: 1.e-4 * T})
			assert.InDelta(t, 0., math.Abs(dMudT-dfd)/math.Abs(dMudT), 1.e-6, "T = %v", T)
			assert.Greater(t, dMudT, 0.)
		}
	}
	{ // Closed form of the derivative
		var (
			T, Tr, S, Mr = 450., 273.15, 110.4, 1.716e-5
		)
		want := Mr * (1.5*math.Pow(T/Tr, 0.5)/Tr*(Tr+S)/(T+S) - math.Pow(T/Tr, 1.5)*(Tr+S)/((T+S)*(T+S)))
		_, dMudT := sl.ViscosityDerivatives(T, 1)
		assert.InDelta(t, want, dMudT, 1.e-12*math.Abs(want))
		// Logarithmic derivative of the law: dMu/dT = Mu * (1.5/T - 1/(T+S))
		logForm := sl.Viscosity(T, 1) * (1.5/T - 1/(T+S))
		assert.InDelta(t, logForm, dMudT, 1.e-12*math.Abs(logForm))
		// Magnitude is Mu/T order, not Mu order
		assert.Less(t, dMudT, sl.Viscosity(T, 1)/T)
	}
	{ // Repeated evaluations are identical
		vs1 := EvaluateViscosity(sl, 612.3, 0.4)
		vs2 := EvaluateViscosity(sl, 612.3, 0.4)
		assert.Equal(t, vs1, vs2)
	}
	{ // Nonphysical input is not trapped
		assert.True(t, math.IsNaN(sl.Viscosity(-20, 1)))
	}
}
