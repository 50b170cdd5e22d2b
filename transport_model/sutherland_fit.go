package transport_model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// FitSutherland computes the Sutherland constants that best match the viscosity samples,
// referenced to tRef. With C = MuRef*(TRef+S)/TRef^1.5 the law is linear in T:
//
//	T^1.5/Mu = T/C + S/C
func FitSutherland(T, Mu []float64, tRef float64) (sl *Sutherland, err error) {
	if len(T) != len(Mu) {
		err = fmt.Errorf("mismatched sample lengths: T %d, Mu %d", len(T), len(Mu))
		return
	}
	if len(T) < 2 {
		err = fmt.Errorf("need at least two samples to fit the Sutherland law, have %d", len(T))
		return
	}
	if tRef <= 0 {
		err = fmt.Errorf("reference temperature must be positive, have %v", tRef)
		return
	}
	y := make([]float64, len(T))
	for i := range T {
		if T[i] <= 0 || Mu[i] <= 0 {
			err = fmt.Errorf("sample %d is not physical: T = %v, Mu = %v", i, T[i], Mu[i])
			return
		}
		y[i] = math.Pow(T[i], 1.5) / Mu[i]
	}
	alpha, beta := stat.LinearRegression(T, y, nil, false)
	if beta <= 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		err = fmt.Errorf("samples do not follow a Sutherland law, slope = %v", beta)
		return
	}
	var (
		C = 1. / beta
		S = alpha * C
	)
	sl = NewSutherland(C*math.Pow(tRef, 1.5)/(tRef+S), tRef, S)
	return
}
