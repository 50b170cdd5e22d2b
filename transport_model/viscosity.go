package transport_model

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// ViscosityState holds the dynamic viscosity and its partial derivatives,
// dMu/drho at constant T and dMu/dT at constant rho
type ViscosityState struct {
	Mu      float64
	DMuDRho float64
	DMuDT   float64
}

// ViscosityModel computes the dynamic viscosity from the temperature / density state.
// Inputs are expected to be physical (T > 0, rho > 0) and are not checked.
type ViscosityModel interface {
	Viscosity(T, rho float64) (mu float64)
	ViscosityDerivatives(T, rho float64) (dMudRho, dMudT float64)
}

func EvaluateViscosity(m ViscosityModel, T, rho float64) (vs ViscosityState) {
	vs.Mu = m.Viscosity(T, rho)
	vs.DMuDRho, vs.DMuDT = m.ViscosityDerivatives(T, rho)
	return
}

type ConstantViscosity struct {
	Mu float64
}

func NewConstantViscosity(mu float64) (cv *ConstantViscosity) {
	cv = &ConstantViscosity{Mu: mu}
	return
}

func (cv *ConstantViscosity) Viscosity(T, rho float64) (mu float64) {
	return cv.Mu
}

func (cv *ConstantViscosity) ViscosityDerivatives(T, rho float64) (dMudRho, dMudT float64) {
	return
}

// Sutherland implements the three parameter Sutherland law
//
//	Mu = MuRef * (T/TRef)^1.5 * (TRef + S) / (T + S)
type Sutherland struct {
	MuRef, TRef, S float64
}

func NewSutherland(muRef, tRef, s float64) (sl *Sutherland) {
	sl = &Sutherland{
		MuRef: muRef,
		TRef:  tRef,
		S:     s,
	}
	return
}

func (sl *Sutherland) Viscosity(T, rho float64) (mu float64) {
	var (
		tr = T / sl.TRef
	)
	mu = sl.MuRef * math.Pow(tr, 1.5) * ((sl.TRef + sl.S) / (T + sl.S))
	return
}

// ViscosityDerivatives returns the analytic derivatives of the law, which has no density dependence
//
//	dMu/dT = MuRef * [1.5*(T/TRef)^0.5/TRef * (TRef+S)/(T+S) - (T/TRef)^1.5 * (TRef+S)/(T+S)^2]
func (sl *Sutherland) ViscosityDerivatives(T, rho float64) (dMudRho, dMudT float64) {
	var (
		tr  = T / sl.TRef
		tpS = T + sl.S
		num = sl.TRef + sl.S
	)
	dMudRho = 0
	dMudT = sl.MuRef * (1.5*math.Sqrt(tr)/sl.TRef*(num/tpS) - math.Pow(tr, 1.5)*num/tpS/tpS)
	return
}

type FluidPropViscosity struct {
	*serviceClient
}

// NewFluidPropViscosity delegates viscosity lookups to an external property service
func NewFluidPropViscosity(svc PropertyService, opts ...ServiceOption) (fv *FluidPropViscosity) {
	fv = &FluidPropViscosity{
		serviceClient: newServiceClient(svc, opts...),
	}
	return
}

func (fv *FluidPropViscosity) Viscosity(T, rho float64) (mu float64) {
	tp := fv.query(T, rho, func(tp TransportProperties) log.Fields {
		return log.Fields{"mu": tp.Mu}
	})
	mu = tp.Mu
	return
}

func (fv *FluidPropViscosity) ViscosityDerivatives(T, rho float64) (dMudRho, dMudT float64) {
	tp := fv.query(T, rho, func(tp TransportProperties) log.Fields {
		return log.Fields{"dmudT_rho": tp.DMuDT, "dmudrho_T": tp.DMuDRho}
	})
	dMudRho, dMudT = tp.DMuDRho, tp.DMuDT
	return
}
