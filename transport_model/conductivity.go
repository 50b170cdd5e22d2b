package transport_model

import (
	log "github.com/sirupsen/logrus"
)

// ConductivityState holds the thermal conductivity and its partial derivatives,
// dKt/drho at constant T and dKt/dT at constant rho
type ConductivityState struct {
	Kt      float64
	DKtDRho float64
	DKtDT   float64
}

// ConductivityModel computes the thermal conductivity. The viscosity and its
// derivatives are inputs, previously computed by a ViscosityModel.
type ConductivityModel interface {
	Conductivity(T, rho, mu, cp float64) (kt float64)
	ConductivityDerivatives(T, rho, dMudRho, dMudT, cp float64) (dKtdRho, dKtdT float64)
}

func EvaluateConductivity(m ConductivityModel, T, rho, cp float64, mu ViscosityState) (cs ConductivityState) {
	cs.Kt = m.Conductivity(T, rho, mu.Mu, cp)
	cs.DKtDRho, cs.DKtDT = m.ConductivityDerivatives(T, rho, mu.DMuDRho, mu.DMuDT, cp)
	return
}

type ConstantConductivity struct {
	Kt float64
}

func NewConstantConductivity(kt float64) (cc *ConstantConductivity) {
	cc = &ConstantConductivity{Kt: kt}
	return
}

func (cc *ConstantConductivity) Conductivity(T, rho, mu, cp float64) (kt float64) {
	return cc.Kt
}

func (cc *ConstantConductivity) ConductivityDerivatives(T, rho, dMudRho, dMudT, cp float64) (dKtdRho, dKtdT float64) {
	return
}

// ConstantPrandtl enforces Kt = Mu*Cp/Pr, derivatives follow the viscosity derivatives scaled by Cp/Pr
type ConstantPrandtl struct {
	Pr float64
}

func NewConstantPrandtl(pr float64) (cpr *ConstantPrandtl) {
	cpr = &ConstantPrandtl{Pr: pr}
	return
}

func (cpr *ConstantPrandtl) Conductivity(T, rho, mu, cp float64) (kt float64) {
	kt = mu * cp / cpr.Pr
	return
}

func (cpr *ConstantPrandtl) ConductivityDerivatives(T, rho, dMudRho, dMudT, cp float64) (dKtdRho, dKtdT float64) {
	dKtdRho = dMudRho * cp / cpr.Pr
	dKtdT = dMudT * cp / cpr.Pr
	return
}

type FluidPropConductivity struct {
	*serviceClient
}

// NewFluidPropConductivity delegates conductivity lookups to an external property service,
// the viscosity and Cp arguments are not used
func NewFluidPropConductivity(svc PropertyService, opts ...ServiceOption) (fc *FluidPropConductivity) {
	fc = &FluidPropConductivity{
		serviceClient: newServiceClient(svc, opts...),
	}
	return
}

func (fc *FluidPropConductivity) Conductivity(T, rho, mu, cp float64) (kt float64) {
	tp := fc.query(T, rho, func(tp TransportProperties) log.Fields {
		return log.Fields{"Kt": tp.Lambda}
	})
	kt = tp.Lambda
	return
}

func (fc *FluidPropConductivity) ConductivityDerivatives(T, rho, dMudRho, dMudT, cp float64) (dKtdRho, dKtdT float64) {
	tp := fc.query(T, rho, func(tp TransportProperties) log.Fields {
		return log.Fields{"dktdT_rho": tp.DLambdaDT, "dktdrho_T": tp.DLambdaDRho}
	})
	dKtdRho, dKtdT = tp.DLambdaDRho, tp.DLambdaDT
	return
}
