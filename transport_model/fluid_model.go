package transport_model

// FluidModel is the solver side owner of one viscosity model and one conductivity model.
// Mu and Kt hold the results of the most recent SetTDState call.
type FluidModel struct {
	ViscosityModel    ViscosityModel
	ConductivityModel ConductivityModel
	T, Rho, Cp        float64
	Mu                ViscosityState
	Kt                ConductivityState
}

func NewFluidModel(visc ViscosityModel, cond ConductivityModel) (fm *FluidModel) {
	if visc == nil || cond == nil {
		panic("fluid model requires both a viscosity and a conductivity model")
	}
	fm = &FluidModel{
		ViscosityModel:    visc,
		ConductivityModel: cond,
	}
	return
}

// SetTDState updates the transport properties for the temperature / density state.
// The conductivity is computed from the freshly updated viscosity state.
func (fm *FluidModel) SetTDState(T, rho, cp float64) {
	fm.T, fm.Rho, fm.Cp = T, rho, cp
	fm.Mu = EvaluateViscosity(fm.ViscosityModel, T, rho)
	fm.Kt = EvaluateConductivity(fm.ConductivityModel, T, rho, cp, fm.Mu)
}

// Prandtl returns Mu*Cp/Kt for the stored state
func (fm *FluidModel) Prandtl() (pr float64) {
	pr = fm.Mu.Mu * fm.Cp / fm.Kt.Kt
	return
}
