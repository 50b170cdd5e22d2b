package transport_model

import (
	"fmt"
	"sort"
)

// Params holds named model parameters, as read from an input file
type Params map[string]float64

func (p Params) get(key string) (val float64, err error) {
	var ok bool
	if val, ok = p[key]; !ok {
		err = fmt.Errorf("missing parameter %q", key)
	}
	return
}

func (p Params) getOr(key string, dflt float64) (val float64) {
	var ok bool
	if val, ok = p[key]; !ok {
		val = dflt
	}
	return
}

// Sutherland constants for air
const (
	SutherlandMuRefAir = 1.716e-5
	SutherlandTRefAir  = 273.15
	SutherlandSAir     = 110.4
	PrandtlAir         = 0.72
)

type viscosityAllocator func(prms Params, svc PropertyService, opts ...ServiceOption) (ViscosityModel, error)

type conductivityAllocator func(prms Params, svc PropertyService, opts ...ServiceOption) (ConductivityModel, error)

// viscosityAllocators holds all available viscosity models
var viscosityAllocators = map[string]viscosityAllocator{
	"Constant": func(prms Params, _ PropertyService, _ ...ServiceOption) (vm ViscosityModel, err error) {
		var mu float64
		if mu, err = prms.get("Mu"); err != nil {
			return
		}
		vm = NewConstantViscosity(mu)
		return
	},
	"Sutherland": func(prms Params, _ PropertyService, _ ...ServiceOption) (vm ViscosityModel, err error) {
		var (
			muRef = prms.getOr("MuRef", SutherlandMuRefAir)
			tRef  = prms.getOr("TRef", SutherlandTRefAir)
			s     = prms.getOr("S", SutherlandSAir)
		)
		if tRef <= 0 || s+tRef <= 0 {
			err = fmt.Errorf("invalid Sutherland constants TRef = %v, S = %v", tRef, s)
			return
		}
		vm = NewSutherland(muRef, tRef, s)
		return
	},
	"FluidProp": func(_ Params, svc PropertyService, opts ...ServiceOption) (vm ViscosityModel, err error) {
		if svc == nil {
			err = fmt.Errorf("viscosity model FluidProp requires a property service")
			return
		}
		vm = NewFluidPropViscosity(svc, opts...)
		return
	},
}

// conductivityAllocators holds all available conductivity models
var conductivityAllocators = map[string]conductivityAllocator{
	"Constant": func(prms Params, _ PropertyService, _ ...ServiceOption) (cm ConductivityModel, err error) {
		var kt float64
		if kt, err = prms.get("Kt"); err != nil {
			return
		}
		cm = NewConstantConductivity(kt)
		return
	},
	"ConstantPrandtl": func(prms Params, _ PropertyService, _ ...ServiceOption) (cm ConductivityModel, err error) {
		pr := prms.getOr("Pr", PrandtlAir)
		if pr <= 0 {
			err = fmt.Errorf("Prandtl number must be positive, have %v", pr)
			return
		}
		cm = NewConstantPrandtl(pr)
		return
	},
	"FluidProp": func(_ Params, svc PropertyService, opts ...ServiceOption) (cm ConductivityModel, err error) {
		if svc == nil {
			err = fmt.Errorf("conductivity model FluidProp requires a property service")
			return
		}
		cm = NewFluidPropConductivity(svc, opts...)
		return
	},
}

// NewViscosityModel allocates a viscosity model by name. The service is only used by FluidProp.
func NewViscosityModel(name string, prms Params, svc PropertyService, opts ...ServiceOption) (vm ViscosityModel, err error) {
	allocator, ok := viscosityAllocators[name]
	if !ok {
		err = fmt.Errorf("viscosity model %q is not available, options are %v", name, ViscosityModelNames())
		return
	}
	if vm, err = allocator(prms, svc, opts...); err != nil {
		err = fmt.Errorf("cannot allocate viscosity model %q: %w", name, err)
	}
	return
}

// NewConductivityModel allocates a conductivity model by name. The service is only used by FluidProp.
func NewConductivityModel(name string, prms Params, svc PropertyService, opts ...ServiceOption) (cm ConductivityModel, err error) {
	allocator, ok := conductivityAllocators[name]
	if !ok {
		err = fmt.Errorf("conductivity model %q is not available, options are %v", name, ConductivityModelNames())
		return
	}
	if cm, err = allocator(prms, svc, opts...); err != nil {
		err = fmt.Errorf("cannot allocate conductivity model %q: %w", name, err)
	}
	return
}

func ViscosityModelNames() (names []string) {
	for name := range viscosityAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func ConductivityModelNames() (names []string) {
	for name := range conductivityAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
