package InputParameters

import (
	"fmt"

	"github.com/notargets/gotransport/fluidprop"
	"github.com/notargets/gotransport/transport_model"
)

func (ip *InputParameters) usesService() bool {
	return ip.ViscosityModel == "FluidProp" || ip.ConductivityModel == "FluidProp"
}

// NewFluidModelFactory returns a constructor for the fluid models described by the parameters.
// Each call builds independent models, table backed services are cloned per call.
func (ip *InputParameters) NewFluidModelFactory() (factory func() (*transport_model.FluidModel, error), err error) {
	var (
		ep       transport_model.ErrorPolicy
		newSvc   = func() transport_model.PropertyService { return nil }
		baseOpts []transport_model.ServiceOption
	)
	if ep, err = transport_model.NewErrorPolicy(ip.ErrorPolicy); err != nil {
		return
	}
	baseOpts = append(baseOpts, transport_model.WithErrorPolicy(ep))
	if ip.usesService() {
		switch {
		case len(ip.TableFile) != 0:
			var tb *fluidprop.Table
			if tb, err = fluidprop.LoadTable(ip.TableFile); err != nil {
				return
			}
			newSvc = func() transport_model.PropertyService { return tb.Clone() }
		default:
			var lib *fluidprop.Library
			if lib, err = fluidprop.NewLibrary(ip.FluidPropModel, ip.Fluid); err != nil {
				return
			}
			if ip.ParallelDegree > 1 {
				err = fmt.Errorf("the FluidProp library holds global state, ParallelDegree must be 1")
				return
			}
			newSvc = func() transport_model.PropertyService { return lib }
		}
	}
	factory = func() (fm *transport_model.FluidModel, err error) {
		var (
			svc  = newSvc()
			visc transport_model.ViscosityModel
			cond transport_model.ConductivityModel
		)
		if visc, err = transport_model.NewViscosityModel(ip.ViscosityModel, ip.Viscosity, svc, baseOpts...); err != nil {
			return
		}
		if cond, err = transport_model.NewConductivityModel(ip.ConductivityModel, ip.Conductivity, svc, baseOpts...); err != nil {
			return
		}
		fm = transport_model.NewFluidModel(visc, cond)
		return
	}
	// Catch parameter errors at setup time
	if _, err = factory(); err != nil {
		factory = nil
	}
	return
}
