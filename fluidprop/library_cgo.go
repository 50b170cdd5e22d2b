//go:build fluidprop && cgo
// +build fluidprop,cgo

package fluidprop

/*
#cgo LDFLAGS: -lfluidprop
#include <stdlib.h>
#include "fluidprop.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/notargets/gotransport/transport_model"
)

// Library queries the FluidProp thermophysical library. FluidProp holds a single global
// fluid, so only one Library should be in use per process.
type Library struct {
	Model, Fluid string
}

func NewLibrary(model, fluid string) (lib *Library, err error) {
	var (
		cModel = C.CString(model)
		cFluid = C.CString(fluid)
		conc   = [1]C.double{1.}
	)
	defer C.free(unsafe.Pointer(cModel))
	defer C.free(unsafe.Pointer(cFluid))
	C.init_fluidprop()
	C.fluidprop_setfluid(cModel, 1, cFluid, C.int(len(fluid)), &conc[0])
	if msg := C.GoString(C.fluidprop_geterror()); msg != transport_model.NoErrors {
		err = fmt.Errorf("FluidProp cannot set fluid %s with model %s: %s", fluid, model, msg)
		return
	}
	lib = &Library{Model: model, Fluid: fluid}
	return
}

func (lib *Library) AllTransportProperties(mode string, T, rho float64) (tp transport_model.TransportProperties) {
	var (
		cMode                                 = C.CString(mode)
		eta, detaDT, detaDRho                 C.double
		lambda, dlambdaDT, dlambdaDRho, sigma C.double
	)
	defer C.free(unsafe.Pointer(cMode))
	C.fluidprop_alltransprops(cMode, C.double(T), C.double(rho),
		&eta, &detaDT, &detaDRho, &lambda, &dlambdaDT, &dlambdaDRho, &sigma)
	tp = transport_model.TransportProperties{
		Mu: float64(eta), DMuDT: float64(detaDT), DMuDRho: float64(detaDRho),
		Lambda: float64(lambda), DLambdaDT: float64(dlambdaDT), DLambdaDRho: float64(dlambdaDRho),
		Sigma: float64(sigma),
	}
	return
}

func (lib *Library) LastError() string {
	return C.GoString(C.fluidprop_geterror())
}

func (lib *Library) Close() {
	C.uninit_fluidprop()
}
