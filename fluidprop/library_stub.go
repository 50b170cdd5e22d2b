//go:build !fluidprop || !cgo
// +build !fluidprop !cgo

package fluidprop

import (
	"fmt"

	"github.com/notargets/gotransport/transport_model"
)

// Library is only functional in builds with the fluidprop tag and cgo enabled
type Library struct {
	Model, Fluid string
}

func NewLibrary(model, fluid string) (lib *Library, err error) {
	err = fmt.Errorf("built without FluidProp support, rebuild with -tags fluidprop or use a property table")
	return
}

func (lib *Library) AllTransportProperties(mode string, T, rho float64) (tp transport_model.TransportProperties) {
	return
}

func (lib *Library) LastError() string {
	return "FluidProp is not available in this build"
}

func (lib *Library) Close() {}
