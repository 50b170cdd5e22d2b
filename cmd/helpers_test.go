package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/transport_model"
)

func sqrt(x float64) float64 { return math.Sqrt(x) }

func mustFluidModel(t *testing.T, ip *InputParameters.InputParameters) *transport_model.FluidModel {
	factory, err := ip.NewFluidModelFactory()
	require.NoError(t, err)
	fm, err := factory()
	require.NoError(t, err)
	return fm
}
