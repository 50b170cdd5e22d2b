package fluidprop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gotransport/transport_model"
)

// linearTable holds fields that are linear in T and rho, reproduced exactly by bilinear interpolation
func linearTable() *Table {
	var (
		Ts   = []float64{200, 300, 500, 800}
		Rhos = []float64{0.5, 1, 2}
		mu   = func(T, rho float64) float64 { return 1.e-6 + 2.e-8*T + 3.e-7*rho }
		kt   = func(T, rho float64) float64 { return 0.01 + 5.e-5*T - 2.e-3*rho }
	)
	tb := &Table{Fluid: "linear", T: Ts, Rho: Rhos}
	for _, T := range Ts {
		var muRow, ktRow, sRow []float64
		for _, rho := range Rhos {
			muRow = append(muRow, mu(T, rho))
			ktRow = append(ktRow, kt(T, rho))
			sRow = append(sRow, 0.07)
		}
		tb.Mu = append(tb.Mu, muRow)
		tb.Lambda = append(tb.Lambda, ktRow)
		tb.Sigma = append(tb.Sigma, sRow)
	}
	return tb
}

func TestTableInterpolation(t *testing.T) {
	tb := linearTable()
	require.NoError(t, tb.Validate())
	{ // Node values are exact
		for i, T := range tb.T {
			for j, rho := range tb.Rho {
				tp := tb.AllTransportProperties("Td", T, rho)
				assert.Equal(t, transport_model.NoErrors, tb.LastError())
				assert.Equal(t, tb.Mu[i][j], tp.Mu)
				assert.Equal(t, tb.Lambda[i][j], tp.Lambda)
				assert.Equal(t, 0.07, tp.Sigma)
			}
		}
	}
	{ // Linear fields and their derivatives are reproduced between nodes
		for _, T := range []float64{210, 299, 301, 640, 799} {
			for _, rho := range []float64{0.6, 0.99, 1.7} {
				tp := tb.AllTransportProperties("Td", T, rho)
				assert.InDelta(t, 1.e-6+2.e-8*T+3.e-7*rho, tp.Mu, 1.e-15)
				assert.InDelta(t, 2.e-8, tp.DMuDT, 1.e-15)
				assert.InDelta(t, 3.e-7, tp.DMuDRho, 1.e-15)
				assert.InDelta(t, 0.01+5.e-5*T-2.e-3*rho, tp.Lambda, 1.e-12)
				assert.InDelta(t, 5.e-5, tp.DLambdaDT, 1.e-12)
				assert.InDelta(t, -2.e-3, tp.DLambdaDRho, 1.e-12)
			}
		}
	}
	{ // Out of range queries are clamped and reported
		tp := tb.AllTransportProperties("Td", 1000, 1)
		assert.Contains(t, tb.LastError(), "temperature 1000")
		assert.InDelta(t, 1.e-6+2.e-8*800+3.e-7, tp.Mu, 1.e-15)

		tb.AllTransportProperties("Td", 300, 0.1)
		assert.Contains(t, tb.LastError(), "density 0.1")

		tb.AllTransportProperties("Td", 100, 10)
		assert.Contains(t, tb.LastError(), "outside the table")

		tb.AllTransportProperties("Td", 300, 1)
		assert.Equal(t, transport_model.NoErrors, tb.LastError())
	}
	{ // Only temperature / density input is supported
		tp := tb.AllTransportProperties("PT", 300, 1)
		assert.Equal(t, transport_model.TransportProperties{}, tp)
		assert.Contains(t, tb.LastError(), "PT")
	}
	{ // Clones keep their own status
		c := tb.Clone()
		c.AllTransportProperties("Td", 5000, 1)
		tb.AllTransportProperties("Td", 300, 1)
		assert.Equal(t, transport_model.NoErrors, tb.LastError())
		assert.NotEqual(t, transport_model.NoErrors, c.LastError())
	}
}

func TestTableValidate(t *testing.T) {
	tb := linearTable()
	tb.T = []float64{200, 100, 500, 800}
	assert.Error(t, tb.Validate())

	tb = linearTable()
	tb.Rho = tb.Rho[:1]
	assert.Error(t, tb.Validate())

	tb = linearTable()
	tb.Mu = tb.Mu[:2]
	assert.Error(t, tb.Validate())

	tb = linearTable()
	tb.Lambda[1] = tb.Lambda[1][:2]
	assert.Error(t, tb.Validate())

	tb = linearTable()
	tb.Sigma = nil
	assert.NoError(t, tb.Validate())
}

func TestTableFiles(t *testing.T) {
	data := []byte(`
Fluid: toluene
T: [400, 500]
Rho: [1, 10]
Mu:
  - [1.0e-5, 1.1e-5]
  - [1.2e-5, 1.3e-5]
Lambda:
  - [0.02, 0.022]
  - [0.024, 0.026]
`)
	tb, err := ParseTable(data)
	require.NoError(t, err)
	assert.Equal(t, "toluene", tb.Fluid)
	assert.Nil(t, tb.Sigma)
	tp := tb.AllTransportProperties("Td", 450, 5.5)
	assert.InDelta(t, 1.15e-5, tp.Mu, 1.e-15)
	assert.InDelta(t, 0.023, tp.Lambda, 1.e-12)

	_, err = ParseTable([]byte("T: [400]\nRho: [1, 2]\n"))
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	out, err := tb.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, out, 0644))
	tb2, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, tb.Mu, tb2.Mu)

	_, err = LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTableFromModels(t *testing.T) {
	var (
		sl   = transport_model.NewSutherland(1.716e-5, 273.15, 110.4)
		cpr  = transport_model.NewConstantPrandtl(0.72)
		Ts   = floats.Span(make([]float64, 201), 200, 1200)
		Rhos = []float64{0.1, 10}
	)
	tb, err := NewTableFromModels("air", Ts, Rhos, sl, cpr, 1005)
	require.NoError(t, err)
	{ // The table backed models follow the analytic models closely
		fm := transport_model.NewFluidModel(
			transport_model.NewFluidPropViscosity(tb),
			transport_model.NewFluidPropConductivity(tb.Clone()))
		ref := transport_model.NewFluidModel(sl, cpr)
		for _, T := range []float64{250, 333.3, 777, 1100} {
			fm.SetTDState(T, 1.2, 1005)
			ref.SetTDState(T, 1.2, 1005)
			assert.InEpsilon(t, ref.Mu.Mu, fm.Mu.Mu, 1.e-4)
			assert.InEpsilon(t, ref.Mu.DMuDT, fm.Mu.DMuDT, 1.e-2)
			assert.InDelta(t, 0., fm.Mu.DMuDRho, 1.e-20)
			assert.InEpsilon(t, ref.Kt.Kt, fm.Kt.Kt, 1.e-4)
			assert.InEpsilon(t, ref.Kt.DKtDT, fm.Kt.DKtDT, 1.e-2)
		}
	}
	{ // Out of range states are logged by the models and evaluation continues
		logger, hook := test.NewNullLogger()
		fv := transport_model.NewFluidPropViscosity(tb, transport_model.WithLogger(logger))
		mu := fv.Viscosity(2000, 1)
		assert.InEpsilon(t, tb.Mu[len(Ts)-1][0], mu, 1.e-12)
		assert.Equal(t, 1, len(hook.AllEntries()))
		assert.Equal(t, 1, fv.Failures())
	}
	_, err = NewTableFromModels("air", []float64{300}, Rhos, sl, cpr, 1005)
	assert.Error(t, err)
}
