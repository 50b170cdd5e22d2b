package fluidprop

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gotransport/transport_model"
)

// Table is a property service backed by a rectilinear lookup table in temperature and density.
// Values between nodes are bilinear, derivatives are those of the bilinear patch.
// Queries outside the table are clamped to the table boundary and reported through LastError.
//
// Like the library it stands in for, a Table keeps the status of the last query and must not
// be shared between goroutines, use Clone to get an independent service on the same data.
type Table struct {
	Fluid  string      `json:"Fluid"`
	T      []float64   `json:"T"`
	Rho    []float64   `json:"Rho"`
	Mu     [][]float64 `json:"Mu"`     // Mu[i][j] is the viscosity at T[i], Rho[j]
	Lambda [][]float64 `json:"Lambda"` // Thermal conductivity, same layout as Mu
	Sigma  [][]float64 `json:"Sigma,omitempty"`

	lastError string
}

func LoadTable(path string) (tb *Table, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	if tb, err = ParseTable(data); err != nil {
		err = fmt.Errorf("reading property table %s: %w", path, err)
	}
	return
}

func ParseTable(data []byte) (tb *Table, err error) {
	tb = &Table{}
	if err = yaml.Unmarshal(data, tb); err != nil {
		tb = nil
		return
	}
	if err = tb.Validate(); err != nil {
		tb = nil
	}
	return
}

// NewTableFromModels tabulates a pair of transport models on the grid Ts x Rhos.
// The conductivity is evaluated from the tabulated viscosity at the constant cp.
func NewTableFromModels(fluid string, Ts, Rhos []float64, visc transport_model.ViscosityModel,
	cond transport_model.ConductivityModel, cp float64) (tb *Table, err error) {
	var (
		NT, NR = len(Ts), len(Rhos)
	)
	tb = &Table{
		Fluid:  fluid,
		T:      append([]float64{}, Ts...),
		Rho:    append([]float64{}, Rhos...),
		Mu:     make([][]float64, NT),
		Lambda: make([][]float64, NT),
	}
	for i, T := range Ts {
		tb.Mu[i] = make([]float64, NR)
		tb.Lambda[i] = make([]float64, NR)
		for j, rho := range Rhos {
			mu := visc.Viscosity(T, rho)
			tb.Mu[i][j] = mu
			tb.Lambda[i][j] = cond.Conductivity(T, rho, mu, cp)
		}
	}
	if err = tb.Validate(); err != nil {
		tb = nil
	}
	return
}

func (tb *Table) Validate() (err error) {
	var (
		NT, NR = len(tb.T), len(tb.Rho)
	)
	if NT < 2 || NR < 2 {
		return fmt.Errorf("property table needs at least 2 temperatures and 2 densities, have %d x %d", NT, NR)
	}
	increasing := func(name string, x []float64) error {
		for i := 1; i < len(x); i++ {
			if x[i] <= x[i-1] {
				return fmt.Errorf("table %s values must be strictly increasing, %v follows %v", name, x[i], x[i-1])
			}
		}
		return nil
	}
	if err = increasing("T", tb.T); err != nil {
		return
	}
	if err = increasing("Rho", tb.Rho); err != nil {
		return
	}
	checkDims := func(name string, f [][]float64) error {
		if len(f) != NT {
			return fmt.Errorf("table %s has %d rows, need one per temperature (%d)", name, len(f), NT)
		}
		for i, row := range f {
			if len(row) != NR {
				return fmt.Errorf("table %s row %d has %d entries, need one per density (%d)", name, i, len(row), NR)
			}
		}
		return nil
	}
	if err = checkDims("Mu", tb.Mu); err != nil {
		return
	}
	if err = checkDims("Lambda", tb.Lambda); err != nil {
		return
	}
	if tb.Sigma != nil {
		err = checkDims("Sigma", tb.Sigma)
	}
	return
}

// Clone returns a service sharing the table data with its own query status
func (tb *Table) Clone() (c *Table) {
	c = &Table{
		Fluid:  tb.Fluid,
		T:      tb.T,
		Rho:    tb.Rho,
		Mu:     tb.Mu,
		Lambda: tb.Lambda,
		Sigma:  tb.Sigma,
	}
	return
}

func (tb *Table) Marshal() (data []byte, err error) {
	return yaml.Marshal(tb)
}

func (tb *Table) LastError() string {
	return tb.lastError
}

func (tb *Table) AllTransportProperties(mode string, T, rho float64) (tp transport_model.TransportProperties) {
	if mode != transport_model.TemperatureDensity {
		tb.lastError = fmt.Sprintf("input specification %q is not supported", mode)
		return
	}
	var (
		i, a, tOut = locate(tb.T, T)
		j, b, rOut = locate(tb.Rho, rho)
		dT         = tb.T[i+1] - tb.T[i]
		dR         = tb.Rho[j+1] - tb.Rho[j]
	)
	tb.lastError = transport_model.NoErrors
	switch {
	case tOut && rOut:
		tb.lastError = fmt.Sprintf("state T = %g, rho = %g is outside the table", T, rho)
	case tOut:
		tb.lastError = fmt.Sprintf("temperature %g is outside the table range [%g, %g]", T, tb.T[0], tb.T[len(tb.T)-1])
	case rOut:
		tb.lastError = fmt.Sprintf("density %g is outside the table range [%g, %g]", rho, tb.Rho[0], tb.Rho[len(tb.Rho)-1])
	}
	tp.Mu, tp.DMuDT, tp.DMuDRho = bilinear(tb.Mu, i, j, a, b, dT, dR)
	tp.Lambda, tp.DLambdaDT, tp.DLambdaDRho = bilinear(tb.Lambda, i, j, a, b, dT, dR)
	if tb.Sigma != nil {
		tp.Sigma, _, _ = bilinear(tb.Sigma, i, j, a, b, dT, dR)
	}
	return
}

// locate finds the interval i such that x[i] <= xx <= x[i+1] and the local coordinate within it.
// Values outside the range are clamped and flagged.
func locate(x []float64, xx float64) (i int, frac float64, out bool) {
	var (
		N  = len(x)
		xc = xx
	)
	switch {
	case xx < x[0] || math.IsNaN(xx):
		xc, out = x[0], true
	case xx > x[N-1]:
		xc, out = x[N-1], true
	}
	i = sort.SearchFloat64s(x, xc) - 1
	if i < 0 {
		i = 0
	}
	if i > N-2 {
		i = N - 2
	}
	frac = (xc - x[i]) / (x[i+1] - x[i])
	return
}

func bilinear(f [][]float64, i, j int, a, b, dT, dR float64) (val, dfdT, dfdR float64) {
	var (
		f00, f01 = f[i][j], f[i][j+1]
		f10, f11 = f[i+1][j], f[i+1][j+1]
	)
	val = (1-a)*(1-b)*f00 + a*(1-b)*f10 + (1-a)*b*f01 + a*b*f11
	dfdT = ((1-b)*(f10-f00) + b*(f11-f01)) / dT
	dfdR = ((1-a)*(f01-f00) + a*(f11-f10)) / dR
	return
}
