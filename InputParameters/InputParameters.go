package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gotransport/transport_model"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title             string             `json:"Title"`
	ViscosityModel    string             `json:"ViscosityModel"`
	ConductivityModel string             `json:"ConductivityModel"`
	Viscosity         map[string]float64 `json:"Viscosity"`    // Viscosity model parameters, e.g. MuRef, TRef, S
	Conductivity      map[string]float64 `json:"Conductivity"` // Conductivity model parameters, e.g. Pr
	Cp                float64            `json:"Cp"`
	Rho               float64            `json:"Rho"`
	TMin              float64            `json:"TMin"`
	TMax              float64            `json:"TMax"`
	NumPoints         int                `json:"NumPoints"`
	ErrorPolicy       string             `json:"ErrorPolicy"`
	TableFile         string             `json:"TableFile"`      // Property table used by the FluidProp models
	FluidPropModel    string             `json:"FluidPropModel"` // FluidProp library model, e.g. StanMix, used without a table
	Fluid             string             `json:"Fluid"`
	ParallelDegree    int                `json:"ParallelDegree"`
}

func (ip *InputParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return ip.Validate()
}

func (ip *InputParameters) setDefaults() {
	if len(ip.ViscosityModel) == 0 {
		ip.ViscosityModel = "Sutherland"
	}
	if len(ip.ConductivityModel) == 0 {
		ip.ConductivityModel = "ConstantPrandtl"
	}
	if ip.NumPoints == 0 {
		ip.NumPoints = 20
	}
	if ip.ParallelDegree == 0 {
		ip.ParallelDegree = 1
	}
}

func (ip *InputParameters) Validate() (err error) {
	switch {
	case ip.Cp <= 0:
		err = fmt.Errorf("Cp must be positive, have %v", ip.Cp)
	case ip.Rho <= 0:
		err = fmt.Errorf("Rho must be positive, have %v", ip.Rho)
	case ip.TMin <= 0 || ip.TMax < ip.TMin:
		err = fmt.Errorf("temperature range [%v, %v] is not valid", ip.TMin, ip.TMax)
	case ip.NumPoints < 1:
		err = fmt.Errorf("NumPoints must be at least 1, have %d", ip.NumPoints)
	case ip.ParallelDegree < 1:
		err = fmt.Errorf("ParallelDegree must be at least 1, have %d", ip.ParallelDegree)
	}
	if err != nil {
		return
	}
	_, err = transport_model.NewErrorPolicy(ip.ErrorPolicy)
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Viscosity Model\n", ip.ViscosityModel)
	printParams("Viscosity", ip.Viscosity)
	fmt.Printf("[%s]\t= Conductivity Model\n", ip.ConductivityModel)
	printParams("Conductivity", ip.Conductivity)
	fmt.Printf("%8.5f\t\t= Cp\n", ip.Cp)
	fmt.Printf("%8.5f\t\t= Rho\n", ip.Rho)
	fmt.Printf("[%8.3f, %8.3f]\t= Temperature Range\n", ip.TMin, ip.TMax)
	fmt.Printf("[%d]\t\t\t= Number of Points\n", ip.NumPoints)
	if len(ip.TableFile) != 0 {
		fmt.Printf("[%s]\t= Property Table\n", ip.TableFile)
	}
	if len(ip.Fluid) != 0 {
		fmt.Printf("[%s:%s]\t= FluidProp Fluid\n", ip.FluidPropModel, ip.Fluid)
	}
}

func printParams(label string, prms map[string]float64) {
	keys := make([]string, len(prms))
	i := 0
	for k := range prms {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s[%s] = %v\n", label, key, prms[key])
	}
}

// ViscositySamples holds measured or tabulated viscosities for calibrating a model
type ViscositySamples struct {
	Fluid string    `json:"Fluid"`
	TRef  float64   `json:"TRef"`
	T     []float64 `json:"T"`
	Mu    []float64 `json:"Mu"`
}

func (vs *ViscositySamples) Parse(data []byte) error {
	return yaml.Unmarshal(data, vs)
}
