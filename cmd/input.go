/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/transport_model"
)

const exampleInputFile = `
########################################
Title: "Air"
ViscosityModel: Sutherland # Can be Constant or FluidProp
Viscosity:
  MuRef: 1.716e-5
  TRef: 273.15
  S: 110.4
ConductivityModel: ConstantPrandtl # Can be Constant or FluidProp
Conductivity:
  Pr: 0.72
Cp: 1005
Rho: 1.2
TMin: 200
TMax: 1500
NumPoints: 14
ErrorPolicy: LogAndContinue # Can be CountOnly or Ignore
########################################
`

func readInputFile(fileName string) (ip *InputParameters.InputParameters, err error) {
	var data []byte
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)\nExample File:%s",
			exampleInputFile)
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		ip = nil
		err = fmt.Errorf("input file %s: %w", fileName, err)
	}
	return
}

func processInput(cmd *cobra.Command) (ip *InputParameters.InputParameters) {
	var (
		err      error
		fileName string
	)
	if fileName, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		panic(err)
	}
	if ip, err = readInputFile(fileName); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func temperatureSweep(ip *InputParameters.InputParameters) (Ts []float64) {
	if ip.NumPoints == 1 || ip.TMin == ip.TMax {
		return []float64{ip.TMin}
	}
	return floats.Span(make([]float64, ip.NumPoints), ip.TMin, ip.TMax)
}

type SweepResult struct {
	T  []float64
	Mu []transport_model.ViscosityState
	Kt []transport_model.ConductivityState
	Pr []float64
}

func evaluateSweep(fm *transport_model.FluidModel, Ts []float64, rho, cp float64) (sr *SweepResult) {
	sr = &SweepResult{
		T:  Ts,
		Mu: make([]transport_model.ViscosityState, len(Ts)),
		Kt: make([]transport_model.ConductivityState, len(Ts)),
		Pr: make([]float64, len(Ts)),
	}
	for i, T := range Ts {
		fm.SetTDState(T, rho, cp)
		sr.Mu[i], sr.Kt[i], sr.Pr[i] = fm.Mu, fm.Kt, fm.Prandtl()
	}
	return
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- ViscosityModel\n\t- ConductivityModel\n\t- TMin, TMax")
}
