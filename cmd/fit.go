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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/transport_model"
)

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit Sutherland law constants to viscosity samples",
	Long: `
Reads viscosity samples from a YAML file and prints the Sutherland constants
that best match them, e.g.

Fluid: air
TRef: 273.15
T:  [200, 300, 400, 600]
Mu: [1.329e-5, 1.846e-5, 2.286e-5, 3.051e-5]

gotransport fit -S samples.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			data []byte
			vs   = &InputParameters.ViscositySamples{}
		)
		fileName, _ := cmd.Flags().GetString("samplesFile")
		if len(fileName) == 0 {
			fmt.Printf("error: must supply a samples file (-S, --samplesFile)\n")
			os.Exit(1)
		}
		if data, err = os.ReadFile(fileName); err != nil {
			panic(err)
		}
		if err = vs.Parse(data); err != nil {
			panic(err)
		}
		if tRef, _ := cmd.Flags().GetFloat64("tRef"); tRef > 0 {
			vs.TRef = tRef
		}
		if _, err = RunFit(os.Stdout, vs); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("samplesFile", "S", "", "YAML file with viscosity samples T, Mu")
	FitCmd.Flags().Float64("tRef", 0, "reference temperature, overrides TRef of the samples file")
}

func RunFit(w io.Writer, vs *InputParameters.ViscositySamples) (sl *transport_model.Sutherland, err error) {
	if vs.TRef == 0 {
		vs.TRef = transport_model.SutherlandTRefAir
	}
	if sl, err = transport_model.FitSutherland(vs.T, vs.Mu, vs.TRef); err != nil {
		return
	}
	fmt.Fprintf(w, "# Sutherland fit for %s, %d samples\n", vs.Fluid, len(vs.T))
	fmt.Fprintf(w, "Viscosity:\n  MuRef: %.6e\n  TRef: %g\n  S: %.4f\n", sl.MuRef, sl.TRef, sl.S)
	fmt.Fprintf(w, "%12s %14s %14s %10s\n", "T", "Mu sample", "Mu fit", "rel err")
	for i, T := range vs.T {
		mu := sl.Viscosity(T, 1)
		fmt.Fprintf(w, "%12.4f %14.6e %14.6e %10.2e\n", T, vs.Mu[i], mu, (mu-vs.Mu[i])/vs.Mu[i])
	}
	return
}
