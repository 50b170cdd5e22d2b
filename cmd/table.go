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
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/fluidprop"
	"github.com/notargets/gotransport/transport_model"
)

type TableRun struct {
	Graph      bool
	GraphField PlotField
	Delay      time.Duration
	TableOut   string
	Densities  []float64
}

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print transport properties over a temperature sweep",
	Long: `
Evaluates the configured viscosity and conductivity models over the temperature
range of the input file, at its density and specific heat.

gotransport table -I input.yaml [-g] [--tableOut table.yaml --densities 0.1,10]`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			tr  = &TableRun{}
		)
		ip := processInput(cmd)
		tr.Graph, _ = cmd.Flags().GetBool("graph")
		gf, _ := cmd.Flags().GetInt("graphField")
		tr.GraphField = PlotField(gf)
		dr, _ := cmd.Flags().GetInt("delay")
		tr.Delay = time.Duration(dr) * time.Second
		tr.TableOut, _ = cmd.Flags().GetString("tableOut")
		densities, _ := cmd.Flags().GetStringSlice("densities")
		if tr.Densities, err = parseFloats(densities); err != nil {
			fmt.Printf("error: --densities: %s\n", err.Error())
			os.Exit(1)
		}
		if err = RunTable(os.Stdout, ip, tr); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(TableCmd)
	addInputFlag(TableCmd)
	TableCmd.Flags().BoolP("graph", "g", false, "display a graph of the sweep")
	TableCmd.Flags().IntP("graphField", "q", 0, "which field should be displayed - 0=Mu, 1=Kt, 2=dMu/dT, 3=dKt/dT, 4=Pr")
	TableCmd.Flags().IntP("delay", "d", 0, "seconds to hold the graph, 0 holds it until interrupted")
	TableCmd.Flags().String("tableOut", "", "write a property table of the models, for use as a FluidProp service")
	TableCmd.Flags().StringSlice("densities", []string{}, "densities of the property table written with --tableOut")
}

func RunTable(w io.Writer, ip *InputParameters.InputParameters, tr *TableRun) (err error) {
	var (
		factory func() (*transport_model.FluidModel, error)
		fm      *transport_model.FluidModel
		Ts      = temperatureSweep(ip)
	)
	if factory, err = ip.NewFluidModelFactory(); err != nil {
		return
	}
	if fm, err = factory(); err != nil {
		return
	}
	sr := evaluateSweep(fm, Ts, ip.Rho, ip.Cp)
	fmt.Fprintf(w, "# %s: %s viscosity, %s conductivity, Rho = %g, Cp = %g\n",
		ip.Title, ip.ViscosityModel, ip.ConductivityModel, ip.Rho, ip.Cp)
	fmt.Fprintf(w, "%12s %14s %14s %14s %14s %14s %10s\n",
		"T", "Mu", "dMu/dT", "dMu/dRho", "Kt", "dKt/dT", "Pr")
	for i, T := range sr.T {
		fmt.Fprintf(w, "%12.4f %14.6e %14.6e %14.6e %14.6e %14.6e %10.5f\n",
			T, sr.Mu[i].Mu, sr.Mu[i].DMuDT, sr.Mu[i].DMuDRho, sr.Kt[i].Kt, sr.Kt[i].DKtDT, sr.Pr[i])
	}
	if len(tr.TableOut) != 0 {
		if err = writePropertyTable(tr.TableOut, ip, fm, Ts, tr.Densities); err != nil {
			return
		}
		fmt.Fprintf(w, "# property table written to %s\n", tr.TableOut)
	}
	if tr.Graph {
		PlotSweep(sr, tr.GraphField, tr.Delay)
	}
	return
}

func parseFloats(fields []string) (vals []float64, err error) {
	vals = make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return
		}
	}
	return
}

func writePropertyTable(fileName string, ip *InputParameters.InputParameters, fm *transport_model.FluidModel,
	Ts, densities []float64) (err error) {
	var (
		tb   *fluidprop.Table
		data []byte
	)
	if len(Ts) < 2 || len(densities) < 2 {
		err = fmt.Errorf("a property table needs at least 2 temperatures and 2 densities (--densities)")
		return
	}
	if tb, err = fluidprop.NewTableFromModels(ip.Title, Ts, densities,
		fm.ViscosityModel, fm.ConductivityModel, ip.Cp); err != nil {
		return
	}
	if data, err = tb.Marshal(); err != nil {
		return
	}
	err = os.WriteFile(fileName, data, 0644)
	return
}
