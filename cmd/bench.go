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
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/transport_model"
	"github.com/notargets/gotransport/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time batch evaluation of the transport models over many cells",
	Long: `
Evaluates the configured models over a synthetic set of cells spanning the
temperature range of the input file, one model instance per partition.

gotransport bench -I input.yaml -c 1000000 -p 8 [--profile]`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		cells, _ := cmd.Flags().GetInt("cells")
		iterations, _ := cmd.Flags().GetInt("iterations")
		if np, _ := cmd.Flags().GetInt("parallel"); np > 0 {
			ip.ParallelDegree = np
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err := RunBench(os.Stdout, ip, cells, iterations); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	addInputFlag(BenchCmd)
	BenchCmd.Flags().IntP("cells", "c", 100000, "number of cells evaluated per iteration")
	BenchCmd.Flags().IntP("iterations", "n", 10, "number of iterations")
	BenchCmd.Flags().IntP("parallel", "p", 0, "number of partitions, overrides ParallelDegree of the input file")
	BenchCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

func RunBench(w io.Writer, ip *InputParameters.InputParameters, cells, iterations int) (err error) {
	var (
		factory func() (*transport_model.FluidModel, error)
		be      *transport_model.BatchEvaluator
		mu      []transport_model.ViscosityState
		kt      []transport_model.ConductivityState
	)
	if cells < 2 || iterations < 1 {
		err = fmt.Errorf("need at least 2 cells and 1 iteration, have %d and %d", cells, iterations)
		return
	}
	if factory, err = ip.NewFluidModelFactory(); err != nil {
		return
	}
	if be, err = transport_model.NewBatchEvaluator(ip.ParallelDegree, factory); err != nil {
		return
	}
	var (
		T   = floats.Span(make([]float64, cells), ip.TMin, ip.TMax)
		Rho = utils.ConstArray(cells, ip.Rho)
		Cp  = utils.ConstArray(cells, ip.Cp)
	)
	start := time.Now()
	for n := 0; n < iterations; n++ {
		if mu, kt, err = be.Evaluate(T, Rho, Cp); err != nil {
			return
		}
	}
	elapsed := time.Since(start)
	var nonFinite int
	for k := range mu {
		nonFinite += utils.CountNonFinite(mu[k].Mu, mu[k].DMuDT, mu[k].DMuDRho, kt[k].Kt, kt[k].DKtDT, kt[k].DKtDRho)
	}
	if nonFinite != 0 {
		log.WithField("count", nonFinite).Warn("non finite transport properties in batch")
	}
	rate := float64(cells*iterations) / elapsed.Seconds()
	fmt.Fprintf(w, "%d cells x %d iterations on %d partitions: %v, %.3e cell evaluations/s\n",
		cells, iterations, be.ParallelDegree, elapsed, rate)
	log.Debug(utils.GetMemUsage())
	return
}
