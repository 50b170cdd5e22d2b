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
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/notargets/gotransport/InputParameters"
	"github.com/notargets/gotransport/transport_model"
	"github.com/notargets/gotransport/utils"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the analytic derivatives of the models with finite differences",
	Long: `
Compares dMu/dT, dMu/dRho, dKt/dT and dKt/dRho of the configured models with
central finite differences over the temperature sweep of the input file.

gotransport check -I input.yaml --tol 1e-6`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		tol, _ := cmd.Flags().GetFloat64("tol")
		cr, err := RunCheck(os.Stdout, ip)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if cr.MaxError() > tol {
			fmt.Printf("derivative check failed, max relative error %g exceeds %g\n", cr.MaxError(), tol)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	addInputFlag(CheckCmd)
	CheckCmd.Flags().Float64("tol", 1.e-6, "maximum relative error accepted")
}

type CheckResult struct {
	MuT, MuRho float64 // Maximum relative errors
	KtT, KtRho float64
}

func (cr *CheckResult) MaxError() float64 {
	return math.Max(math.Max(cr.MuT, cr.MuRho), math.Max(cr.KtT, cr.KtRho))
}

func RunCheck(w io.Writer, ip *InputParameters.InputParameters) (cr *CheckResult, err error) {
	var (
		factory func() (*transport_model.FluidModel, error)
		fm      *transport_model.FluidModel
		rho, cp = ip.Rho, ip.Cp
	)
	if factory, err = ip.NewFluidModelFactory(); err != nil {
		return
	}
	if fm, err = factory(); err != nil {
		return
	}
	var (
		visc = fm.ViscosityModel
		cond = fm.ConductivityModel
		mu   = func(T, rho float64) float64 { return visc.Viscosity(T, rho) }
		kt   = func(T, rho float64) float64 { return cond.Conductivity(T, rho, visc.Viscosity(T, rho), cp) }
	)
	cr = &CheckResult{}
	fmt.Fprintf(w, "%12s %12s %12s %12s %12s\n", "T", "err dMu/dT", "err dMu/dRho", "err dKt/dT", "err dKt/dRho")
	for _, T := range temperatureSweep(ip) {
		var (
			muS        = transport_model.EvaluateViscosity(visc, T, rho)
			ktS        = transport_model.EvaluateConductivity(cond, T, rho, cp, muS)
			settingsT  = &fd.Settings{Formula: fd.Central, Step: 1.e-4 * T}
			settingsR  = &fd.Settings{Formula: fd.Central, Step: 1.e-4 * rho}
			muScale    = 1.e-8 * math.Abs(muS.Mu) / T
			ktScale    = 1.e-8 * math.Abs(ktS.Kt) / T
			muRhoScale = 1.e-8 * math.Abs(muS.Mu) / rho
			ktRhoScale = 1.e-8 * math.Abs(ktS.Kt) / rho
		)
		dMuT := fd.Derivative(func(x float64) float64 { return mu(x, rho) }, T, settingsT)
		dMuR := fd.Derivative(func(x float64) float64 { return mu(T, x) }, rho, settingsR)
		dKtT := fd.Derivative(func(x float64) float64 { return kt(x, rho) }, T, settingsT)
		dKtR := fd.Derivative(func(x float64) float64 { return kt(T, x) }, rho, settingsR)
		eMuT := utils.RelativeError(muS.DMuDT, dMuT, muScale)
		eMuR := utils.RelativeError(muS.DMuDRho, dMuR, muRhoScale)
		eKtT := utils.RelativeError(ktS.DKtDT, dKtT, ktScale)
		eKtR := utils.RelativeError(ktS.DKtDRho, dKtR, ktRhoScale)
		if n := utils.CountNonFinite(eMuT, eMuR, eKtT, eKtR); n != 0 {
			err = fmt.Errorf("non finite derivative error at T = %g", T)
			return
		}
		fmt.Fprintf(w, "%12.4f %12.3e %12.3e %12.3e %12.3e\n", T, eMuT, eMuR, eKtT, eKtR)
		cr.MuT, cr.MuRho = math.Max(cr.MuT, eMuT), math.Max(cr.MuRho, eMuR)
		cr.KtT, cr.KtRho = math.Max(cr.KtT, eKtT), math.Max(cr.KtRho, eKtR)
	}
	fmt.Fprintf(w, "max relative error = %g\n", cr.MaxError())
	return
}
