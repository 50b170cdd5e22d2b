package cmd

import (
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

type PlotField uint8

const (
	PlotMu PlotField = iota
	PlotKt
	PlotDMuDT
	PlotDKtDT
	PlotPr
)

func (pf PlotField) String() string {
	names := []string{
		"Mu",
		"Kt",
		"dMu/dT",
		"dKt/dT",
		"Pr",
	}
	if int(pf) >= len(names) {
		return "Unknown"
	}
	return names[int(pf)]
}

func (pf PlotField) Values(sr *SweepResult) (f []float64) {
	f = make([]float64, len(sr.T))
	for i := range sr.T {
		switch pf {
		case PlotMu:
			f[i] = sr.Mu[i].Mu
		case PlotKt:
			f[i] = sr.Kt[i].Kt
		case PlotDMuDT:
			f[i] = sr.Mu[i].DMuDT
		case PlotDKtDT:
			f[i] = sr.Kt[i].DKtDT
		case PlotPr:
			f[i] = sr.Pr[i]
		}
	}
	return
}

// sweepLines converts a curve to line segments normalized to the unit square,
// the field values range over many decades between fields
func sweepLines(x, f []float64) (line []float32) {
	if len(x) < 2 {
		return
	}
	var (
		xMin, xMax = floats.Min(x), floats.Max(x)
		fMin, fMax = floats.Min(f), floats.Max(f)
	)
	scale := func(v, vMin, vMax float64) float32 {
		if vMax == vMin {
			return 0.5
		}
		return float32((v - vMin) / (vMax - vMin))
	}
	for i := 1; i < len(x); i++ {
		line = append(line,
			scale(x[i-1], xMin, xMax), scale(f[i-1], fMin, fMax),
			scale(x[i], xMin, xMax), scale(f[i], fMin, fMax),
		)
	}
	return
}

func PlotSweep(sr *SweepResult, pf PlotField, delay time.Duration) {
	if len(sr.T) < 2 {
		return
	}
	ch := chart2d.NewChart2D(-0.05, 1.05, -0.05, 1.05,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddLine(sweepLines(sr.T, pf.Values(sr)), color.RGBA{R: 255, A: 255})
	if delay > 0 {
		time.Sleep(delay)
		return
	}
	for {
		time.Sleep(time.Second)
	}
}
