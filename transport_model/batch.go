package transport_model

import (
	"fmt"
	"sync"

	"github.com/notargets/gotransport/utils"
)

// BatchEvaluator evaluates transport properties over many cells in parallel.
// Each partition owns its own FluidModel, models are never shared between goroutines.
type BatchEvaluator struct {
	ParallelDegree int
	Models         []*FluidModel
}

func NewBatchEvaluator(parallelDegree int, factory func() (*FluidModel, error)) (be *BatchEvaluator, err error) {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	be = &BatchEvaluator{
		ParallelDegree: parallelDegree,
		Models:         make([]*FluidModel, parallelDegree),
	}
	for np := 0; np < parallelDegree; np++ {
		if be.Models[np], err = factory(); err != nil {
			be = nil
			return
		}
		if be.Models[np] == nil {
			be, err = nil, fmt.Errorf("fluid model factory returned nil for partition %d", np)
			return
		}
	}
	return
}

// Evaluate computes the viscosity and conductivity states for each cell state (T, Rho, Cp)
func (be *BatchEvaluator) Evaluate(T, Rho, Cp []float64) (mu []ViscosityState, kt []ConductivityState, err error) {
	var (
		K  = len(T)
		wg = sync.WaitGroup{}
	)
	if len(Rho) != K || len(Cp) != K {
		err = fmt.Errorf("mismatched state lengths: T %d, Rho %d, Cp %d", K, len(Rho), len(Cp))
		return
	}
	mu = make([]ViscosityState, K)
	kt = make([]ConductivityState, K)
	pm := utils.NewPartitionMap(be.ParallelDegree, K)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			var (
				fm         = be.Models[np]
				kMin, kMax = pm.GetBucketRange(np)
			)
			for k := kMin; k < kMax; k++ {
				fm.SetTDState(T[k], Rho[k], Cp[k])
				mu[k], kt[k] = fm.Mu, fm.Kt
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	return
}
