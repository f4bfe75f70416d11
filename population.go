/*
Copyright (C) 2026 The hydro authors.
This file is part of hydro.

hydro is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

hydro is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with hydro.  If not, see <http://www.gnu.org/licenses/>.
*/

package hydro

import (
	"math"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/antoinelb/hydro/metrics"
)

// population holds the complex-shuffling working set: a row of
// parameters per member, the matching row of [rmse, nse, kge] objective
// values, and the simulated discharge series backing those objectives.
type population struct {
	params      [][]float64
	objectives  [][3]float64
	simulations [][]float64
}

// newPopulation allocates an n-member population over the given bounds.
// Member 0 is seeded at the per-dimension bounds midpoint (lower+upper)/2
// — not the model's defaults, which for a composed snow+runoff model
// need not coincide with that midpoint; the rest are drawn uniformly at
// random from bounds. Every objective row starts at the sentinel {+Inf,
// -Inf, -Inf}, the ordering identity for [minimize, maximize, maximize],
// so an unevaluated member never wins a sort against an evaluated one.
func newPopulation(n int, defaults []float64, bounds Bounds, r *rand.Rand) *population {
	p := &population{
		params:     make([][]float64, n),
		objectives: make([][3]float64, n),
	}
	nParams := len(defaults)

	for i := 0; i < n; i++ {
		row := make([]float64, nParams)
		if i == 0 {
			for j := 0; j < nParams; j++ {
				row[j] = (bounds.Lower(j) + bounds.Upper(j)) / 2
			}
		} else {
			for j := 0; j < nParams; j++ {
				row[j] = uniform(r, bounds.Lower(j), bounds.Upper(j))
			}
		}
		p.params[i] = row
		p.objectives[i] = [3]float64{math.Inf(1), math.Inf(-1), math.Inf(-1)}
	}
	return p
}

// evaluate runs model.Simulate and the three metrics for every member
// of the population concurrently, striping members across
// runtime.GOMAXPROCS(0) workers. evaluate never touches r: member
// generation is the only randomized step, so a run's RNG draw sequence
// doesn't depend on how many workers happen to run.
func (p *population) evaluate(model *Model, forcing Forcing, meta SiteMetadata, observations []float64) error {
	n := len(p.params)
	if p.simulations == nil {
		p.simulations = make([][]float64, n)
	}

	nprocs := runtime.GOMAXPROCS(0)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(nprocs)
	for proc := 0; proc < nprocs; proc++ {
		go func(proc int) {
			defer wg.Done()
			for i := proc; i < n; i += nprocs {
				sim, err := model.Simulate(p.params[i], forcing, meta)
				if err != nil {
					errs[i] = err
					continue
				}
				p.simulations[i] = sim
				p.objectives[i] = evaluateObjectives(observations, sim)
			}
		}(proc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// evaluateObjectives computes the [rmse, nse, kge] triple for a single
// simulation. A metric that errors (a length mismatch) yields its
// ordering-identity sentinel rather than aborting the whole run, since a
// single pathological member shouldn't crash a shuffling loop. Degenerate
// inputs such as constant observations are not errors: the resulting
// NaN or infinite values are stored as they are.
func evaluateObjectives(observations, sim []float64) [3]float64 {
	var out [3]float64

	if rmse, err := metrics.RMSE(observations, sim); err == nil {
		out[objectiveRMSE] = rmse
	} else {
		out[objectiveRMSE] = math.Inf(1)
	}
	if nse, err := metrics.NSE(observations, sim); err == nil {
		out[objectiveNSE] = nse
	} else {
		out[objectiveNSE] = math.Inf(-1)
	}
	if kge, err := metrics.KGE(observations, sim); err == nil {
		out[objectiveKGE] = kge
	} else {
		out[objectiveKGE] = math.Inf(-1)
	}
	return out
}

// clone returns a deep copy whose rows share no backing arrays with p.
func (p *population) clone() *population {
	c := &population{
		params:      make([][]float64, len(p.params)),
		objectives:  make([][3]float64, len(p.objectives)),
		simulations: make([][]float64, len(p.simulations)),
	}
	for i, row := range p.params {
		c.params[i] = append([]float64(nil), row...)
	}
	copy(c.objectives, p.objectives)
	for i, row := range p.simulations {
		c.simulations[i] = append([]float64(nil), row...)
	}
	return c
}
