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

import "math/rand/v2"

const (
	simplexAlpha = 1.0
	simplexBeta  = 0.5
)

// evolveComplexes advances every complex by nEvolutionSteps competitive
// simplex steps, in place, returning the running evaluation count.
// Complexes are evolved sequentially against a single shared RNG so a
// run's draw sequence is independent of nComplexes' parallelism (there
// is none here, by design).
func evolveComplexes(
	complexes []*population,
	model *Model,
	forcing Forcing,
	meta SiteMetadata,
	observations []float64,
	bounds Bounds,
	objIdx int,
	minimize bool,
	nSimplex, nEvolutionSteps int,
	nCalls int,
	r *rand.Rand,
) (int, error) {
	for _, c := range complexes {
		nPerComplex := len(c.params)

		for step := 0; step < nEvolutionSteps; step++ {
			simplexIdx := selectSimplexIndices(nPerComplex, nSimplex, r)

			simplex := gatherRows(c, simplexIdx)

			newParams, newObjectives, newSim, updatedCalls, err := evolveSimplexStep(
				simplex, model, forcing, meta, observations, bounds, objIdx, minimize, nCalls, r)
			if err != nil {
				return nCalls, err
			}
			nCalls = updatedCalls

			worst := len(simplexIdx) - 1
			scatterRow(c, simplexIdx[worst], newParams, newObjectives, newSim)

			sortByObjective(c, objIdx, minimize)
		}
	}
	return nCalls, nil
}

// gatherRows builds a standalone population from the rows of p at idx,
// in idx order (ascending, per selectSimplexIndices).
func gatherRows(p *population, idx []int) *population {
	s := &population{
		params:      make([][]float64, len(idx)),
		objectives:  make([][3]float64, len(idx)),
		simulations: make([][]float64, len(idx)),
	}
	for j, i := range idx {
		s.params[j] = p.params[i]
		s.objectives[j] = p.objectives[i]
		s.simulations[j] = p.simulations[i]
	}
	return s
}

// scatterRow writes a single evolved row back into p at position i.
func scatterRow(p *population, i int, params []float64, objectives [3]float64, sim []float64) {
	p.params[i] = params
	p.objectives[i] = objectives
	p.simulations[i] = sim
}

// evolveSimplexStep runs one competitive complex evolution (CCE) step
// over a simplex already sorted best-to-worst: reflect the worst point
// through the centroid of the rest; if the reflection lands out of
// bounds, replace it with a uniform random point instead; if the
// (possibly replaced) candidate is worse than the point it's replacing,
// contract halfway toward the worst point instead; if that's still
// worse, fall back to a uniform random point. Each evaluated candidate
// increments the running call count.
func evolveSimplexStep(
	simplex *population,
	model *Model,
	forcing Forcing,
	meta SiteMetadata,
	observations []float64,
	bounds Bounds,
	objIdx int,
	minimize bool,
	nCalls int,
	r *rand.Rand,
) (params []float64, objectives [3]float64, sim []float64, newNCalls int, err error) {
	n := len(simplex.params)
	nParams := len(simplex.params[0])
	worst := simplex.params[n-1]
	worstObjective := simplex.objectives[n-1][objIdx]

	centroid := make([]float64, nParams)
	for i := 0; i < n-1; i++ {
		for j := 0; j < nParams; j++ {
			centroid[j] += simplex.params[i][j]
		}
	}
	for j := range centroid {
		centroid[j] /= float64(n - 1)
	}

	candidate := make([]float64, nParams)
	for j := range candidate {
		candidate[j] = centroid[j] + simplexAlpha*(centroid[j]-worst[j])
	}

	if outOfBounds(candidate, bounds) {
		candidate = randomPoint(bounds, r)
	}

	sim, err = model.Simulate(candidate, forcing, meta)
	if err != nil {
		return nil, [3]float64{}, nil, nCalls, err
	}
	objectives = evaluateObjectives(observations, sim)
	nCalls++

	if isWorse(objectives[objIdx], worstObjective, minimize) {
		for j := range candidate {
			candidate[j] = worst[j] + simplexBeta*(centroid[j]-worst[j])
		}
		sim, err = model.Simulate(candidate, forcing, meta)
		if err != nil {
			return nil, [3]float64{}, nil, nCalls, err
		}
		objectives = evaluateObjectives(observations, sim)
		nCalls++

		if isWorse(objectives[objIdx], worstObjective, minimize) {
			candidate = randomPoint(bounds, r)
			sim, err = model.Simulate(candidate, forcing, meta)
			if err != nil {
				return nil, [3]float64{}, nil, nCalls, err
			}
			objectives = evaluateObjectives(observations, sim)
			nCalls++
		}
	}

	return candidate, objectives, sim, nCalls, nil
}

// isWorse reports whether newVal is worse than oldVal under the
// objective's direction. NaN compares false against anything in Go, as
// in the reference optimizer, so a NaN candidate is never classified as
// worse and is accepted as-is — it simply loses later, competitively,
// through sortByObjective's total order.
func isWorse(newVal, oldVal float64, minimize bool) bool {
	if minimize {
		return newVal > oldVal
	}
	return newVal < oldVal
}

func outOfBounds(params []float64, bounds Bounds) bool {
	for j, v := range params {
		if v < bounds.Lower(j) || v > bounds.Upper(j) {
			return true
		}
	}
	return false
}

func randomPoint(bounds Bounds, r *rand.Rand) []float64 {
	out := make([]float64, len(bounds))
	for j := range out {
		out[j] = uniform(r, bounds.Lower(j), bounds.Upper(j))
	}
	return out
}
