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
	"sort"

	"github.com/GaryBoone/GoStats/stats"
)

// partitionIntoComplexes splits a sorted population into nComplexes
// complexes using the interleaved selection k_ij = j*nComplexes + i, so
// that good and bad members are distributed evenly across complexes
// rather than clustered in one.
func partitionIntoComplexes(p *population, nComplexes int) []*population {
	nPerComplex := len(p.params) / nComplexes
	complexes := make([]*population, nComplexes)

	for i := 0; i < nComplexes; i++ {
		c := &population{
			params:      make([][]float64, nPerComplex),
			objectives:  make([][3]float64, nPerComplex),
			simulations: make([][]float64, nPerComplex),
		}
		for j := 0; j < nPerComplex; j++ {
			k := j*nComplexes + i
			c.params[j] = p.params[k]
			c.objectives[j] = p.objectives[k]
			c.simulations[j] = p.simulations[k]
		}
		complexes[i] = c
	}
	return complexes
}

// mergeComplexes concatenates evolved complexes back into a single
// population and re-sorts it by the selected objective.
func mergeComplexes(complexes []*population, objIdx int, minimize bool) *population {
	total := 0
	for _, c := range complexes {
		total += len(c.params)
	}

	merged := &population{
		params:      make([][]float64, 0, total),
		objectives:  make([][3]float64, 0, total),
		simulations: make([][]float64, 0, total),
	}
	for _, c := range complexes {
		merged.params = append(merged.params, c.params...)
		merged.objectives = append(merged.objectives, c.objectives...)
		merged.simulations = append(merged.simulations, c.simulations...)
	}

	sortByObjective(merged, objIdx, minimize)
	return merged
}

// selectSimplexIndices draws nSimplex member indices out of a complex of
// size nPerComplex, always including index 0 (the complex's best
// member) and drawing the remainder from a triangular distribution
// biased toward low (better) indices. Each draw retries up to 1000
// times looking for an index not already chosen; if none turns up
// unique within that budget, the last draw is kept as is, so a simplex
// may rarely contain a duplicate index. This mirrors the reference
// optimizer exactly rather than treating the collision as an error.
func selectSimplexIndices(nPerComplex, nSimplex int, r *rand.Rand) []int {
	indices := []int{0}
	n := float64(nPerComplex)

	for len(indices) < nSimplex {
		lpos := 0
		for attempt := 0; attempt < 1000; attempt++ {
			u := r.Float64()
			lpos = int(math.Floor(n + 0.5 - math.Sqrt((n+0.5)*(n+0.5)-n*(n+1)*u)))
			if !containsInt(indices, lpos) {
				break
			}
		}
		indices = append(indices, lpos)
	}

	sort.Ints(indices)
	return indices
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// normalizedGeometricRange computes gnrng: the exponential of the mean,
// over parameter dimensions, of the log of the per-dimension population
// range normalized by that dimension's bounds range. A value near 0
// means the population has collapsed onto a point in parameter space.
// Per-dimension extrema go through GoStats, the same extrema library the
// reference model uses to compare observed and simulated series.
func normalizedGeometricRange(p *population, bounds Bounds) float64 {
	nParams := len(p.params[0])
	column := make([]float64, len(p.params))
	logSum := 0.0

	for j := 0; j < nParams; j++ {
		for i, row := range p.params {
			column[i] = row[j]
		}
		min := stats.StatsMin(column)
		max := stats.StatsMax(column)
		normalized := (max - min) / (bounds.Upper(j) - bounds.Lower(j))
		logSum += math.Log(math.Max(1e-10, normalized))
	}

	return math.Exp(logSum / float64(nParams))
}
