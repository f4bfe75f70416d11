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
	"sort"
)

// worseness maps an objective value onto a single total order where
// smaller always means better, regardless of whether the underlying
// objective is minimized or maximized, and where NaN is always the
// worst possible value. RMSE is already "smaller is better", so its
// worseness is the value itself; NSE/KGE are "bigger is better", so
// their worseness is the negated value.
func worseness(v float64, minimize bool) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	if minimize {
		return v
	}
	return -v
}

// sortByObjective stably reorders p's members, best (row 0) first,
// according to column objIdx under the given direction.
func sortByObjective(p *population, objIdx int, minimize bool) {
	n := len(p.params)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		wa := worseness(p.objectives[idx[a]][objIdx], minimize)
		wb := worseness(p.objectives[idx[b]][objIdx], minimize)
		return wa < wb
	})

	params := make([][]float64, n)
	objectives := make([][3]float64, n)
	simulations := make([][]float64, n)
	for newPos, oldPos := range idx {
		params[newPos] = p.params[oldPos]
		objectives[newPos] = p.objectives[oldPos]
		if p.simulations != nil {
			simulations[newPos] = p.simulations[oldPos]
		}
	}
	p.params = params
	p.objectives = objectives
	p.simulations = simulations
}
