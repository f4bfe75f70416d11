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

package cemaneige

import "math"

// NumParams is the length of a cemaneige parameter vector: (ctg, kf, qnbv).
const NumParams = 3

// precipGradient (β) is the elevation weighting applied to precipitation
// splitting across layers. The parameter vector carries no elevation
// weighting term, so it is fixed at 0: every layer receives an equal
// share of the day's precipitation.
const precipGradient = 0.0

const meltFactorFloor = 0.1 // v_min

// Init returns the default parameter vector (ctg, kf, qnbv) and its
// bounds, in that order.
func Init() ([]float64, [][2]float64) {
	defaults := []float64{0.25, 3.74, 350}
	bounds := [][2]float64{
		{0, 1},
		{0, 20},
		{50, 800},
	}
	return defaults, bounds
}

// Simulate runs the elevation-banded snow accounting model and returns
// the effective (melt + liquid) precipitation for each day.
//
// params must hold exactly NumParams values (ctg, kf, qnbv). precip,
// temp and dayOfYear must share the same length; dayOfYear entries are
// expected in [1, 366]. layers holds each elevation band's elevation in
// meters; medianElevation is the site's median elevation in meters.
// Callers are expected to have validated these invariants already.
func Simulate(params []float64, precip, temp []float64, dayOfYear []int, medianElevation float64, layers []float64) []float64 {
	ctg, kf, qnbv := params[0], params[1], params[2]

	n := len(precip)
	l := len(layers)

	offsets := make([]float64, l)
	weights := make([]float64, l)
	sumWeights := 0.0
	for i, z := range layers {
		offsets[i] = (z - medianElevation) / 100
		weights[i] = math.Exp(precipGradient * (z - medianElevation))
		sumWeights += weights[i]
	}

	snowpack := make([]float64, l)
	thermalState := make([]float64, l)
	layerTemp := make([]float64, l)

	effective := make([]float64, n)
	for t := 0; t < n; t++ {
		theta := gradientCoefficient(dayOfYear[t])

		var liquidToday float64
		for i := range layers {
			ti := offsets[i]*theta + temp[t]
			layerTemp[i] = ti

			pi := precip[t] * weights[i] / sumWeights
			fs := solidFraction(ti)
			pSolid := fs * pi
			pLiquid := (1 - fs) * pi
			liquidToday += pLiquid

			snowpack[i] += pSolid
			thermalState[i] = math.Min(0, ctg*thermalState[i]+(1-ctg)*ti)
		}

		var meltToday float64
		for i := range layers {
			var potential float64
			if thermalState[i] >= 0 && layerTemp[i] > 0 {
				potential = math.Min(snowpack[i], layerTemp[i]*kf)
			}
			meltFactor := math.Min(snowpack[i]/(0.9*qnbv), 1)*(1-meltFactorFloor) + meltFactorFloor
			melt := potential * meltFactor
			snowpack[i] -= melt
			meltToday += melt
		}

		effective[t] = liquidToday + meltToday
	}

	return effective
}

// solidFraction returns the fraction of precipitation falling as snow at
// the given layer temperature.
func solidFraction(t float64) float64 {
	switch {
	case t < -1:
		return 1
	case t > 3:
		return 0
	default:
		return 1 - (t+1)/4
	}
}
