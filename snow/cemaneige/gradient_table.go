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

const daysInTable = 365

// thetaTable holds the seasonal temperature-gradient coefficient used to
// derive each elevation layer's temperature from the site's median
// elevation and measured temperature, indexed by ((day_of_year-1) mod
// 365). It is a synthesized sinusoid between thetaShallowest and
// thetaSteepest, not a tabulated reference profile: temperature falls
// with elevation (theta negative) and the lapse is steepest in
// mid-summer and shallowest in mid-winter, varying smoothly rather than
// as a monthly step function.
var thetaTable = buildThetaTable()

// thetaSteepest and thetaShallowest bound the seasonal gradient
// coefficient, in °C per 100m of elevation difference from the median;
// both are negative since temperature drops with elevation.
const (
	thetaSteepest   = -0.65
	thetaShallowest = -0.35
	// thetaPeakDay is the day of year (1-indexed) of the steepest lapse.
	thetaPeakDay = 201 // ~July 20th
)

func buildThetaTable() [daysInTable]float64 {
	var table [daysInTable]float64
	mid := (thetaShallowest + thetaSteepest) / 2
	amp := (thetaShallowest - thetaSteepest) / 2
	for d := 0; d < daysInTable; d++ {
		phase := 2 * math.Pi * float64(d-(thetaPeakDay-1)) / float64(daysInTable)
		table[d] = mid - amp*math.Cos(phase)
	}
	return table
}

// gradientCoefficient returns the seasonal temperature-gradient
// coefficient for the given day of year (1..366). Day 366 (leap years)
// wraps around to day 1's entry, following the spec's ((day_of_year-1)
// mod 365) indexing.
func gradientCoefficient(dayOfYear int) float64 {
	idx := (dayOfYear - 1) % daysInTable
	if idx < 0 {
		idx += daysInTable
	}
	return thetaTable[idx]
}
