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

package gr4j

import "math"

// uhExponent is the exponent used in the unit-hydrograph cumulative
// curves s1/s2. The sources disagree (1.25 in one variant, 2.5 in
// another); 2.5 is the canonical value in the SCE/GR4J literature and is
// what this implementation uses.
const uhExponent = 2.5

// s1 is the cumulative ordinate of the first (fast) unit hydrograph.
func s1(i, x4 float64) float64 {
	switch {
	case i <= 0:
		return 0
	case i >= x4:
		return 1
	default:
		return math.Pow(i/x4, uhExponent)
	}
}

// s2 is the cumulative ordinate of the second (slow) unit hydrograph.
func s2(i, x4 float64) float64 {
	switch {
	case i <= 0:
		return 0
	case i >= 2*x4:
		return 1
	case i < x4:
		return 0.5 * math.Pow(i/x4, uhExponent)
	default:
		return 1 - 0.5*math.Pow(2-i/x4, uhExponent)
	}
}

// unitHydrographs returns the discrete ordinates u1 (length ceil(x4))
// and u2 (length ceil(2*x4)) derived from the cumulative curves s1/s2.
func unitHydrographs(x4 float64) (u1, u2 []float64) {
	n1 := int(math.Ceil(x4))
	n2 := int(math.Ceil(2 * x4))

	u1 = make([]float64, n1)
	prev := 0.0
	for i := 1; i <= n1; i++ {
		cur := s1(float64(i), x4)
		u1[i-1] = cur - prev
		prev = cur
	}

	u2 = make([]float64, n2)
	prev = 0.0
	for i := 1; i <= n2; i++ {
		cur := s2(float64(i), x4)
		u2[i-1] = cur - prev
		prev = cur
	}

	return u1, u2
}
