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

import (
	"math"
	"testing"
)

func TestSimulateTrivialIsFiniteNonNegative(t *testing.T) {
	params := []float64{320, -0.1, 69, 1.0}
	precip := make([]float64, 10)
	pet := make([]float64, 10)

	got := Simulate(params, precip, pet)
	if len(got) != len(precip) {
		t.Fatalf("len(discharge) = %d, want %d", len(got), len(precip))
	}
	for i, q := range got {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			t.Errorf("day %d: discharge = %v, want finite", i, q)
		}
		if q < 0 {
			t.Errorf("day %d: discharge = %v, want >= 0", i, q)
		}
	}
}

func TestInitBoundsMidpoints(t *testing.T) {
	defaults, bounds := Init()
	if len(defaults) != NumParams || len(bounds) != NumParams {
		t.Fatalf("Init returned %d defaults and %d bounds, want %d", len(defaults), len(bounds), NumParams)
	}
	for i, b := range bounds {
		want := (b[0] + b[1]) / 2
		if math.Abs(defaults[i]-want) > 1e-9 {
			t.Errorf("default %d = %v, want midpoint %v", i, defaults[i], want)
		}
	}
}

func TestUnitHydrographLengths(t *testing.T) {
	u1, u2 := unitHydrographs(3.2)
	if len(u1) != 4 { // ceil(3.2)
		t.Errorf("len(u1) = %d, want 4", len(u1))
	}
	if len(u2) != 7 { // ceil(6.4)
		t.Errorf("len(u2) = %d, want 7", len(u2))
	}

	sum1 := 0.0
	for _, v := range u1 {
		sum1 += v
	}
	if math.Abs(sum1-1) > 1e-9 {
		t.Errorf("sum(u1) = %v, want 1", sum1)
	}
}
