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

package metrics

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestPerfectMatch(t *testing.T) {
	obs := []float64{1, 2, 3, 4}
	sim := []float64{1, 2, 3, 4}

	if rmse, err := RMSE(obs, sim); err != nil || math.Abs(rmse) > tolerance {
		t.Errorf("RMSE = %v, %v; want 0, nil", rmse, err)
	}
	if nse, err := NSE(obs, sim); err != nil || math.Abs(nse-1) > tolerance {
		t.Errorf("NSE = %v, %v; want 1, nil", nse, err)
	}
	if kge, err := KGE(obs, sim); err != nil || math.Abs(kge-1) > tolerance {
		t.Errorf("KGE = %v, %v; want 1, nil", kge, err)
	}
}

func TestShiftedMatch(t *testing.T) {
	obs := []float64{1, 2, 3, 4}
	sim := []float64{2, 3, 4, 5}

	rmse, err := RMSE(obs, sim)
	if err != nil || math.Abs(rmse-1) > tolerance {
		t.Errorf("RMSE = %v, %v; want 1, nil", rmse, err)
	}
	nse, err := NSE(obs, sim)
	if err != nil || math.Abs(nse) > tolerance {
		t.Errorf("NSE = %v, %v; want 0, nil", nse, err)
	}
	kge, err := KGE(obs, sim)
	want := 1 - math.Sqrt(0.5*0.5)
	if err != nil || math.Abs(kge-want) > tolerance {
		t.Errorf("KGE = %v, %v; want %v, nil", kge, err, want)
	}
}

func TestLengthMismatch(t *testing.T) {
	obs := []float64{1, 2, 3}
	sim := []float64{1, 2}

	for name, fn := range map[string]func([]float64, []float64) (float64, error){
		"RMSE": RMSE, "NSE": NSE, "KGE": KGE,
	} {
		if _, err := fn(obs, sim); err == nil {
			t.Errorf("%s: expected LengthMismatchError, got nil", name)
		} else if _, ok := err.(LengthMismatchError); !ok {
			t.Errorf("%s: expected LengthMismatchError, got %T", name, err)
		}
	}
}
