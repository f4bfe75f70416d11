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

import "fmt"

// LengthMismatchError is returned when the observed and simulated series
// passed to a metric don't share the same length.
type LengthMismatchError struct {
	Observations int
	Simulations  int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("metrics: observations and simulations must have the same length (got %d and %d)",
		e.Observations, e.Simulations)
}

func checkLengths(obs, sim []float64) error {
	if len(obs) != len(sim) {
		return LengthMismatchError{Observations: len(obs), Simulations: len(sim)}
	}
	return nil
}
