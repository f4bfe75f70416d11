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
	"fmt"
	"strings"
)

// UnknownModelError is returned when a climate or snow model name isn't
// recognized by the registry.
type UnknownModelError struct {
	Name  string
	Valid []string
}

func (e UnknownModelError) Error() string {
	return fmt.Sprintf("hydro: unknown model %q; valid options: %s", e.Name, strings.Join(e.Valid, ", "))
}

// UnknownObjectiveError is returned when an objective name isn't one of
// rmse, nse or kge.
type UnknownObjectiveError struct {
	Name string
}

func (e UnknownObjectiveError) Error() string {
	return fmt.Sprintf("hydro: unknown objective %q; valid options: rmse, nse, kge", e.Name)
}

// LengthMismatchError is returned when the forcing series passed to
// Init/Step don't all share the same length.
type LengthMismatchError struct {
	Precipitation int
	Temperature   int
	PET           int
	DayOfYear     int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("hydro: precipitation, temperature, pet and day_of_year must have the same length (got %d, %d, %d and %d)",
		e.Precipitation, e.Temperature, e.PET, e.DayOfYear)
}

// ParamsMismatchError is returned when a parameter vector's length
// doesn't match the resolved model's expected parameter count.
type ParamsMismatchError struct {
	Expected int
	Got      int
}

func (e ParamsMismatchError) Error() string {
	return fmt.Sprintf("hydro: expected %d params, got %d", e.Expected, e.Got)
}

// ObservationsMismatchError is returned when the observed discharge
// series doesn't share the forcing series' length.
type ObservationsMismatchError struct {
	Forcing      int
	Observations int
}

func (e ObservationsMismatchError) Error() string {
	return fmt.Sprintf("hydro: observations must have the same length as the forcing series (got %d and %d)",
		e.Forcing, e.Observations)
}
