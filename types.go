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

// Forcing holds the daily climate series driving a simulation. All four
// series must share the same length; Forcing is immutable for the
// duration of a calibration.
type Forcing struct {
	// Precipitation is daily precipitation, mm/day.
	Precipitation []float64

	// Temperature is daily mean temperature, °C.
	Temperature []float64

	// PET is daily potential evapotranspiration, mm/day.
	PET []float64

	// DayOfYear is the day of year, in [1, 366], for each timestep.
	DayOfYear []int
}

// Len returns the shared length of the forcing series, or -1 if they
// disagree.
func (f Forcing) Len() int {
	n := len(f.Precipitation)
	if len(f.Temperature) != n || len(f.PET) != n || len(f.DayOfYear) != n {
		return -1
	}
	return n
}

// withPrecipitation returns a copy of f with Precipitation replaced;
// Temperature, PET and DayOfYear are shared, not copied.
func (f Forcing) withPrecipitation(precip []float64) Forcing {
	f.Precipitation = precip
	return f
}

// SiteMetadata holds the catchment metadata used by elevation-aware
// models such as cemaneige.
type SiteMetadata struct {
	// Area is the catchment area, km².
	Area float64

	// MedianElevation is the site's median elevation, m.
	MedianElevation float64

	// ElevationLayers is the ordered sequence of elevation-band
	// elevations, m. Must have length >= 1.
	ElevationLayers []float64
}

// Bounds is a parallel (lower, upper) table for a parameter vector: one
// row per parameter, in the same order as the parameters themselves.
type Bounds [][2]float64

// Lower returns the lower bound of parameter i.
func (b Bounds) Lower(i int) float64 { return b[i][0] }

// Upper returns the upper bound of parameter i.
func (b Bounds) Upper(i int) float64 { return b[i][1] }

// boundsFrom converts a model's native [][2]float64 bounds into Bounds.
func boundsFrom(raw [][2]float64) Bounds {
	return Bounds(raw)
}

// concatBounds concatenates two bounds tables, first followed by
// second, preserving row order within each.
func concatBounds(first, second Bounds) Bounds {
	out := make(Bounds, 0, len(first)+len(second))
	out = append(out, first...)
	out = append(out, second...)
	return out
}
