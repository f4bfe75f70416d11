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

// compose chains a snow model's effective precipitation into a runoff
// model, yielding a single Model whose parameter vector lays out
// [snow_params | runoff_params].
func compose(snow, runoff *Model) *Model {
	pSnow := snow.NumParams

	return &Model{
		NumParams: snow.NumParams + runoff.NumParams,
		init: func() ([]float64, Bounds) {
			snowDefaults, snowBounds := snow.init()
			runoffDefaults, runoffBounds := runoff.init()

			defaults := make([]float64, 0, len(snowDefaults)+len(runoffDefaults))
			defaults = append(defaults, snowDefaults...)
			defaults = append(defaults, runoffDefaults...)

			return defaults, concatBounds(snowBounds, runoffBounds)
		},
		simulate: func(params []float64, f Forcing, meta SiteMetadata) []float64 {
			snowParams := params[:pSnow]
			runoffParams := params[pSnow:]

			effectivePrecip := snow.simulate(snowParams, f, meta)
			composed := f.withPrecipitation(effectivePrecip)

			return runoff.simulate(runoffParams, composed, meta)
		},
	}
}
