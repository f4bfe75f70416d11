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
	"sort"

	"github.com/antoinelb/hydro/runoff/gr4j"
	"github.com/antoinelb/hydro/snow/cemaneige"
)

// Model wraps a hydrological simulator's init/simulate pair behind a
// uniform interface so the optimizer can stay generic over model
// choice. NumParams is the length of the parameter vector Simulate
// expects.
type Model struct {
	NumParams int

	init     func() ([]float64, Bounds)
	simulate func(params []float64, f Forcing, meta SiteMetadata) []float64
}

// Init returns the model's default parameter vector and bounds.
func (m *Model) Init() ([]float64, Bounds) {
	return m.init()
}

// Simulate runs the model, validating that params and the forcing
// series have the expected shape before delegating.
func (m *Model) Simulate(params []float64, f Forcing, meta SiteMetadata) ([]float64, error) {
	if len(params) != m.NumParams {
		return nil, ParamsMismatchError{Expected: m.NumParams, Got: len(params)}
	}
	if f.Len() < 0 {
		return nil, LengthMismatchError{
			Precipitation: len(f.Precipitation),
			Temperature:   len(f.Temperature),
			PET:           len(f.PET),
			DayOfYear:     len(f.DayOfYear),
		}
	}
	return m.simulate(params, f, meta), nil
}

var runoffModels = map[string]func() *Model{
	"gr4j": newGR4JModel,
}

var snowModels = map[string]func() *Model{
	"cemaneige": newCemaneigeModel,
}

// Resolve looks up the runoff model named climateModel and, if
// snowModel is non-empty, the snow model named snowModel, composing
// them per §4.4. If snowModel is empty, the runoff model is returned
// directly, consuming raw precipitation.
func Resolve(climateModel, snowModel string) (*Model, error) {
	runoffFactory, ok := runoffModels[climateModel]
	if !ok {
		return nil, UnknownModelError{Name: climateModel, Valid: modelNames(runoffModels)}
	}
	runoff := runoffFactory()

	if snowModel == "" {
		return runoff, nil
	}

	snowFactory, ok := snowModels[snowModel]
	if !ok {
		return nil, UnknownModelError{Name: snowModel, Valid: modelNames(snowModels)}
	}
	return compose(snowFactory(), runoff), nil
}

func modelNames(registry map[string]func() *Model) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newGR4JModel() *Model {
	return &Model{
		NumParams: gr4j.NumParams,
		init: func() ([]float64, Bounds) {
			defaults, bounds := gr4j.Init()
			return defaults, boundsFrom(bounds)
		},
		simulate: func(params []float64, f Forcing, _ SiteMetadata) []float64 {
			return gr4j.Simulate(params, f.Precipitation, f.PET)
		},
	}
}

func newCemaneigeModel() *Model {
	return &Model{
		NumParams: cemaneige.NumParams,
		init: func() ([]float64, Bounds) {
			defaults, bounds := cemaneige.Init()
			return defaults, boundsFrom(bounds)
		},
		simulate: func(params []float64, f Forcing, meta SiteMetadata) []float64 {
			return cemaneige.Simulate(params, f.Precipitation, f.Temperature, f.DayOfYear, meta.MedianElevation, meta.ElevationLayers)
		},
	}
}
