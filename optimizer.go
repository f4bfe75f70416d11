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
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Result is a snapshot of an Optimizer's state, returned by Step.
type Result struct {
	// Done reports whether the search has converged or exhausted
	// max_evaluations; once true it stays true.
	Done bool

	// BestParams is the parameter vector of the best population member,
	// laid out per the resolved model's composition (snow params first,
	// then runoff params, when a snow model is configured).
	BestParams []float64

	// BestSimulation is the simulated discharge series for BestParams.
	BestSimulation []float64

	// BestObjectives is the [rmse, nse, kge] triple for BestParams.
	BestObjectives [3]float64
}

// Optimizer runs the SCE-UA calibration loop against a resolved model.
// Construct, Init and Step are the only entry points; all other state is
// private.
type Optimizer struct {
	cfg      Config
	model    *Model
	bounds   Bounds
	defaults []float64
	objIdx   int
	minimize bool
	rng      *rand.Rand

	nPerComplex     int
	nSimplex        int
	nEvolutionSteps int

	population *population
	criteria   []float64

	bestParams     []float64
	bestSimulation []float64

	nCalls int
	done   bool
}

// Construct builds an Optimizer from cfg, resolving the model and
// drawing an (unused, but RNG-advancing) initial population exactly as
// Init will when it's called — matching the reference optimizer's
// constructor, which always seeds a population before the caller has
// supplied any forcing data.
func Construct(cfg Config) (*Optimizer, error) {
	cfg = cfg.withDefaults()

	objIdx, minimize, err := cfg.resolveObjective()
	if err != nil {
		return nil, err
	}

	model, err := Resolve(cfg.ClimateModel, cfg.SnowModel)
	if err != nil {
		return nil, err
	}

	defaults, bounds := model.Init()
	nParams := len(defaults)

	o := &Optimizer{
		cfg:             cfg,
		model:           model,
		bounds:          bounds,
		defaults:        defaults,
		objIdx:          objIdx,
		minimize:        minimize,
		rng:             newRNG(cfg.Seed),
		nPerComplex:     2*nParams + 1,
		nSimplex:        nParams + 1,
		nEvolutionSteps: 2*nParams + 1,
	}

	populationSize := cfg.NComplexes * o.nPerComplex
	initial := newPopulation(populationSize, defaults, bounds, o.rng)
	o.population = initial
	o.bestParams = append([]float64(nil), initial.params[0]...)

	cfg.Log.WithFields(logrus.Fields{
		"climate_model":   cfg.ClimateModel,
		"snow_model":      cfg.SnowModel,
		"objective":       cfg.Objective,
		"n_params":        nParams,
		"population_size": populationSize,
	}).Info("hydro: optimizer constructed")

	return o, nil
}

// Init evaluates a fresh initial population (random uniform in bounds,
// row 0 forced to the bounds midpoint) against forcing/observations and
// seeds the search's convergence history. Init can be called again to
// restart the search from a new random population under the same RNG
// stream.
func (o *Optimizer) Init(forcing Forcing, meta SiteMetadata, observations []float64) error {
	if err := validateSeries(forcing, observations); err != nil {
		return err
	}

	populationSize := o.cfg.NComplexes * o.nPerComplex
	pop := newPopulation(populationSize, o.defaults, o.bounds, o.rng)

	if err := pop.evaluate(o.model, forcing, meta, observations); err != nil {
		return err
	}
	sortByObjective(pop, o.objIdx, o.minimize)

	o.population = pop
	o.criteria = []float64{pop.objectives[0][o.objIdx]}
	o.bestParams = append([]float64(nil), pop.params[0]...)
	o.bestSimulation = append([]float64(nil), pop.simulations[0]...)
	o.nCalls = 0
	o.done = false

	o.cfg.Log.WithFields(logrus.Fields{
		"best_objective": o.criteria[0],
	}).Info("hydro: optimizer initialized")

	return nil
}

// Step runs one shuffling loop: partition the population into
// complexes, evolve each by competitive complex evolution, merge and
// re-sort, then check convergence. Step is idempotent once Done is
// true: subsequent calls return the same Result without doing further
// work or consuming the RNG.
func (o *Optimizer) Step(forcing Forcing, meta SiteMetadata, observations []float64) (Result, error) {
	if o.done {
		return o.result(), nil
	}
	if err := validateSeries(forcing, observations); err != nil {
		return Result{}, err
	}

	complexes := partitionIntoComplexes(o.population, o.cfg.NComplexes)

	nCalls, err := evolveComplexes(
		complexes, o.model, forcing, meta, observations, o.bounds,
		o.objIdx, o.minimize, o.nSimplex, o.nEvolutionSteps, o.nCalls, o.rng)
	if err != nil {
		return Result{}, err
	}

	merged := mergeComplexes(complexes, o.objIdx, o.minimize)
	bestObjective := merged.objectives[0][o.objIdx]
	gnrng := normalizedGeometricRange(merged, o.bounds)

	criteria := append(o.criteria, bestObjective)
	criteriaChange := criteriaPercentChange(criteria, o.cfg.KStop)

	o.population = merged
	o.criteria = criteria
	o.nCalls = nCalls
	o.bestParams = append([]float64(nil), merged.params[0]...)
	o.bestSimulation = append([]float64(nil), merged.simulations[0]...)
	o.done = nCalls > o.cfg.MaxEvaluations ||
		gnrng < o.cfg.GeometricRangeThreshold ||
		criteriaChange < o.cfg.PConvergenceThreshold

	if o.done {
		o.cfg.Log.WithFields(logrus.Fields{
			"n_calls":         nCalls,
			"gnrng":           gnrng,
			"criteria_change": criteriaChange,
			"best_objective":  bestObjective,
		}).Info("hydro: optimizer converged")
	}

	return o.result(), nil
}

func (o *Optimizer) result() Result {
	return Result{
		Done:           o.done,
		BestParams:     append([]float64(nil), o.bestParams...),
		BestSimulation: append([]float64(nil), o.bestSimulation...),
		BestObjectives: o.population.objectives[0],
	}
}

// criteriaPercentChange is the percent change of the best objective over
// the last kStop loops, relative to the mean absolute value of the last
// kStop entries. It's +Inf until at least kStop loops have run, and +Inf
// again if that mean is exactly zero (nothing to normalize against).
func criteriaPercentChange(criteria []float64, kStop int) float64 {
	if len(criteria) <= kStop {
		return math.Inf(1)
	}
	recent := criteria[len(criteria)-kStop:]
	meanAbs := 0.0
	for _, v := range recent {
		meanAbs += math.Abs(v)
	}
	meanAbs /= float64(kStop)
	if meanAbs <= 0 {
		return math.Inf(1)
	}
	first := criteria[len(criteria)-1-kStop]
	last := criteria[len(criteria)-1]
	return math.Abs(last-first) * 100 / meanAbs
}

// validateSeries checks that forcing's series agree in length and match
// observations.
func validateSeries(forcing Forcing, observations []float64) error {
	n := forcing.Len()
	if n < 0 {
		return LengthMismatchError{
			Precipitation: len(forcing.Precipitation),
			Temperature:   len(forcing.Temperature),
			PET:           len(forcing.PET),
			DayOfYear:     len(forcing.DayOfYear),
		}
	}
	if n != len(observations) {
		return ObservationsMismatchError{Forcing: n, Observations: len(observations)}
	}
	return nil
}
