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
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for an Optimizer.
type Config struct {
	// ClimateModel is the name of the runoff model to calibrate, e.g. "gr4j".
	ClimateModel string

	// SnowModel is the name of the snow accounting model to compose in
	// front of ClimateModel, e.g. "cemaneige". Leave empty to calibrate
	// ClimateModel directly against raw precipitation.
	SnowModel string

	// Objective names the goodness-of-fit measure driving the search:
	// one of "rmse", "nse" or "kge". rmse is minimized; nse and kge are
	// maximized.
	Objective string

	// NComplexes is the number of complexes the population is
	// partitioned into. Defaults to 2 if <= 0.
	NComplexes int

	// KStop is the window, in shuffling loops, over which the best
	// objective's percent change is measured and compared against
	// PConvergenceThreshold. Defaults to 10 if <= 0.
	KStop int

	// PConvergenceThreshold is the percent-change-in-best-objective
	// convergence threshold, checked over the last KStop loops. Defaults
	// to 0.1 if <= 0.
	PConvergenceThreshold float64

	// GeometricRangeThreshold is the normalized geometric parameter
	// range below which the population is considered collapsed and the
	// search stops regardless of KStop/PConvergenceThreshold. Defaults
	// to 0.001 if <= 0.
	GeometricRangeThreshold float64

	// MaxEvaluations caps the number of candidate evaluations made by
	// Step calls; the initial population evaluated by Init is not
	// counted. The cap is checked after each Step, so the last Step can
	// overshoot it. Defaults to 10000 if <= 0.
	MaxEvaluations int

	// Seed drives the deterministic random number generator. Two
	// Optimizers constructed with identical Config and fed identical
	// inputs produce identical results.
	Seed uint64

	// Log receives diagnostic messages at construction, Init and
	// convergence. Defaults to logrus.StandardLogger() if nil.
	Log logrus.FieldLogger
}

// objective columns in the [rmse, nse, kge] objective row.
const (
	objectiveRMSE = iota
	objectiveNSE
	objectiveKGE
)

// withDefaults returns a copy of c with zero-valued fields replaced by
// their defaults.
func (c Config) withDefaults() Config {
	if c.NComplexes <= 0 {
		c.NComplexes = 2
	}
	if c.KStop <= 0 {
		c.KStop = 10
	}
	if c.PConvergenceThreshold <= 0 {
		c.PConvergenceThreshold = 0.1
	}
	if c.GeometricRangeThreshold <= 0 {
		c.GeometricRangeThreshold = 0.001
	}
	if c.MaxEvaluations <= 0 {
		c.MaxEvaluations = 10000
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	return c
}

// resolveObjective parses c.Objective into its column index in the
// [rmse, nse, kge] objective row and whether that column is minimized.
// Objective names are matched case-insensitively.
func (c Config) resolveObjective() (index int, minimize bool, err error) {
	switch strings.ToLower(c.Objective) {
	case "rmse":
		return objectiveRMSE, true, nil
	case "nse":
		return objectiveNSE, false, nil
	case "kge":
		return objectiveKGE, false, nil
	default:
		return 0, false, UnknownObjectiveError{Name: c.Objective}
	}
}
