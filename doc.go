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

// Package hydro calibrates a composable rainfall-runoff simulator
// against observed discharge using the Shuffled Complex Evolution
// (SCE-UA) global optimizer.
//
// A caller builds an Optimizer with Construct, seeds it with Init, and
// repeatedly calls Step until the returned Result reports Done, at
// which point BestParams, BestSimulation and BestObjectives hold the
// calibration result. Forcing series, site metadata and observations
// are supplied fresh to every Init/Step call; the optimizer itself owns
// only its population, objective table, RNG and convergence history.
package hydro
