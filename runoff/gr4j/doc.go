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

// Package gr4j implements the GR4J four-parameter daily lumped
// rainfall-runoff model: a production store, two unit hydrographs, and
// a routing store with nonlinear groundwater exchange.
//
// Simulate is a pure function of its inputs; the production/routing
// stores and unit-hydrograph buffers live in a computation context
// created and discarded within a single call.
package gr4j
