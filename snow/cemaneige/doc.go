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

// Package cemaneige implements the CemaNeige elevation-banded snow
// accounting module. Given daily precipitation and temperature split
// across a site's elevation layers, it tracks a snowpack and thermal
// state per layer and returns the effective (melt + liquid)
// precipitation that should be routed into a rainfall-runoff model.
//
// Simulate is a pure function of its inputs: all hydrological state
// (snowpack, thermal state) lives in a computation context created and
// discarded within a single call, never retained between calls.
package cemaneige
