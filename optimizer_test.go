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
	"testing"

	"github.com/antoinelb/hydro/metrics"
)

func syntheticForcing(n int) Forcing {
	precip := make([]float64, n)
	pet := make([]float64, n)
	temp := make([]float64, n)
	day := make([]int, n)
	for i := range precip {
		precip[i] = 3.0 + 2.0*math.Sin(float64(i)/17.0)
		if precip[i] < 0 {
			precip[i] = 0
		}
		pet[i] = 1.5
		temp[i] = 10.0
		day[i] = i%365 + 1
	}
	return Forcing{Precipitation: precip, PET: pet, Temperature: temp, DayOfYear: day}
}

func baseConfig() Config {
	return Config{
		ClimateModel: "gr4j",
		Objective:    "kge",
		NComplexes:   2,
		Seed:         42,
	}
}

func TestOptimizerDeterminism(t *testing.T) {
	forcing := syntheticForcing(400)
	model, err := Resolve("gr4j", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	trueParams := []float64{350, -0.5, 180, 2.5}
	obs, err := model.Simulate(trueParams, forcing, SiteMetadata{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	run := func() Result {
		opt, err := Construct(baseConfig())
		if err != nil {
			t.Fatalf("Construct: %v", err)
		}
		if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
			t.Fatalf("Init: %v", err)
		}
		var res Result
		for i := 0; i < 20; i++ {
			res, err = opt.Step(forcing, SiteMetadata{}, obs)
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if res.Done {
				break
			}
		}
		return res
	}

	a := run()
	b := run()

	if len(a.BestParams) != len(b.BestParams) {
		t.Fatalf("BestParams length differs: %d vs %d", len(a.BestParams), len(b.BestParams))
	}
	for i := range a.BestParams {
		if a.BestParams[i] != b.BestParams[i] {
			t.Errorf("BestParams[%d] differs: %v vs %v", i, a.BestParams[i], b.BestParams[i])
		}
	}
	if a.BestObjectives != b.BestObjectives {
		t.Errorf("BestObjectives differ: %v vs %v", a.BestObjectives, b.BestObjectives)
	}
}

func TestOptimizerMonotonicBest(t *testing.T) {
	forcing := syntheticForcing(300)
	model, _ := Resolve("gr4j", "")
	obs, _ := model.Simulate([]float64{400, 0.3, 150, 3.0}, forcing, SiteMetadata{})

	cfg := baseConfig()
	cfg.Objective = "rmse"
	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
		t.Fatalf("Init: %v", err)
	}

	prevRMSE := math.Inf(1)
	for i := 0; i < 15; i++ {
		res, err := opt.Step(forcing, SiteMetadata{}, obs)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		rmse := res.BestObjectives[objectiveRMSE]
		if rmse > prevRMSE {
			t.Fatalf("step %d: best RMSE increased from %v to %v", i, prevRMSE, rmse)
		}
		prevRMSE = rmse
		if res.Done {
			break
		}
	}
}

func TestOptimizerIdempotentAfterDone(t *testing.T) {
	forcing := syntheticForcing(100)
	model, _ := Resolve("gr4j", "")
	obs, _ := model.Simulate([]float64{400, 0.3, 150, 3.0}, forcing, SiteMetadata{})

	cfg := baseConfig()
	cfg.GeometricRangeThreshold = 1e9 // scenario: always triggers

	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
		t.Fatalf("Init: %v", err)
	}

	first, err := opt.Step(forcing, SiteMetadata{}, obs)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !first.Done {
		t.Fatal("expected done after first step with geometric_range_threshold=1e9")
	}
	callsAfterFirst := opt.nCalls

	second, err := opt.Step(forcing, SiteMetadata{}, obs)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !second.Done {
		t.Fatal("expected done to remain true")
	}
	if opt.nCalls != callsAfterFirst {
		t.Errorf("n_calls advanced after done: %d -> %d", callsAfterFirst, opt.nCalls)
	}
	for i := range first.BestParams {
		if first.BestParams[i] != second.BestParams[i] {
			t.Errorf("BestParams[%d] changed after done", i)
		}
	}
}

func TestOptimizerPopulationShapeInvariants(t *testing.T) {
	forcing := syntheticForcing(150)
	model, _ := Resolve("gr4j", "")
	obs, _ := model.Simulate([]float64{400, 0.3, 150, 3.0}, forcing, SiteMetadata{})

	cfg := baseConfig()
	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
		t.Fatalf("Init: %v", err)
	}

	wantN := cfg.NComplexes * opt.nPerComplex
	if len(opt.population.params) != wantN {
		t.Fatalf("population size = %d, want %d", len(opt.population.params), wantN)
	}
	for _, row := range opt.population.params {
		for j, v := range row {
			if v < opt.bounds.Lower(j) || v > opt.bounds.Upper(j) {
				t.Errorf("param %d = %v out of bounds [%v, %v]", j, v, opt.bounds.Lower(j), opt.bounds.Upper(j))
			}
		}
	}
}

func TestOptimizerMetricRoundTrip(t *testing.T) {
	forcing := syntheticForcing(200)
	model, _ := Resolve("gr4j", "")
	obs, _ := model.Simulate([]float64{400, 0.3, 150, 3.0}, forcing, SiteMetadata{})

	cfg := baseConfig()
	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
		t.Fatalf("Init: %v", err)
	}
	res, err := opt.Step(forcing, SiteMetadata{}, obs)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}

	replayed, err := model.Simulate(res.BestParams, forcing, SiteMetadata{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(replayed) != len(res.BestSimulation) {
		t.Fatalf("replayed length = %d, want %d", len(replayed), len(res.BestSimulation))
	}
	for i := range replayed {
		if replayed[i] != res.BestSimulation[i] {
			t.Fatalf("replayed[%d] = %v, want %v", i, replayed[i], res.BestSimulation[i])
		}
	}

	rmse, _ := metrics.RMSE(obs, res.BestSimulation)
	nse, _ := metrics.NSE(obs, res.BestSimulation)
	kge, _ := metrics.KGE(obs, res.BestSimulation)
	want := [3]float64{rmse, nse, kge}
	if res.BestObjectives != want {
		t.Errorf("BestObjectives = %v, want %v", res.BestObjectives, want)
	}
}

func TestOptimizerKGEConverges(t *testing.T) {
	forcing := syntheticForcing(500)
	model, _ := Resolve("gr4j", "")
	trueParams := []float64{350, -0.2, 180, 2.8}
	obs, err := model.Simulate(trueParams, forcing, SiteMetadata{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	cfg := baseConfig()
	cfg.MaxEvaluations = 5000
	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if err := opt.Init(forcing, SiteMetadata{}, obs); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var res Result
	for !res.Done {
		res, err = opt.Step(forcing, SiteMetadata{}, obs)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if diff := math.Abs(res.BestObjectives[objectiveKGE] - 1); diff > 1e-3 {
		t.Errorf("|best KGE - 1| = %v, want < 1e-3 (best KGE = %v)", diff, res.BestObjectives[objectiveKGE])
	}
}

func TestOptimizerUnknownObjective(t *testing.T) {
	cfg := baseConfig()
	cfg.Objective = "bogus"
	if _, err := Construct(cfg); err == nil {
		t.Fatal("expected UnknownObjectiveError, got nil")
	} else if _, ok := err.(UnknownObjectiveError); !ok {
		t.Fatalf("expected UnknownObjectiveError, got %T", err)
	}
}

func TestOptimizerObservationsMismatch(t *testing.T) {
	cfg := baseConfig()
	opt, err := Construct(cfg)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	forcing := syntheticForcing(50)
	if err := opt.Init(forcing, SiteMetadata{}, make([]float64, 40)); err == nil {
		t.Fatal("expected ObservationsMismatchError, got nil")
	} else if _, ok := err.(ObservationsMismatchError); !ok {
		t.Fatalf("expected ObservationsMismatchError, got %T", err)
	}
}
