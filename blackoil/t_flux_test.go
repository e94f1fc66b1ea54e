// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
)

func fluxTestStates() (a, b *State) {
	a = &State{
		Pp:   [3]float64{2e7, 2e7, 2e7},
		Sat:  [3]float64{0.2, 0.5, 0.3},
		InvB: [3]float64{1, 1, 1},
		Mob:  [3]float64{1, 2, 3},
		Rho:  [3]float64{1000, 800, 100},
		Rs:   1, Rv: 0.1,
	}
	b = &State{
		Pp:   [3]float64{1e7, 1e7, 1e7},
		Sat:  [3]float64{0.3, 0.4, 0.3},
		InvB: [3]float64{1, 1, 1},
		Mob:  [3]float64{2, 4, 6},
		Rho:  [3]float64{1000, 800, 100},
		Rs:   2, Rv: 0.2,
	}
	return
}

func Test_flux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux01. upwinding and cross terms")

	tab, err := fluid.ExampleTable()
	if err != nil {
		tst.Fatalf("ExampleTable failed: %v\n", err)
	}
	reg := tab.Region(0)

	cfg := NewConfig()
	cfg.ConserveSurfaceVolume = true

	a, b := fluxTestStates()
	trans := 1e-12
	var ff FaceFlux
	flux := make([]float64, cfg.NumEq())
	err = ComputeFlux(cfg, a, b, reg, trans, 0, 0, 0, 0, &ff, flux)
	if err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}

	// a has the higher potential for every phase, hence is upstream and
	// its mobilities and composition are the ones that count
	for ph := 0; ph < Nph; ph++ {
		if !ff.UpIsIn[ph] {
			tst.Errorf("phase %d should be upwinded to the interior\n", ph)
			return
		}
		chk.Float64(tst, "potential difference", 1e-9, ff.PotDiff[ph], 1e7)
	}
	qw := trans * 1.0 * 1e7
	qo := trans * 2.0 * 1e7
	qg := trans * 3.0 * 1e7
	chk.Float64(tst, "water flux", 1e-15, flux[cfg.Comp(Wat)], qw)
	chk.Float64(tst, "oil flux", 1e-15, flux[cfg.Comp(Oil)], qo+0.1*qg)
	chk.Float64(tst, "gas flux", 1e-15, flux[cfg.Comp(Gas)], qg+1.0*qo)
}

func Test_flux02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux02. antisymmetry of face fluxes")

	tab, err := fluid.ExampleTable()
	if err != nil {
		tst.Fatalf("ExampleTable failed: %v\n", err)
	}
	reg := tab.Region(0)
	cfg := NewConfig()

	a, b := fluxTestStates()
	var ff FaceFlux
	fab := make([]float64, cfg.NumEq())
	fba := make([]float64, cfg.NumEq())
	grav, da, db := 9.81, 1000.0, 1010.0

	if err = ComputeFlux(cfg, a, b, reg, 1e-12, grav, da, db, 0, &ff, fab); err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}
	if err = ComputeFlux(cfg, b, a, reg, 1e-12, grav, db, da, 0, &ff, fba); err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}
	for i := range fab {
		chk.Float64(tst, "antisymmetry", 1e-15, fab[i]+fba[i], 0.0)
	}
}

func Test_flux03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux03. zero potential and threshold pressure")

	tab, err := fluid.ExampleTable()
	if err != nil {
		tst.Fatalf("ExampleTable failed: %v\n", err)
	}
	reg := tab.Region(0)
	cfg := NewConfig()
	cfg.ConserveSurfaceVolume = true

	// identical states: nothing flows
	a, _ := fluxTestStates()
	c := a.GetCopy()
	var ff FaceFlux
	flux := make([]float64, cfg.NumEq())
	if err = ComputeFlux(cfg, a, c, reg, 1e-12, 0, 0, 0, 0, &ff, flux); err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}
	for i := range flux {
		chk.Float64(tst, "no driving force", 1e-15, flux[i], 0.0)
	}
	for ph := 0; ph < Nph; ph++ {
		chk.Float64(tst, "no darcy rate", 1e-15, ff.Darcy[ph], 0.0)
	}

	// threshold pressure above the driving force blocks the face
	a, b := fluxTestStates()
	if err = ComputeFlux(cfg, a, b, reg, 1e-12, 0, 0, 0, 2e7, &ff, flux); err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}
	for i := range flux {
		chk.Float64(tst, "blocked face", 1e-15, flux[i], 0.0)
	}

	// a smaller threshold only eats part of the driving force
	if err = ComputeFlux(cfg, a, b, reg, 1e-12, 0, 0, 0, 4e6, &ff, flux); err != nil {
		tst.Errorf("ComputeFlux failed: %v\n", err)
		return
	}
	chk.Float64(tst, "reduced potential", 1e-9, ff.PotDiff[Wat], 6e6)
	chk.Float64(tst, "reduced water flux", 1e-15, flux[cfg.Comp(Wat)], 1e-12*1.0*6e6)
}

func Test_flux04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux04. boundary fluxes")

	tab, err := fluid.ExampleTable()
	if err != nil {
		tst.Fatalf("ExampleTable failed: %v\n", err)
	}
	reg := tab.Region(0)
	cfg := NewConfig()
	cfg.ConserveSurfaceVolume = true

	a, b := fluxTestStates()
	flux := make([]float64, cfg.NumEq())

	// prescribed rates pass through unchanged
	rates := []float64{-1.5, 0, 0}
	err = ComputeBoundaryFlux(cfg, RateBC, a, nil, rates, reg, 0, 0, 0, 0, flux)
	if err != nil {
		tst.Errorf("ComputeBoundaryFlux failed: %v\n", err)
		return
	}
	chk.Array(tst, "rate boundary", 1e-15, flux, rates)

	// free boundary with a lower exterior pressure gives outflow
	err = ComputeBoundaryFlux(cfg, FreeBC, a, b, nil, reg, 1e-12, 0, 0, 0, flux)
	if err != nil {
		tst.Errorf("ComputeBoundaryFlux failed: %v\n", err)
		return
	}
	if flux[cfg.Comp(Wat)] <= 0 {
		tst.Errorf("expected outflow; got %g\n", flux[cfg.Comp(Wat)])
	}

	// free boundary with a higher exterior pressure gives inflow
	err = ComputeBoundaryFlux(cfg, FreeBC, b, a, nil, reg, 1e-12, 0, 0, 0, flux)
	if err != nil {
		tst.Errorf("ComputeBoundaryFlux failed: %v\n", err)
		return
	}
	if flux[cfg.Comp(Wat)] >= 0 {
		tst.Errorf("expected inflow; got %g\n", flux[cfg.Comp(Wat)])
	}

	// an exterior state is mandatory for free boundaries
	if err = ComputeBoundaryFlux(cfg, FreeBC, a, nil, nil, reg, 1e-12, 0, 0, 0, flux); err == nil {
		tst.Errorf("ComputeBoundaryFlux should have failed\n")
	}
}
