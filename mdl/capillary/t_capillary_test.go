// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cap01. factory and zero model")

	mdl, err := New("zero")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pcow", 1e-15, mdl.Pcow(0.3), 0)
	chk.Float64(tst, "Pcgo", 1e-15, mdl.Pcgo(0.8), 0)

	_, err = New("unknown-model")
	if err == nil {
		tst.Errorf("New should have failed for an unknown model\n")
	}
}

func Test_cap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cap02. linear branches and phase pressures")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pcow(0.3)", 1e-11, mdl.Pcow(0.3), 7000.0)
	chk.Float64(tst, "Pcgo(0.2)", 1e-11, mdl.Pcgo(0.2), 1000.0)

	// saturations are clamped to [0,1]
	chk.Float64(tst, "Pcow(-1)", 1e-11, mdl.Pcow(-1), 10000.0)
	chk.Float64(tst, "Pcgo(2)", 1e-11, mdl.Pcgo(2), 5000.0)

	var pc [3]float64
	PhasePressures(&pc, mdl, 0.5, 0.2, 0.3)
	chk.Array(tst, "pc", 1e-11, pc[:], []float64{-7000, 0, 1000})
}

func Test_cap03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cap03. brooks-corey branch")

	mdl, err := New("bc")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// oil-water branch decreases with the water saturation
	p1 := mdl.Pcow(0.3)
	p2 := mdl.Pcow(0.6)
	p3 := mdl.Pcow(0.9)
	if !(p1 > p2 && p2 > p3 && p3 > 0) {
		tst.Errorf("Pcow is not monotonically decreasing: %g %g %g\n", p1, p2, p3)
	}

	// gas-oil branch grows with the gas saturation
	if !(mdl.Pcgo(0.8) > mdl.Pcgo(0.2)) {
		tst.Errorf("Pcgo is not increasing\n")
	}
}
