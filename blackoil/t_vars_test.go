// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vars01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars01. naive assignment of meanings")

	cfg := NewConfig()
	pp := [3]float64{9.9e6, 1e7, 1.01e7}
	var pv PrimaryVars

	// all three phases present
	err := pv.AssignNaive(cfg, 0.2, 0.3, pp, 20, 0.1, 0, 0, 0, 0)
	if err != nil {
		tst.Errorf("AssignNaive failed: %v\n", err)
		return
	}
	if pv.MeanP != Po || pv.MeanW != Sw || pv.MeanG != Sg || pv.MeanB != BrineDisabled {
		tst.Errorf("wrong meanings: %v %v %v %v\n", pv.MeanP, pv.MeanW, pv.MeanG, pv.MeanB)
		return
	}
	chk.Float64(tst, "P", 1e-15, pv.P, 1e7)
	chk.Float64(tst, "W", 1e-15, pv.W, 0.2)
	chk.Float64(tst, "G", 1e-15, pv.G, 0.3)
	sw, so, sg := pv.Saturations(cfg)
	chk.Float64(tst, "sw", 1e-15, sw, 0.2)
	chk.Float64(tst, "so", 1e-15, so, 0.5)
	chk.Float64(tst, "sg", 1e-15, sg, 0.3)

	// no free gas: the gas slot carries the dissolution factor
	err = pv.AssignNaive(cfg, 0.3, 0, pp, 20, 0.1, 0, 0, 0, 0)
	if err != nil {
		tst.Errorf("AssignNaive failed: %v\n", err)
		return
	}
	if pv.MeanP != Po || pv.MeanW != Sw || pv.MeanG != Rs {
		tst.Errorf("wrong meanings: %v %v %v\n", pv.MeanP, pv.MeanW, pv.MeanG)
		return
	}
	chk.Float64(tst, "G=rs", 1e-15, pv.G, 20.0)
	_, so, sg = pv.Saturations(cfg)
	chk.Float64(tst, "sg", 1e-15, sg, 0.0)
	chk.Float64(tst, "so", 1e-15, so, 0.7)

	// no oil: gas pressure and vaporized oil fraction
	err = pv.AssignNaive(cfg, 0.2, 0.8, pp, 20, 0.1, 0, 0, 0, 0)
	if err != nil {
		tst.Errorf("AssignNaive failed: %v\n", err)
		return
	}
	if pv.MeanP != Pg || pv.MeanG != Rv {
		tst.Errorf("wrong meanings: %v %v\n", pv.MeanP, pv.MeanG)
		return
	}
	chk.Float64(tst, "P=pg", 1e-15, pv.P, 1.01e7)
	chk.Float64(tst, "G=rv", 1e-15, pv.G, 0.1)
}

func Test_vars02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars02. unknown access by slot index")

	cfg := NewConfig()
	var pv PrimaryVars
	err := pv.AssignNaive(cfg, 0.2, 0.3, [3]float64{1e7, 1e7, 1e7}, 0, 0, 0, 0, 0, 0)
	if err != nil {
		tst.Errorf("AssignNaive failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Get(P)", 1e-15, pv.Get(cfg, cfg.PressureIdx()), 1e7)
	chk.Float64(tst, "Get(W)", 1e-15, pv.Get(cfg, cfg.WaterIdx()), 0.2)
	chk.Float64(tst, "Get(G)", 1e-15, pv.Get(cfg, cfg.GasIdx()), 0.3)

	pv.Add(cfg, cfg.PressureIdx(), -1e6)
	pv.Add(cfg, cfg.GasIdx(), 0.05)
	chk.Float64(tst, "P after Add", 1e-15, pv.P, 9e6)
	chk.Float64(tst, "G after Add", 1e-15, pv.G, 0.35)

	cp := pv.GetCopy()
	cp.P = 0
	chk.Float64(tst, "copy is independent", 1e-15, pv.P, 9e6)
}

func Test_vars03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars03. chop and normalize saturations")

	cfg := NewConfig()
	pv := PrimaryVars{MeanP: Po, MeanW: Sw, MeanG: Sg, P: 1e7, W: -0.1, G: 0.5}

	changed := pv.ChopAndNormalizeSaturations(cfg)
	if !changed {
		tst.Errorf("saturations should have been changed\n")
		return
	}
	chk.Float64(tst, "W chopped", 1e-15, pv.W, 0.0)
	chk.Float64(tst, "G normalized", 1e-14, pv.G, 0.5/1.1)
	sw, so, sg := pv.Saturations(cfg)
	chk.Float64(tst, "closure", 1e-14, sw+so+sg, 1.0)

	// already consistent saturations stay put
	pv = PrimaryVars{MeanP: Po, MeanW: Sw, MeanG: Sg, P: 1e7, W: 0.3, G: 0.2}
	changed = pv.ChopAndNormalizeSaturations(cfg)
	if changed {
		tst.Errorf("saturations should not have been changed\n")
		return
	}
	chk.Float64(tst, "W unchanged", 1e-15, pv.W, 0.3)
	chk.Float64(tst, "G unchanged", 1e-15, pv.G, 0.2)
}
