// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cfg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cfg01. unknown layout across phase configurations")

	// three phases
	cfg := NewConfig()
	chk.IntAssert(cfg.NumActivePhases(), 3)
	chk.IntAssert(cfg.NumEq(), 3)
	chk.IntAssert(cfg.PressureIdx(), 0)
	chk.IntAssert(cfg.WaterIdx(), 1)
	chk.IntAssert(cfg.GasIdx(), 2)
	chk.IntAssert(cfg.SaltIdx(), -1)
	chk.IntAssert(cfg.Comp(Wat), 0)
	chk.IntAssert(cfg.Comp(Oil), 1)
	chk.IntAssert(cfg.Comp(Gas), 2)

	// water-oil
	cfg = NewConfig()
	cfg.GasActive, cfg.DissolvedGas, cfg.VaporizedOil = false, false, false
	chk.IntAssert(cfg.NumEq(), 2)
	chk.IntAssert(cfg.WaterIdx(), 1)
	chk.IntAssert(cfg.GasIdx(), -1)
	chk.IntAssert(cfg.Comp(Gas), -1)

	// water-gas
	cfg = NewConfig()
	cfg.OilActive, cfg.DissolvedGas, cfg.VaporizedOil = false, false, false
	chk.IntAssert(cfg.NumEq(), 2)
	chk.IntAssert(cfg.WaterIdx(), 1)
	chk.IntAssert(cfg.GasIdx(), -1)
	chk.IntAssert(cfg.Comp(Gas), 1)

	// oil-gas
	cfg = NewConfig()
	cfg.WaterActive = false
	chk.IntAssert(cfg.NumEq(), 2)
	chk.IntAssert(cfg.WaterIdx(), -1)
	chk.IntAssert(cfg.GasIdx(), 1)
	chk.IntAssert(cfg.Comp(Oil), 0)
	chk.IntAssert(cfg.Comp(Gas), 1)

	// single phase
	cfg = NewConfig()
	cfg.OilActive, cfg.GasActive, cfg.DissolvedGas, cfg.VaporizedOil = false, false, false, false
	chk.IntAssert(cfg.NumEq(), 1)
	chk.IntAssert(cfg.WaterIdx(), -1)
	chk.IntAssert(cfg.GasIdx(), -1)
}

func Test_cfg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cfg02. brine slot")

	cfg := NewConfig()
	cfg.EnableBrine(2100)
	chk.IntAssert(cfg.NumEq(), 4)
	chk.IntAssert(cfg.SaltIdx(), 3)
	chk.IntAssert(len(cfg.Extensions), 1)
	if cfg.Extensions[0].Name() != "brine" {
		tst.Errorf("wrong extension name %q\n", cfg.Extensions[0].Name())
	}
}
