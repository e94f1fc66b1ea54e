// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_cnd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cnd01. power-law relative permeabilities")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	chk.Float64(tst, "krw(0.5)", 1e-15, mdl.Krw(0.5), 0.25)
	chk.Float64(tst, "kro(1.0)", 1e-15, mdl.Kro(1.0), 1.0)
	chk.Float64(tst, "krg(0.0)", 1e-15, mdl.Krg(0.0), 0.0)

	// out-of-range saturations are clipped
	chk.Float64(tst, "krw(1.2)", 1e-15, mdl.Krw(1.2), 1.0)
	chk.Float64(tst, "kro(-0.1)", 1e-15, mdl.Kro(-0.1), 0.0)

	_, err = New("unknown-model")
	if err == nil {
		tst.Errorf("New should have failed for an unknown model\n")
	}
}

func Test_cnd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cnd02. relative permeability derivatives")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	S := utl.LinSpace(0.2, 0.8, 4)
	for _, s := range S {
		chk.DerivScaSca(tst, "dkrw/dsw", 1e-7, mdl.DkrwDsw(s), s, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Krw(x)
		})
		chk.DerivScaSca(tst, "dkro/dso", 1e-7, mdl.DkroDso(s), s, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Kro(x)
		})
		chk.DerivScaSca(tst, "dkrg/dsg", 1e-7, mdl.DkrgDsg(s), s, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Krg(x)
		})

		// cross-check against a central-difference estimate
		h := 1e-4
		dnum := (mdl.Krw(s+h) - mdl.Krw(s-h)) / (2 * h)
		if math.Abs(dnum-mdl.DkrwDsw(s)) > 1e-6 {
			tst.Errorf("dkrw/dsw at %g: %g != %g\n", s, mdl.DkrwDsw(s), dnum)
			return
		}
	}
}
