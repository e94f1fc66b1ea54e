// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import "math"

// M1 implements power-law (Corey-type) relative permeability curves
//
//   krα = kα0・Seffα^nα   with   Seffα = (sα - sαr) / (1 - swr - sor - sgr)
//
// clipped to [0, kα0]
type M1 struct {

	// parameters
	kw0, ko0, kg0 float64 // end-point relative permeabilities
	nw, no, ng    float64 // power-law exponents
	swr, sor, sgr float64 // residual saturations

	// derived
	span float64 // 1 - swr - sor - sgr
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms map[string]float64) (err error) {
	o.kw0, o.ko0, o.kg0 = 1, 1, 1
	o.nw, o.no, o.ng = 2, 2, 2
	for name, v := range prms {
		switch name {
		case "kw0":
			o.kw0 = v
		case "ko0":
			o.ko0 = v
		case "kg0":
			o.kg0 = v
		case "nw":
			o.nw = v
		case "no":
			o.no = v
		case "ng":
			o.ng = v
		case "swr":
			o.swr = v
		case "sor":
			o.sor = v
		case "sgr":
			o.sgr = v
		}
	}
	o.span = 1.0 - o.swr - o.sor - o.sgr
	if o.span < 1e-3 {
		o.span = 1e-3
	}
	return
}

// GetPrms gets (an example) of parameters
func (o M1) GetPrms(example bool) map[string]float64 {
	if example {
		return map[string]float64{
			"kw0": 1.0,
			"ko0": 1.0,
			"kg0": 1.0,
			"nw":  2.0,
			"no":  2.0,
			"ng":  2.0,
			"swr": 0.0,
			"sor": 0.0,
			"sgr": 0.0,
		}
	}
	return map[string]float64{
		"kw0": o.kw0,
		"ko0": o.ko0,
		"kg0": o.kg0,
		"nw":  o.nw,
		"no":  o.no,
		"ng":  o.ng,
		"swr": o.swr,
		"sor": o.sor,
		"sgr": o.sgr,
	}
}

func (o M1) seff(s, sr float64) float64 {
	se := (s - sr) / o.span
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}

// Krw returns krw
func (o M1) Krw(sw float64) float64 {
	return o.kw0 * math.Pow(o.seff(sw, o.swr), o.nw)
}

// Kro returns kro
func (o M1) Kro(so float64) float64 {
	return o.ko0 * math.Pow(o.seff(so, o.sor), o.no)
}

// Krg returns krg
func (o M1) Krg(sg float64) float64 {
	return o.kg0 * math.Pow(o.seff(sg, o.sgr), o.ng)
}

// DkrwDsw returns ∂krw/∂sw
func (o M1) DkrwDsw(sw float64) float64 {
	se := o.seff(sw, o.swr)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.kw0 * o.nw * math.Pow(se, o.nw-1.0) / o.span
}

// DkroDso returns ∂kro/∂so
func (o M1) DkroDso(so float64) float64 {
	se := o.seff(so, o.sor)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.ko0 * o.no * math.Pow(se, o.no-1.0) / o.span
}

// DkrgDsg returns ∂krg/∂sg
func (o M1) DkrgDsg(sg float64) float64 {
	se := o.seff(sg, o.sgr)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.kg0 * o.ng * math.Pow(se, o.ng-1.0) / o.span
}
