// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// BrooksCorey implements Brooks and Corey's capillary branches
//   Pcow(sw) = pcaeow・Seff^(-1/λ)   with  Seff = (sw - swr)/(1 - swr)
//   Pcgo(sg) = pcaego・sg            linearized gas-oil branch
type BrooksCorey struct {

	// parameters
	λ      float64 // slope coefficient
	pcaeow float64 // oil-water air-entry pressure
	pcaego float64 // gas-oil entry pressure scale
	swr    float64 // residual water saturation
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms map[string]float64) (err error) {
	o.λ = 2.0
	for name, v := range prms {
		switch strings.ToLower(name) {
		case "lam":
			o.λ = v
		case "pcaeow":
			o.pcaeow = v
		case "pcaego":
			o.pcaego = v
		case "swr":
			o.swr = v
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", name)
		}
	}
	if o.λ < 1e-13 {
		return chk.Err("bc: λ = %g is invalid", o.λ)
	}
	if o.swr < 0 || o.swr > 0.999 {
		return chk.Err("bc: swr = %g is invalid", o.swr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) map[string]float64 {
	return map[string]float64{
		"lam":    2.0,
		"pcaeow": 1e4,
		"pcaego": 5e3,
		"swr":    0.05,
	}
}

// Pcow returns po - pw
func (o BrooksCorey) Pcow(sw float64) float64 {
	se := (sw - o.swr) / (1.0 - o.swr)
	if se < 1e-3 {
		se = 1e-3
	}
	if se > 1 {
		se = 1
	}
	return o.pcaeow * math.Pow(se, -1.0/o.λ)
}

// Pcgo returns pg - po
func (o BrooksCorey) Pcgo(sg float64) float64 {
	if sg < 0 {
		sg = 0
	}
	if sg > 1 {
		sg = 1
	}
	return o.pcaego * sg
}
