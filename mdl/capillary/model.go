// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package capillary implements capillary-pressure laws for three-phase
// porous media: oil-water and gas-oil branches as functions of saturation
package capillary

import (
	"github.com/cpmech/gosl/chk"
)

// Model defines three-phase capillary pressure laws
//  Pcow = po - pw  as a function of the water saturation
//  Pcgo = pg - po  as a function of the gas saturation
type Model interface {
	Init(prms map[string]float64) error      // Init initialises this structure
	GetPrms(example bool) map[string]float64 // gets (an example) of parameters
	Pcow(sw float64) float64                 // Pcow returns po - pw
	Pcgo(sg float64) float64                 // Pcgo returns pg - po
}

// PhasePressures computes the capillary-pressure offsets of the three phases
// relative to the oil phase, for the given saturation triple
//  pc[0] (water) = -Pcow(sw)
//  pc[1] (oil)   = 0
//  pc[2] (gas)   = +Pcgo(sg)
func PhasePressures(pc *[3]float64, mdl Model, so, sg, sw float64) {
	pc[0] = -mdl.Pcow(sw)
	pc[1] = 0
	pc[2] = mdl.Pcgo(sg)
}

// New returns a new capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'capillary' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
