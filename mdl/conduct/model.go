// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the relative permeability of the
// water, oil and gas phases in porous media
package conduct

import (
	"github.com/cpmech/gosl/chk"
)

// Model defines three-phase relative permeability models
type Model interface {
	Init(prms map[string]float64) error      // Init initialises this structure
	GetPrms(example bool) map[string]float64 // gets (an example) of parameters
	Krw(sw float64) float64                  // Krw returns krw
	Kro(so float64) float64                  // Kro returns kro
	Krg(sg float64) float64                  // Krg returns krg
	DkrwDsw(sw float64) float64              // DkrwDsw returns ∂krw/∂sw
	DkroDso(so float64) float64              // DkroDso returns ∂kro/∂so
	DkrgDsg(sg float64) float64              // DkrgDsg returns ∂krg/∂sg
}

// New returns a new relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
