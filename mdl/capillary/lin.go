// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Lin implements linear capillary branches
//   Pcow(sw) = peow・(1 - sw)
//   Pcgo(sg) = pego・sg
type Lin struct {

	// parameters
	peow float64 // oil-water entry pressure scale
	pego float64 // gas-oil entry pressure scale
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms map[string]float64) (err error) {
	for name, v := range prms {
		switch strings.ToLower(name) {
		case "peow":
			o.peow = v
		case "pego":
			o.pego = v
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", name)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) map[string]float64 {
	return map[string]float64{
		"peow": 1e4,
		"pego": 5e3,
	}
}

// Pcow returns po - pw
func (o Lin) Pcow(sw float64) float64 {
	if sw > 1 {
		sw = 1
	}
	if sw < 0 {
		sw = 0
	}
	return o.peow * (1.0 - sw)
}

// Pcgo returns pg - po
func (o Lin) Pcgo(sg float64) float64 {
	if sg > 1 {
		sg = 1
	}
	if sg < 0 {
		sg = 0
	}
	return o.pego * sg
}
