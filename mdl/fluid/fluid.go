// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements black-oil PVT property models: phase densities,
// formation-volume factors, viscosities and the saturated
// dissolution/vaporization factors, all keyed by PVT region
package fluid

import "math"

// Model implements the pressure-dependent properties of one phase within one
// PVT region. The correlations are linear in pressure:
//   ρref   = R0                         surface (reference) density
//   1/B(p) = (1 + Cb・(p - P0)) / B0    inverse formation-volume factor
//   μ(p)   = Mu0 + Cmu・(p - P0)        viscosity
type Model struct {

	// material data
	R0  float64 // surface reference density
	P0  float64 // pressure corresponding to B0 and Mu0
	B0  float64 // formation-volume factor at P0
	Cb  float64 // pressure coefficient of 1/B
	Mu0 float64 // viscosity at P0
	Cmu float64 // pressure coefficient of viscosity
	Gas bool    // is gas instead of liquid?
}

// Init initialises this structure
func (o *Model) Init(prms map[string]float64) {
	o.B0 = 1.0
	for name, v := range prms {
		switch name {
		case "R0":
			o.R0 = v
		case "P0":
			o.P0 = v
		case "B0":
			o.B0 = v
		case "Cb":
			o.Cb = v
		case "Mu0":
			o.Mu0 = v
		case "Cmu":
			o.Cmu = v
		case "gas":
			o.Gas = v > 0
		}
	}
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; otherwise returns current parameters
//  Note:
//   Gas variable is used to return hydrocarbon gas properties instead of water
func (o Model) GetPrms(example bool) map[string]float64 {
	if example {
		if o.Gas {
			return map[string]float64{
				"R0":  1.0,    // [kg/m³]
				"P0":  1e5,    // [Pa]
				"B0":  0.01,   // [-]
				"Cb":  1e-7,   // [1/Pa]
				"Mu0": 1.5e-5, // [Pa・s]
				"gas": 1,      // [-]
			}
		}
		return map[string]float64{
			"R0":  1000.0,  // [kg/m³]
			"P0":  1e5,     // [Pa]
			"B0":  1.0,     // [-]
			"Cb":  4.5e-10, // [1/Pa]
			"Mu0": 1e-3,    // [Pa・s]
			"gas": 0,       // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return map[string]float64{
		"R0":  o.R0,
		"P0":  o.P0,
		"B0":  o.B0,
		"Cb":  o.Cb,
		"Mu0": o.Mu0,
		"Cmu": o.Cmu,
		"gas": gas,
	}
}

// RhoRef returns the surface (reference) density
func (o Model) RhoRef() float64 {
	return o.R0
}

// InvB computes the inverse formation-volume factor 1/B at pressure p
func (o Model) InvB(p float64) float64 {
	b := 1.0 + o.Cb*(p-o.P0)
	if b < 1e-12 {
		b = 1e-12
	}
	return b / o.B0
}

// Mu computes the viscosity at pressure p
func (o Model) Mu(p float64) float64 {
	return math.Max(o.Mu0+o.Cmu*(p-o.P0), 1e-12)
}
