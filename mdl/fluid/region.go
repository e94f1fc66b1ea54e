// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Region groups the phase models and the mutual-solubility correlations of
// one PVT region. The saturated dissolution/vaporization factors are linear
// in the phase pressure:
//   RsSat(p)  = RsSlope ・p     gas dissolved in saturated oil
//   RvSat(p)  = RvSlope ・p     oil vaporized in saturated gas
//   RswSat(p) = RswSlope・p     gas dissolved in saturated water
//   RvwSat(p) = RvwSlope・p     water vaporized in saturated gas
type Region struct {

	// phase models
	Wat *Model // water properties
	Oil *Model // oil properties
	Gas *Model // hydrocarbon gas properties

	// solubility lines
	RsSlope  float64 // slope of saturated gas dissolution factor [1/Pa]
	RvSlope  float64 // slope of saturated oil vaporization factor [1/Pa]
	RswSlope float64 // slope of saturated gas-in-water dissolution factor [1/Pa]
	RvwSlope float64 // slope of saturated water vaporization factor [1/Pa]
	SaltSol  float64 // salt solubility limit [kg/m³ of water surface volume]
}

// Init initialises a region with water/oil/gas models and solubility parameters
func (o *Region) Init(watPrms, oilPrms, gasPrms, solPrms map[string]float64) (err error) {
	o.Wat = new(Model)
	o.Oil = new(Model)
	o.Gas = new(Model)
	o.Wat.Init(watPrms)
	o.Oil.Init(oilPrms)
	o.Gas.Init(gasPrms)
	if !o.Gas.Gas {
		return chk.Err("fluid region: the third phase model must have 'gas' set")
	}
	for name, v := range solPrms {
		switch name {
		case "RsSlope":
			o.RsSlope = v
		case "RvSlope":
			o.RvSlope = v
		case "RswSlope":
			o.RswSlope = v
		case "RvwSlope":
			o.RvwSlope = v
		case "SaltSol":
			o.SaltSol = v
		default:
			return chk.Err("fluid region: parameter named %q is incorrect", name)
		}
	}
	return
}

// RsSat computes the saturated gas dissolution factor of oil at pressure p.
// so and soMax are accepted for compatibility with table-driven PVT models
// that tune vaporization to the oil-saturation history; the analytic
// correlation ignores them.
func (o Region) RsSat(p, so, soMax float64) float64 {
	return math.Max(o.RsSlope*p, 0)
}

// RvSat computes the saturated oil vaporization factor of gas at pressure p
func (o Region) RvSat(p, soMax float64) float64 {
	return math.Max(o.RvSlope*p, 0)
}

// RswSat computes the saturated gas dissolution factor of water at pressure
// p and salt concentration cs
func (o Region) RswSat(p, cs float64) float64 {
	return math.Max(o.RswSlope*p, 0)
}

// RvwSat computes the saturated water vaporization factor of gas at pressure
// p and salt concentration cs
func (o Region) RvwSat(p, cs float64) float64 {
	return math.Max(o.RvwSlope*p, 0)
}

// Table holds the PVT regions of a simulation
type Table struct {
	Regions []*Region
}

// Region returns the i-th PVT region
func (o *Table) Region(i int) *Region {
	if i < 0 || i >= len(o.Regions) {
		chk.Panic("PVT region index %d is out of range [0,%d)", i, len(o.Regions))
	}
	return o.Regions[i]
}

// ExampleTable returns a single-region table with example parameters
func ExampleTable() (tab *Table, err error) {
	reg := new(Region)
	wat := new(Model)
	gas := new(Model)
	gas.Gas = true
	err = reg.Init(
		wat.GetPrms(true),
		map[string]float64{
			"R0":  800.0,  // [kg/m³]
			"P0":  1e5,    // [Pa]
			"B0":  1.1,    // [-]
			"Cb":  1e-9,   // [1/Pa]
			"Mu0": 2.0e-3, // [Pa・s]
		},
		gas.GetPrms(true),
		map[string]float64{
			"RsSlope":  2e-6,
			"RvSlope":  1e-8,
			"RswSlope": 1e-8,
			"RvwSlope": 1e-9,
			"SaltSol":  300.0,
		},
	)
	if err != nil {
		return
	}
	tab = &Table{Regions: []*Region{reg}}
	return
}
