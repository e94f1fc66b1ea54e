// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package blackoil implements the cell-local core of the black-oil model:
// switching primary variables, phase-transition logic, and the
// storage/flux/source terms of the component mass-conservation equations
package blackoil

import "github.com/cpmech/gosl/chk"

// phase and component indices. components use the same ordering as their
// "host" phases: the water component lives in the water equation slot, etc.
const (
	Wat = 0 // water phase/component
	Oil = 1 // oil phase/component
	Gas = 2 // gas phase/component
	Nph = 3 // number of phases = number of components
)

// Config selects the active phases and the optional physics of a
// simulation. It is fixed at construction time; the assembly and switching
// code never consults anything else to decide what is modeled.
type Config struct {

	// active phases
	WaterActive bool // water phase (and component) is modeled
	OilActive   bool // oil phase (and component) is modeled
	GasActive   bool // hydrocarbon gas phase (and component) is modeled

	// mutual solubilities
	DissolvedGas        bool // gas may dissolve in oil (Rs)
	VaporizedOil        bool // oil may vaporize into gas (Rv)
	VaporizedWater      bool // water may vaporize into gas (Rvw)
	DissolvedGasInWater bool // gas may dissolve in water (Rsw)

	// optional physics
	SaltPrecipitation bool // brine slot switches between Cs and Sp

	// accounting
	ConserveSurfaceVolume bool // conserve surface volumes instead of mass

	// capability extensions; selected at construction time
	Extensions []Extension
}

// NewConfig returns a three-phase configuration with dissolved gas and
// vaporized oil enabled and no optional extensions
func NewConfig() (o *Config) {
	o = &Config{
		WaterActive:  true,
		OilActive:    true,
		GasActive:    true,
		DissolvedGas: true,
		VaporizedOil: true,
	}
	return
}

// EnableBrine switches salt precipitation on and installs the brine
// extension with the given precipitated-salt reference density
func (o *Config) EnableBrine(saltRho float64) {
	o.SaltPrecipitation = true
	o.Extensions = append(o.Extensions, &BrineExt{SaltRho: saltRho, saltEq: o.saltEq()})
}

// NumActivePhases returns the number of active phases
func (o *Config) NumActivePhases() (n int) {
	if o.WaterActive {
		n++
	}
	if o.OilActive {
		n++
	}
	if o.GasActive {
		n++
	}
	return
}

// PhaseActive tells whether phase i is active
func (o *Config) PhaseActive(i int) bool {
	switch i {
	case Wat:
		return o.WaterActive
	case Oil:
		return o.OilActive
	case Gas:
		return o.GasActive
	}
	chk.Panic("phase index %d is invalid", i)
	return false
}

// Comp maps a canonical component index to its active equation index,
// or -1 when the component is not modeled
func (o *Config) Comp(canonical int) int {
	idx := 0
	for i := 0; i < Nph; i++ {
		if i == canonical {
			if o.PhaseActive(i) {
				return idx
			}
			return -1
		}
		if o.PhaseActive(i) {
			idx++
		}
	}
	chk.Panic("component index %d is invalid", canonical)
	return -1
}

// NumEq returns the number of equations (= unknowns) per cell
func (o *Config) NumEq() (n int) {
	n = o.NumActivePhases()
	if o.SaltPrecipitation {
		n++
	}
	return
}

// saltEq returns the equation index of the salt component
func (o *Config) saltEq() int {
	return o.NumActivePhases()
}

// unknown slot indices within one cell. the pressure is always unknown 0;
// the water and gas switching slots follow when their phase combination
// requires them; the brine slot comes last.

// PressureIdx returns the index of the pressure unknown
func (o *Config) PressureIdx() int {
	return 0
}

// WaterIdx returns the index of the water switching unknown, or -1
func (o *Config) WaterIdx() int {
	if o.WaterActive && o.NumActivePhases() > 1 {
		return 1
	}
	return -1
}

// GasIdx returns the index of the gas switching unknown, or -1
func (o *Config) GasIdx() int {
	if !(o.GasActive && o.OilActive) {
		return -1
	}
	if o.WaterIdx() < 0 {
		return 1
	}
	return 2
}

// SaltIdx returns the index of the brine unknown, or -1
func (o *Config) SaltIdx() int {
	if !o.SaltPrecipitation {
		return -1
	}
	return o.NumEq() - 1
}
