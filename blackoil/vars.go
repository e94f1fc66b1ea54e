// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PressureMeaning states which phase pressure the pressure unknown holds
type PressureMeaning int

// WaterMeaning states how the water switching unknown must be interpreted
type WaterMeaning int

// GasMeaning states how the gas switching unknown must be interpreted
type GasMeaning int

// BrineMeaning states how the brine unknown must be interpreted
type BrineMeaning int

const (
	Po PressureMeaning = iota // oil pressure
	Pg                        // gas pressure
	Pw                        // water pressure
)

const (
	Sw            WaterMeaning = iota // water saturation
	Rvw                               // vaporized water fraction in gas
	Rsw                               // dissolved gas fraction in water
	WaterDisabled                     // the unknown is not used
)

const (
	Sg          GasMeaning = iota // gas saturation
	Rs                            // dissolved gas fraction in oil
	Rv                            // vaporized oil fraction in gas
	GasDisabled                   // the unknown is not used
)

const (
	Cs            BrineMeaning = iota // salt concentration
	Sp                                // precipitated salt saturation
	BrineDisabled                     // the unknown is not used
)

func (m PressureMeaning) String() string {
	switch m {
	case Po:
		return "Po"
	case Pg:
		return "Pg"
	case Pw:
		return "Pw"
	}
	return "??"
}

func (m WaterMeaning) String() string {
	switch m {
	case Sw:
		return "Sw"
	case Rvw:
		return "Rvw"
	case Rsw:
		return "Rsw"
	case WaterDisabled:
		return "disabled"
	}
	return "??"
}

func (m GasMeaning) String() string {
	switch m {
	case Sg:
		return "Sg"
	case Rs:
		return "Rs"
	case Rv:
		return "Rv"
	case GasDisabled:
		return "disabled"
	}
	return "??"
}

func (m BrineMeaning) String() string {
	switch m {
	case Cs:
		return "Cs"
	case Sp:
		return "Sp"
	case BrineDisabled:
		return "disabled"
	}
	return "??"
}

// PrimaryVars holds the switching primary variables of one cell. The
// meaning tags state how the stored values must be interpreted; exactly one
// tag is active per slot at any time and it fully determines the physical
// meaning of the value.
type PrimaryVars struct {

	// unknowns
	P float64 // pressure slot
	W float64 // water slot
	G float64 // gas slot
	B float64 // brine slot

	// meaning tags
	MeanP PressureMeaning
	MeanW WaterMeaning
	MeanG GasMeaning
	MeanB BrineMeaning

	// immutable after creation
	Reg int // PVT region index
}

// GetCopy returns a copy of PrimaryVars
func (o PrimaryVars) GetCopy() *PrimaryVars {
	c := o
	return &c
}

// Set sets this PrimaryVars with another PrimaryVars
func (o *PrimaryVars) Set(other *PrimaryVars) {
	*o = *other
}

// Get returns the value of unknown k (cell-local ordering given by cfg)
func (o *PrimaryVars) Get(cfg *Config, k int) float64 {
	switch k {
	case cfg.PressureIdx():
		return o.P
	case cfg.WaterIdx():
		return o.W
	case cfg.GasIdx():
		return o.G
	case cfg.SaltIdx():
		return o.B
	}
	chk.Panic("unknown index %d is invalid", k)
	return 0
}

// Add increments unknown k by δ
func (o *PrimaryVars) Add(cfg *Config, k int, δ float64) {
	switch k {
	case cfg.PressureIdx():
		o.P += δ
	case cfg.WaterIdx():
		o.W += δ
	case cfg.GasIdx():
		o.G += δ
	case cfg.SaltIdx():
		o.B += δ
	default:
		chk.Panic("unknown index %d is invalid", k)
	}
}

// Saturations extracts the phase saturations implied by the current tags.
// Slots holding dissolution/vaporization fractions imply a vanished phase.
func (o *PrimaryVars) Saturations(cfg *Config) (sw, so, sg float64) {
	if o.MeanW == Sw {
		sw = o.W
	}
	switch o.MeanG {
	case Sg:
		sg = o.G
	case Rv:
		sg = 1.0 - sw // oil phase vanished
	case GasDisabled:
		if cfg.GasActive && !cfg.OilActive && o.MeanW != Rsw {
			sg = 1.0 - sw // water-gas case: gas saturation is implied
		}
	}
	if o.MeanW == Rsw {
		sw = 1.0 - sg // gas phase vanished; water fills the rest
	}
	if cfg.OilActive {
		so = 1.0 - sw - sg
	}
	return
}

// AssignNaive sets the meanings and values from a fully specified fluid
// state: phase saturations, phase pressures, dissolution factors, and salt.
// The chosen meanings depend only on which phases are present.
func (o *PrimaryVars) AssignNaive(cfg *Config, sw, sg float64, pp [3]float64, rs, rv, rsw, rvw, saltC, saltSp float64) (err error) {

	gasPresent := cfg.GasActive && sg > 0
	oilPresent := cfg.OilActive && (1.0-sw-sg) > 0
	waterPresent := cfg.WaterActive && sw > 0
	onePhase := cfg.NumActivePhases() == 1

	// pressure meaning
	switch {
	case gasPresent && cfg.VaporizedOil && !oilPresent:
		o.MeanP = Pg
		o.P = pp[Gas]
	case cfg.OilActive:
		o.MeanP = Po
		o.P = pp[Oil]
	case waterPresent && cfg.DissolvedGasInWater && !gasPresent:
		o.MeanP = Pw
		o.P = pp[Wat]
	case cfg.GasActive:
		o.MeanP = Pg
		o.P = pp[Gas]
	case cfg.WaterActive:
		o.MeanP = Pw
		o.P = pp[Wat]
	default:
		return chk.Err("no valid meaning for the pressure unknown")
	}

	// water meaning
	switch {
	case cfg.WaterIdx() < 0:
		o.MeanW = WaterDisabled
	case waterPresent && gasPresent:
		o.MeanW = Sw
		o.W = sw
	case gasPresent && cfg.VaporizedWater:
		o.MeanW = Rvw
		o.W = rvw
	case waterPresent && cfg.DissolvedGasInWater:
		o.MeanW = Rsw
		o.W = rsw
	case cfg.WaterActive && !onePhase:
		o.MeanW = Sw
		o.W = sw
	default:
		o.MeanW = WaterDisabled
	}

	// gas meaning
	switch {
	case cfg.GasIdx() < 0:
		o.MeanG = GasDisabled
	case gasPresent && oilPresent:
		o.MeanG = Sg
		o.G = sg
	case oilPresent && cfg.DissolvedGas:
		o.MeanG = Rs
		o.G = rs
	case gasPresent && cfg.VaporizedOil:
		o.MeanG = Rv
		o.G = rv
	case cfg.GasActive && cfg.OilActive:
		o.MeanG = Sg
		o.G = sg
	default:
		o.MeanG = GasDisabled
	}

	// brine meaning
	if cfg.SaltPrecipitation {
		if saltSp > 0 {
			o.MeanB = Sp
			o.B = saltSp
		} else {
			o.MeanB = Cs
			o.B = saltC
		}
	} else {
		o.MeanB = BrineDisabled
	}
	return
}

// ChopAndNormalizeSaturations clamps the saturation-meaning slots to [0,1]
// and rescales them so the active saturations sum to one. Returns true if
// the values were changed.
func (o *PrimaryVars) ChopAndNormalizeSaturations(cfg *Config) bool {
	if o.MeanW != Sw && o.MeanG != Sg {
		return false
	}
	var sw, sg float64
	if o.MeanW == Sw {
		sw = o.W
	}
	if o.MeanG == Sg {
		sg = o.G
	}
	so := 1.0 - sw - sg
	sw = math.Min(math.Max(sw, 0), 1)
	so = math.Min(math.Max(so, 0), 1)
	sg = math.Min(math.Max(sg, 0), 1)
	st := sw + so + sg
	if st < 1e-12 {
		return false
	}
	if o.MeanW == Sw {
		o.W = sw / st
	}
	if o.MeanG == Sg {
		o.G = sg / st
	}
	return st != 1
}
