// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/fractalmanifold/opm-models/mdl/capillary"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
)

// History holds the per-cell bounds that damp oscillatory switching: the
// largest oil saturation ever seen and optional caps on the dissolution and
// vaporization factors. It is owned by the simulation state collaborator
// and passed into Adapt; Adapt never mutates it.
type History struct {
	SoMax float64 // max oil saturation ever seen at this cell
	RsMax float64 // cap on the dissolution factor
	RvMax float64 // cap on the vaporization factor
}

// NewHistory returns a history with unbounded factor caps
func NewHistory() *History {
	return &History{SoMax: 0, RsMax: math.MaxFloat64, RvMax: math.MaxFloat64}
}

// UpdateSoMax raises the max oil saturation. Out-of-range inputs are
// clamped before the history is updated.
func (o *History) UpdateSoMax(so float64) {
	if so < 0 {
		so = 0
	}
	if so > o.SoMax {
		o.SoMax = so
	}
}

// SetBounds sets the factor caps, clamped to [0,∞)
func (o *History) SetBounds(rsMax, rvMax float64) {
	o.RsMax = math.Max(rsMax, 0)
	o.RvMax = math.Max(rvMax, 0)
}

// Adapt adapts the interpretation of the switching unknowns so they stay
// physically meaningful: it tests the phase appearance/disappearance
// conditions and reassigns both the meaning tags and the stored values.
// Whenever a switch moves the pressure reference to another phase, the
// pressure value is corrected by the capillary-pressure jump so the implied
// physical pressure stays continuous.
//
// eps > 0 makes the switching conditions stricter, which damps oscillation
// of the meanings between iterations.
//
// At most one water transition and one gas transition fire per call. Cells
// that are (almost) completely water filled are handled first and
// unconditionally: the water saturation is forced to one and the gas slot
// back to saturation meaning, before any other transition is examined.
// This priority order is kept for compatibility with the historical
// behavior even though it can shadow a dissolved-gas-in-water switch.
//
// Returns true iff the interpretation of one of the unknowns was changed.
func (o *PrimaryVars) Adapt(cfg *Config, mat capillary.Model, reg *fluid.Region, hist *History, eps float64) (changed bool, err error) {

	// one-phase case: no meaning switch is ever needed
	if o.MeanW == WaterDisabled && o.MeanG == GasDisabled {
		return
	}

	thresholdWaterFilled := 1.0 - eps

	// read the current saturations from the unknowns
	var sw, sg, saltC float64
	if o.MeanW == Sw {
		sw = o.W
	}
	if o.MeanG == Sg {
		sg = o.G
	}
	if o.MeanG == GasDisabled && cfg.GasActive {
		sg = 1.0 - sw // water-gas case
	}

	// brine slot: Sp (precipitated salt) ↔ Cs (salt concentration),
	// independent of the water/gas switching below
	if cfg.SaltPrecipitation {
		saltSol := reg.SaltSol
		switch o.MeanB {
		case Sp:
			saltC = saltSol
			if o.B < -eps { // precipitated salt disappears
				o.MeanB = Cs
				o.B = saltSol
			}
		case Cs:
			saltC = o.B
			if saltC > saltSol+eps { // salt concentration exceeds solubility
				o.MeanB = Sp
				o.B = 0
			}
		}
	}

	var pc [3]float64

	// special case: cells with almost only water. if dissolved gas in
	// water is modeled we must not enter here, because sw >= 1 means the
	// gas phase disappears and Rsw becomes the right meaning instead.
	if sw >= thresholdWaterFilled && !cfg.DissolvedGasInWater {
		if o.MeanW == Sw {
			o.W = 1.0
		}
		if cfg.GasIdx() >= 0 {
			o.G = 0.0
		}
		changed = o.MeanG != Sg && o.MeanG != GasDisabled
		if changed {
			o.MeanG = Sg
		}
		return
	}

	// water slot transitions (first match wins)
	switch o.MeanW {
	case Sw:
		// water phase disappears: Sw -> Rvw
		if sw < -eps && sg > eps && cfg.VaporizedWater {
			p := o.P
			if o.MeanP == Po {
				capillary.PhasePressures(&pc, mat, 1.0-sg, sg, 0)
				p += pc[Gas] - pc[Oil]
			}
			o.MeanW = Rvw
			o.W = reg.RvwSat(p, saltC)
			changed = true
			break
		}
		// gas phase disappears: Sw -> Rsw and Pg -> Pw
		if sg < -eps && sw > eps && cfg.DissolvedGasInWater {
			pg := o.P
			capillary.PhasePressures(&pc, mat, 1.0-sw, 0, sw)
			pw := pg + (pc[Wat] - pc[Gas])
			o.MeanW = Rsw
			o.W = reg.RswSat(pw, saltC)
			o.MeanP = Pw
			o.P = pw
			changed = true
		}
	case Rvw:
		// water phase appears: Rvw -> Sw
		rvw := o.W
		p := o.P
		if o.MeanP == Po {
			capillary.PhasePressures(&pc, mat, 1.0-sg, sg, 0)
			p += pc[Gas] - pc[Oil]
		}
		if rvw > reg.RvwSat(p, saltC)*(1.0+eps) {
			o.MeanW = Sw
			o.W = 0.0
			changed = true
		}
	case Rsw:
		// gas phase appears as soon as the water holds more gas than
		// saturated water can: Rsw -> Sw and Pw -> Pg
		pw := o.P
		if o.W > reg.RswSat(pw, saltC) {
			o.MeanW = Sw
			o.W = 1.0
			o.MeanP = Pg
			capillary.PhasePressures(&pc, mat, 0, 0, 1)
			o.P = pw + (pc[Gas] - pc[Wat])
			changed = true
		}
	case WaterDisabled:
	default:
		return changed, chk.Err("no valid meaning for the water unknown: %v", o.MeanW)
	}

	// gas slot transitions (first match wins)
	switch o.MeanG {
	case Sg:
		// gas phase disappears: Sg -> Rs
		s := 1.0 - sw
		if sg < -eps && s > 0 && cfg.DissolvedGas {
			po := o.P
			soMax := math.Max(s, hist.SoMax)
			o.MeanG = Rs
			o.G = math.Min(hist.RsMax, reg.RsSat(po, s, soMax))
			changed = true
			break
		}
		// oil phase disappears: Sg -> Rv and Po -> Pg
		so := 1.0 - sw - sg
		if so < -eps && sg > 0 && cfg.VaporizedOil {
			po := o.P
			capillary.PhasePressures(&pc, mat, 0, sg, sw)
			pg := po + (pc[Gas] - pc[Oil])
			o.MeanP = Pg
			o.P = pg
			o.MeanG = Rv
			o.G = math.Min(hist.RvMax, reg.RvSat(pg, hist.SoMax))
			changed = true
		}
	case Rs:
		// gas phase appears as soon as the oil holds more gas than
		// saturated oil can: Rs -> Sg
		po := o.P
		so := 1.0 - sw
		soMax := math.Max(so, hist.SoMax)
		rsSat := reg.RsSat(po, so, soMax)
		if o.G > math.Min(hist.RsMax, rsSat*(1.0+eps)) {
			o.MeanG = Sg
			o.G = 0.0
			changed = true
		}
	case Rv:
		// oil phase appears as soon as the gas holds more oil than
		// saturated gas can: Rv -> Sg and Pg -> Po
		pg := o.P
		rvSat := reg.RvSat(pg, hist.SoMax)
		if o.G > math.Min(hist.RvMax, rvSat*(1.0+eps)) {
			sg2 := 1.0 - sw
			capillary.PhasePressures(&pc, mat, 0, sg2, sw)
			o.MeanG = Sg
			o.G = sg2
			o.MeanP = Po
			o.P = pg + (pc[Oil] - pc[Gas])
			changed = true
		}
	case GasDisabled:
	default:
		return changed, chk.Err("no valid meaning for the gas unknown: %v", o.MeanG)
	}
	return
}
