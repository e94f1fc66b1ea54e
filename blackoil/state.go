// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"github.com/fractalmanifold/opm-models/mdl/capillary"
	"github.com/fractalmanifold/opm-models/mdl/conduct"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
)

// State holds the intensive quantities of one cell, evaluated from the
// switching unknowns. Storage and flux computations only ever read from a
// State; they never go back to the unknowns.
type State struct {
	Pp      [3]float64 // phase pressures
	Sat     [3]float64 // phase saturations
	InvB    [3]float64 // inverse formation volume factors
	Mob     [3]float64 // phase mobilities kr/μ
	Rho     [3]float64 // phase mass densities (gravity term)
	Rs      float64    // dissolution factor: gas in oil
	Rv      float64    // vaporization factor: oil in gas
	Rsw     float64    // dissolution factor: gas in water
	Rvw     float64    // vaporization factor: water in gas
	Poro    float64    // porosity
	SaltC   float64    // salt concentration in the water phase
	SaltSat float64    // precipitated salt pore fraction
	Reg     int        // PVT region index
}

// GetCopy returns a copy of this state
func (o State) GetCopy() *State {
	s := o
	return &s
}

// Set copies another state into this one
func (o *State) Set(s *State) {
	*o = *s
}

// Evaluate computes all intensive quantities from the switching unknowns.
// hist provides the max oil saturation for the hysteretic saturated
// dissolution factor.
func (o *State) Evaluate(cfg *Config, pv *PrimaryVars, mat capillary.Model, kr conduct.Model, reg *fluid.Region, hist *History, poro float64) (err error) {

	sw, so, sg := pv.Saturations(cfg)
	o.Sat[Wat], o.Sat[Oil], o.Sat[Gas] = sw, so, sg
	o.Poro = poro
	o.Reg = pv.Reg

	// phase pressures: shift the reference pressure by the capillary jumps
	var pc [3]float64
	capillary.PhasePressures(&pc, mat, so, sg, sw)
	ref := Oil
	switch pv.MeanP {
	case Pg:
		ref = Gas
	case Pw:
		ref = Wat
	}
	for i := 0; i < Nph; i++ {
		o.Pp[i] = pv.P + (pc[i] - pc[ref])
	}

	soMax := so
	if hist != nil && hist.SoMax > soMax {
		soMax = hist.SoMax
	}

	// salt slot
	o.SaltC, o.SaltSat = 0, 0
	if cfg.SaltPrecipitation {
		if pv.MeanB == Sp {
			o.SaltC = reg.SaltSol
			o.SaltSat = pv.B
		} else {
			o.SaltC = pv.B
		}
	}

	// composition factors: the switching unknown gives the factor when the
	// companion phase is absent; otherwise the mixture is saturated
	o.Rs, o.Rv, o.Rsw, o.Rvw = 0, 0, 0, 0
	if cfg.DissolvedGas {
		if pv.MeanG == Rs {
			o.Rs = pv.G
		} else if cfg.PhaseActive(Oil) {
			o.Rs = reg.RsSat(o.Pp[Oil], so, soMax)
		}
	}
	if cfg.VaporizedOil {
		if pv.MeanG == Rv {
			o.Rv = pv.G
		} else if cfg.PhaseActive(Gas) {
			o.Rv = reg.RvSat(o.Pp[Gas], soMax)
		}
	}
	if cfg.DissolvedGasInWater {
		if pv.MeanW == Rsw {
			o.Rsw = pv.W
		} else if cfg.PhaseActive(Wat) {
			o.Rsw = reg.RswSat(o.Pp[Wat], o.SaltC)
		}
	}
	if cfg.VaporizedWater {
		if pv.MeanW == Rvw {
			o.Rvw = pv.W
		} else if cfg.PhaseActive(Gas) {
			o.Rvw = reg.RvwSat(o.Pp[Gas], o.SaltC)
		}
	}

	// inverse formation volume factors and mobilities
	if cfg.PhaseActive(Wat) {
		o.InvB[Wat] = reg.Wat.InvB(o.Pp[Wat])
		o.Mob[Wat] = kr.Krw(sw) / reg.Wat.Mu(o.Pp[Wat])
	}
	if cfg.PhaseActive(Oil) {
		o.InvB[Oil] = reg.Oil.InvB(o.Pp[Oil])
		o.Mob[Oil] = kr.Kro(so) / reg.Oil.Mu(o.Pp[Oil])
	}
	if cfg.PhaseActive(Gas) {
		o.InvB[Gas] = reg.Gas.InvB(o.Pp[Gas])
		o.Mob[Gas] = kr.Krg(sg) / reg.Gas.Mu(o.Pp[Gas])
	}

	// mass densities at reservoir conditions, including the dissolved and
	// vaporized components
	rW, rO, rG := reg.Wat.RhoRef(), reg.Oil.RhoRef(), reg.Gas.RhoRef()
	o.Rho[Wat] = (rW + rG*o.Rsw) * o.InvB[Wat]
	o.Rho[Oil] = (rO + rG*o.Rs) * o.InvB[Oil]
	o.Rho[Gas] = (rG + rO*o.Rv + rW*o.Rvw) * o.InvB[Gas]
	return
}
