// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
)

// BCKind selects how a boundary face contributes to the residual
type BCKind int

const (
	RateBC      BCKind = iota // prescribed component rates through the face
	FreeBC                    // free flow against an exterior pressure
	DirichletBC               // fully prescribed exterior state
)

// FaceFlux holds the per-phase intermediate results of one face: the
// potential difference, the upstream side, and the volumetric Darcy rate.
// Rates are positive when the phase leaves the interior cell.
type FaceFlux struct {
	PotDiff [3]float64 // phase potential difference (interior minus exterior)
	UpIsIn  [3]bool    // interior cell is the upstream side
	Darcy   [3]float64 // volumetric phase rate out of the interior cell
}

// blendDensity averages the phase densities of the two sides, weighting
// each side by how much of the phase it actually holds. A side without the
// phase contributes nothing; when neither side holds it, both weigh the
// same so the result stays well defined.
func blendDensity(ph int, in, ex *State) float64 {
	fI := math.Max(0, math.Min(in.Sat[ph]/1e-5, 0.5))
	fE := math.Max(0, math.Min(ex.Sat[ph]/1e-5, 0.5))
	if fI+fE == 0 {
		fI, fE = 0.5, 0.5
	}
	return (fI*in.Rho[ph] + fE*ex.Rho[ph]) / (fI + fE)
}

// ComputeFlux computes the rate of each component through one interior
// face, positive out of the interior cell. Per phase it forms the
// gravity-corrected potential difference, applies the threshold pressure,
// upwinds the mobility and composition, and accumulates the component
// rates carried by the phase. Faces with zero potential difference on a
// phase contribute nothing for that phase.
//
// trans is the face transmissibility, grav the gravity acceleration, and
// depthIn/depthEx the cell depths (increasing downwards). thPres is the
// threshold pressure the potential difference must overcome before the
// phase flows.
func ComputeFlux(cfg *Config, in, ex *State, reg *fluid.Region, trans, grav, depthIn, depthEx, thPres float64, ff *FaceFlux, flux []float64) (err error) {
	if len(flux) != cfg.NumEq() {
		return chk.Err("flux slice has length %d; need %d", len(flux), cfg.NumEq())
	}
	for i := range flux {
		flux[i] = 0
	}

	for ph := 0; ph < Nph; ph++ {
		ff.PotDiff[ph], ff.Darcy[ph], ff.UpIsIn[ph] = 0, 0, true
		if !cfg.PhaseActive(ph) {
			continue
		}

		// potential difference with hydrostatic correction
		rho := blendDensity(ph, in, ex)
		dpsi := (in.Pp[ph] - ex.Pp[ph]) - rho*grav*(depthIn-depthEx)

		// barrier: the potential difference must exceed the threshold
		// pressure before any flow happens
		if math.Abs(dpsi) > thPres {
			if dpsi > 0 {
				dpsi -= thPres
			} else {
				dpsi += thPres
			}
		} else {
			dpsi = 0
		}
		ff.PotDiff[ph] = dpsi
		if dpsi == 0 {
			continue
		}

		up := ex
		if dpsi > 0 {
			up = in
		}
		ff.UpIsIn[ph] = dpsi > 0
		ff.Darcy[ph] = trans * up.Mob[ph] * dpsi

		evalPhaseFlux(cfg, ph, up, ff.Darcy[ph], flux)
	}

	scaleToMass(cfg, reg, flux)

	for _, ext := range cfg.Extensions {
		if err = ext.AddFlux(cfg, in, ex, ff, flux); err != nil {
			return
		}
	}
	return
}

// evalPhaseFlux adds the component rates carried by one phase, using the
// upstream inverse formation volume factor and composition
func evalPhaseFlux(cfg *Config, ph int, up *State, darcy float64, flux []float64) {
	surf := up.InvB[ph] * darcy
	flux[cfg.Comp(ph)] += surf
	switch ph {
	case Oil:
		if cfg.DissolvedGas {
			flux[cfg.Comp(Gas)] += up.Rs * surf
		}
	case Gas:
		if cfg.VaporizedOil {
			flux[cfg.Comp(Oil)] += up.Rv * surf
		}
		if cfg.VaporizedWater {
			flux[cfg.Comp(Wat)] += up.Rvw * surf
		}
	case Wat:
		if cfg.DissolvedGasInWater {
			flux[cfg.Comp(Gas)] += up.Rsw * surf
		}
	}
}

// ComputeBoundaryFlux computes the component rates through a boundary
// face, positive out of the interior cell. Rate boundaries inject the
// prescribed rates directly (negative rates inject into the cell). Free
// and Dirichlet boundaries behave like an interior face against the given
// exterior state: flow direction and upstream side follow from the phase
// potentials, so a free boundary switches between in- and outflow by
// itself.
func ComputeBoundaryFlux(cfg *Config, kind BCKind, in, bnd *State, rates []float64, reg *fluid.Region, trans, grav, depthIn, depthB float64, flux []float64) (err error) {
	if kind == RateBC {
		if len(rates) != cfg.NumEq() {
			return chk.Err("boundary rates slice has length %d; need %d", len(rates), cfg.NumEq())
		}
		copy(flux, rates)
		return
	}
	if bnd == nil {
		return chk.Err("free/dirichlet boundary needs an exterior state")
	}
	var ff FaceFlux
	return ComputeFlux(cfg, in, bnd, reg, trans, grav, depthIn, depthB, 0, &ff, flux)
}
