// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
)

// ComputeStorage computes the amount of each conserved component per unit
// pore-free volume: saturation times inverse formation volume factor times
// porosity, plus the dissolved/vaporized cross terms. The result is in
// surface-volume units, or in mass units when the configuration does not
// conserve surface volumes. Installed extensions add their own storage.
func ComputeStorage(cfg *Config, st *State, reg *fluid.Region, stor []float64) (err error) {
	if len(stor) != cfg.NumEq() {
		return chk.Err("storage slice has length %d; need %d", len(stor), cfg.NumEq())
	}
	for i := range stor {
		stor[i] = 0
	}

	for ph := 0; ph < Nph; ph++ {
		if !cfg.PhaseActive(ph) {
			continue
		}
		stor[cfg.Comp(ph)] = st.Poro * st.Sat[ph] * st.InvB[ph]
	}

	// components carried inside other phases
	if cfg.DissolvedGas {
		stor[cfg.Comp(Gas)] += st.Rs * st.Poro * st.Sat[Oil] * st.InvB[Oil]
	}
	if cfg.VaporizedOil {
		stor[cfg.Comp(Oil)] += st.Rv * st.Poro * st.Sat[Gas] * st.InvB[Gas]
	}
	if cfg.DissolvedGasInWater {
		stor[cfg.Comp(Gas)] += st.Rsw * st.Poro * st.Sat[Wat] * st.InvB[Wat]
	}
	if cfg.VaporizedWater {
		stor[cfg.Comp(Wat)] += st.Rvw * st.Poro * st.Sat[Gas] * st.InvB[Gas]
	}

	scaleToMass(cfg, reg, stor)

	for _, ext := range cfg.Extensions {
		if err = ext.AddStorage(cfg, st, stor); err != nil {
			return
		}
	}
	return
}

// scaleToMass converts surface volumes to masses by multiplying with the
// component reference densities. No-op when surface volumes are conserved
// directly.
func scaleToMass(cfg *Config, reg *fluid.Region, q []float64) {
	if cfg.ConserveSurfaceVolume {
		return
	}
	if i := cfg.Comp(Wat); i >= 0 {
		q[i] *= reg.Wat.RhoRef()
	}
	if i := cfg.Comp(Oil); i >= 0 {
		q[i] *= reg.Oil.RhoRef()
	}
	if i := cfg.Comp(Gas); i >= 0 {
		q[i] *= reg.Gas.RhoRef()
	}
}
