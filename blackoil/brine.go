// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

// BrineExt conserves the salt component. Salt lives dissolved in the
// water phase and, beyond its solubility, as a precipitated solid that
// occupies pore space. The salt equation slot comes after the component
// equations.
type BrineExt struct {
	SaltRho float64 // density of the precipitated salt
	saltEq  int
}

// Name returns the extension name
func (o *BrineExt) Name() string { return "brine" }

// AddStorage adds the salt mass per unit volume: the dissolved part
// carried by the water and the precipitated part filling pore space
func (o *BrineExt) AddStorage(cfg *Config, st *State, stor []float64) error {
	stor[o.saltEq] = st.Poro * (st.Sat[Wat]*st.InvB[Wat]*st.SaltC + st.SaltSat*o.SaltRho)
	return nil
}

// AddFlux adds the salt mass advected with the water phase, using the
// upstream concentration. Precipitated salt does not move.
func (o *BrineExt) AddFlux(cfg *Config, in, ex *State, ff *FaceFlux, flux []float64) error {
	up := ex
	if ff.UpIsIn[Wat] {
		up = in
	}
	flux[o.saltEq] = up.InvB[Wat] * up.SaltC * ff.Darcy[Wat]
	return nil
}

// AddSource adds nothing: salt enters only through boundaries
func (o *BrineExt) AddSource(cfg *Config, st *State, src []float64) error {
	return nil
}
