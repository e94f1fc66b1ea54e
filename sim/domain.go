// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim drives implicit black-oil simulations: it holds the
// per-cell unknowns and states of a mesh, assembles residuals and
// Jacobians, and advances the solution in time with a Newton-Raphson
// scheme with adaptive time stepping
package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/fractalmanifold/opm-models/blackoil"
	"github.com/fractalmanifold/opm-models/mdl/capillary"
	"github.com/fractalmanifold/opm-models/mdl/conduct"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
	"github.com/fractalmanifold/opm-models/msh"
)

// BC holds the data of one boundary condition, matched to boundary faces
// by tag. Rate conditions carry prescribed component rates (negative
// injects); free and Dirichlet conditions carry an exterior state.
type BC struct {
	Kind  blackoil.BCKind
	Rates []float64
	Bnd   *blackoil.State
}

// Domain holds the complete discrete problem: configuration, mesh,
// constitutive models, and the unknowns and evaluated states of every
// cell, together with the assembled residual vector
type Domain struct {

	// problem data
	Cfg *blackoil.Config
	Msh *msh.Mesh
	Pvt *fluid.Table
	Cap capillary.Model
	Kr  conduct.Model

	Grav float64 // gravity acceleration
	Eps  float64 // phase switching tolerance

	// per-cell data
	PV   []*blackoil.PrimaryVars
	Hist []*blackoil.History
	Sts  []*blackoil.State

	// sources and boundary conditions
	Src map[int][]float64 // cell tag => component rates per unit bulk volume
	BCs map[int]*BC       // boundary tag => condition

	// assembly workspace
	Fb     la.Vector   // residual vector
	Wb     la.Vector   // per-unknown residual weights
	stor0  [][]float64 // storage at the beginning of the time step
	faceFb [][]float64 // per-face flux buffers

	// snapshot for time step rejection
	bkp []*blackoil.PrimaryVars
}

// NewDomain allocates a domain for the given mesh and models. The
// unknowns are unset until SetIni is called.
func NewDomain(cfg *blackoil.Config, m *msh.Mesh, pvt *fluid.Table, cp capillary.Model, kr conduct.Model, grav, eps float64) (o *Domain, err error) {
	if err = m.Check(); err != nil {
		return
	}
	nc := len(m.Cells)
	neq := cfg.NumEq()
	o = &Domain{
		Cfg: cfg, Msh: m, Pvt: pvt, Cap: cp, Kr: kr,
		Grav: grav, Eps: eps,
		PV:   make([]*blackoil.PrimaryVars, nc),
		Hist: make([]*blackoil.History, nc),
		Sts:  make([]*blackoil.State, nc),
		Src:  make(map[int][]float64),
		BCs:  make(map[int]*BC),
		Fb:   la.NewVector(nc * neq),
		Wb:   la.NewVector(nc * neq),
	}
	o.Wb.Fill(1)
	o.stor0 = utl.Alloc(nc, neq)
	for i, c := range m.Cells {
		o.Hist[i] = blackoil.NewHistory()
		o.Sts[i] = new(blackoil.State)
		if c.Reg < 0 || c.Reg >= len(pvt.Regions) {
			return nil, chk.Err("cell %d references unknown pvt region %d", i, c.Reg)
		}
	}
	return
}

// Ncells returns the number of cells
func (o *Domain) Ncells() int { return len(o.Msh.Cells) }

// Neq returns the number of unknowns per cell
func (o *Domain) Neq() int { return o.Cfg.NumEq() }

// SetIni sets the initial unknowns of every cell and evaluates the states
func (o *Domain) SetIni(gen func(i int, c *msh.Cell) *blackoil.PrimaryVars) (err error) {
	for i, c := range o.Msh.Cells {
		pv := gen(i, c)
		pv.Reg = c.Reg
		o.PV[i] = pv
		if _, err = pv.Adapt(o.Cfg, o.Cap, o.Pvt.Region(c.Reg), o.Hist[i], o.Eps); err != nil {
			return
		}
	}
	if err = o.EvaluateAll(); err != nil {
		return
	}
	o.CommitHistory()
	return
}

// SetBC installs a boundary condition for a tag. For free and Dirichlet
// conditions bpv describes the exterior; its state is evaluated once.
func (o *Domain) SetBC(tag int, kind blackoil.BCKind, rates []float64, bpv *blackoil.PrimaryVars) (err error) {
	bc := &BC{Kind: kind}
	switch kind {
	case blackoil.RateBC:
		if len(rates) != o.Neq() {
			return chk.Err("rate condition for tag %d has %d rates; need %d", tag, len(rates), o.Neq())
		}
		bc.Rates = rates
	default:
		if bpv == nil {
			return chk.Err("free/dirichlet condition for tag %d needs exterior unknowns", tag)
		}
		bc.Bnd = new(blackoil.State)
		err = bc.Bnd.Evaluate(o.Cfg, bpv, o.Cap, o.Kr, o.Pvt.Region(bpv.Reg), nil, 1)
		if err != nil {
			return
		}
	}
	o.BCs[tag] = bc
	return
}

// SetSource installs component rates per unit bulk volume for all cells
// with the given tag. Positive rates add mass; they enter the residual
// with negative sign.
func (o *Domain) SetSource(tag int, rates []float64) (err error) {
	if len(rates) != o.Neq() {
		return chk.Err("source for tag %d has %d rates; need %d", tag, len(rates), o.Neq())
	}
	o.Src[tag] = rates
	return
}

// Evaluate recomputes the state of cell i from its unknowns
func (o *Domain) Evaluate(i int) error {
	c := o.Msh.Cells[i]
	return o.Sts[i].Evaluate(o.Cfg, o.PV[i], o.Cap, o.Kr, o.Pvt.Region(c.Reg), o.Hist[i], c.Poro)
}

// EvaluateAll recomputes all cell states
func (o *Domain) EvaluateAll() (err error) {
	for i := range o.Msh.Cells {
		if err = o.Evaluate(i); err != nil {
			return
		}
	}
	return
}

// AdaptAll normalizes the saturations and adapts the meanings of the
// switching unknowns of every cell, re-evaluating the states of the cells
// that changed. Returns the number of cells whose meanings switched.
func (o *Domain) AdaptAll() (nchanged int, err error) {
	for i, c := range o.Msh.Cells {
		chopped := o.PV[i].ChopAndNormalizeSaturations(o.Cfg)
		changed, e := o.PV[i].Adapt(o.Cfg, o.Cap, o.Pvt.Region(c.Reg), o.Hist[i], o.Eps)
		if e != nil {
			return nchanged, e
		}
		if changed {
			nchanged++
		}
		if changed || chopped {
			if err = o.Evaluate(i); err != nil {
				return
			}
		}
	}
	return
}

// Backup snapshots the unknowns so a rejected time step can be rolled back
func (o *Domain) Backup() {
	if o.bkp == nil {
		o.bkp = make([]*blackoil.PrimaryVars, len(o.PV))
	}
	for i, pv := range o.PV {
		o.bkp[i] = pv.GetCopy()
	}
}

// Restore rolls the unknowns back to the last snapshot
func (o *Domain) Restore() (err error) {
	for i, pv := range o.bkp {
		o.PV[i].Set(pv)
	}
	return o.EvaluateAll()
}

// CommitHistory updates the per-cell historical maxima from the current
// solution. Call after a time step converged.
func (o *Domain) CommitHistory() {
	for i, pv := range o.PV {
		_, so, _ := pv.Saturations(o.Cfg)
		o.Hist[i].UpdateSoMax(so)
	}
}
