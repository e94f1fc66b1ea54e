// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/fractalmanifold/opm-models/blackoil"
)

// Status reports the outcome of a Newton step
type Status int

const (
	Iterating        Status = iota // still inside the Newton loop
	Converged                      // residual dropped below tolerance
	TimeStepRejected               // no convergence; retry with smaller dt
	Fatal                          // unrecoverable failure
)

// String returns the status name
func (o Status) String() string {
	switch o {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case TimeStepRejected:
		return "rejected"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Control holds the Newton and time stepping parameters
type Control struct {
	FbTol  float64 // tolerance on the weighted residual, relative to the initial one
	FbMin  float64 // floor for the initial residual and absolute convergence
	NmaxIt int     // maximum Newton iterations per step
	GoodIt int     // iteration count under which the time step may grow
	DtMin  float64 // smallest admissible time step
	DtMax  float64 // largest admissible time step
}

// SetDefault sets default control parameters
func (o *Control) SetDefault() {
	o.FbTol = 1e-8
	o.FbMin = 1e-20
	o.NmaxIt = 12
	o.GoodIt = 5
	o.DtMin = 1e-3
	o.DtMax = 1e6
}

// Solver advances a Domain in time with the implicit Newton-Raphson
// scheme: fully implicit backward-Euler steps, finite-difference
// Jacobians, and time step halving/doubling driven by the convergence
// behavior
type Solver struct {
	Dom *Domain
	Lin LinSolver
	Ctl Control

	It       int       // Newton iterations spent on the last step
	LargHist []float64 // weighted residual per iteration of the last step

	kb *la.Matrix
	du la.Vector
}

// TimeFunc gives the trial time step as a function of the current time
type TimeFunc func(t float64) float64

// NewSolver allocates a solver with default controls and a dense LU
// linear solver
func NewSolver(dom *Domain) (o *Solver) {
	n := dom.Ncells() * dom.Neq()
	o = &Solver{Dom: dom, Lin: new(DenseLU)}
	o.Ctl.SetDefault()
	o.kb = la.NewMatrix(n, n)
	o.du = la.NewVector(n)
	return
}

// outOfBox tells whether a saturation-meaning unknown left the admissible
// box after an update. Convergence is hopeless then; the step is rejected
// without burning the remaining iterations. Slots carrying dissolution or
// vaporization factors are not box constrained.
func (o *Solver) outOfBox() bool {
	for _, pv := range o.Dom.PV {
		if pv.MeanW == blackoil.Sw && (pv.W < -1 || pv.W > 2) {
			return true
		}
		if pv.MeanG == blackoil.Sg && (pv.G < -1 || pv.G > 2) {
			return true
		}
	}
	return false
}

// Step attempts one backward-Euler step of size dt. On rejection the
// unknowns are rolled back to the beginning of the step.
func (o *Solver) Step(dt float64) (status Status, err error) {
	d := o.Dom
	neq := d.Neq()
	d.Backup()
	if err = d.SaveStorage0(); err != nil {
		return Fatal, err
	}
	var largFb0 float64
	status = Iterating
	o.LargHist = o.LargHist[:0]
	for it := 0; it < o.Ctl.NmaxIt; it++ {
		o.It = it + 1

		// residual and convergence
		if err = d.AssembleFb(dt); err != nil {
			return Fatal, err
		}
		largFb := d.LargestFb()
		o.LargHist = append(o.LargHist, largFb)
		if math.IsNaN(largFb) || math.IsInf(largFb, 0) {
			break
		}
		if it == 0 {
			largFb0 = math.Max(largFb, o.Ctl.FbMin)
		}
		if largFb <= o.Ctl.FbTol*largFb0 || largFb < o.Ctl.FbMin {
			return Converged, nil
		}

		// Newton update
		if err = d.AssembleKb(dt, o.kb); err != nil {
			return Fatal, err
		}
		if err = o.Lin.Solve(o.kb, d.Fb, o.du); err != nil {
			break
		}
		for i := range d.PV {
			for k := 0; k < neq; k++ {
				d.PV[i].Add(d.Cfg, k, -o.du[i*neq+k])
			}
		}
		if o.outOfBox() {
			break
		}
		if err = d.EvaluateAll(); err != nil {
			return Fatal, err
		}
		if _, err = d.AdaptAll(); err != nil {
			return Fatal, err
		}
	}
	err = d.Restore()
	if err != nil {
		return Fatal, err
	}
	return TimeStepRejected, nil
}

// Run advances the domain until tf. dtf gives the trial time step as a
// function of time; after a rejection the step is halved and retried, and
// after a quick convergence it is doubled again, up to the control
// bounds. Run fails when the step falls below the minimum.
func (o *Solver) Run(tf float64, dtf TimeFunc, verbose bool) (err error) {
	t := 0.0
	dt := dtf(t)
	divided := false
	for t < tf {
		if dt > tf-t {
			dt = tf - t
		}
		status, e := o.Step(dt)
		if e != nil {
			return chk.Err("simulation failed at t=%g dt=%g:\n%v", t, dt, e)
		}
		switch status {
		case Converged:
			t += dt
			o.Dom.CommitHistory()
			if verbose {
				io.Pf("t=%13.6e dt=%13.6e it=%2d\n", t, dt, o.It)
			}
			if !divided && o.It < o.Ctl.GoodIt {
				dt *= 2
			}
			if dt > o.Ctl.DtMax {
				dt = o.Ctl.DtMax
			}
			divided = false
		case TimeStepRejected:
			divided = true
			dt *= 0.5
			if verbose {
				io.Pfred("t=%13.6e step rejected; retrying with dt=%13.6e\n", t, dt)
			}
			if dt < o.Ctl.DtMin {
				return chk.Err("time step %g fell below the minimum %g at t=%g", dt, o.Ctl.DtMin, t)
			}
		default:
			return chk.Err("time step failed fatally at t=%g", t)
		}
	}
	return
}
