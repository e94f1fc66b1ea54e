// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/fractalmanifold/opm-models/blackoil"
)

// SaveStorage0 records the storage terms of the current states as the
// beginning-of-step values. Call once before the Newton iterations of a
// time step.
func (o *Domain) SaveStorage0() (err error) {
	for i, c := range o.Msh.Cells {
		if err = blackoil.ComputeStorage(o.Cfg, o.Sts[i], o.Pvt.Region(c.Reg), o.stor0[i]); err != nil {
			return
		}
	}
	return
}

// AssembleFb assembles the residual vector for a backward-Euler step of
// size dt:
//
//	Fb = (storage - storage0)·vol/dt + Σ face fluxes - sources·vol
//
// Cell accumulation terms and face fluxes are computed concurrently; the
// face contributions are then scattered serially in face order, so the
// result does not depend on the number of workers.
func (o *Domain) AssembleFb(dt float64) (err error) {
	neq := o.Neq()
	nc := o.Ncells()
	nf := len(o.Msh.Faces)
	if o.faceFb == nil {
		o.faceFb = utl.Alloc(nf, neq)
	}
	o.Fb.Fill(0)

	nw := runtime.GOMAXPROCS(0)
	if nw > nc {
		nw = nc
	}
	errs := make([]error, nw)
	var wg sync.WaitGroup

	// accumulation and source terms, one worker per cell stride
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			stor := make([]float64, neq)
			src := make([]float64, neq)
			for i := w; i < nc; i += nw {
				c := o.Msh.Cells[i]
				reg := o.Pvt.Region(c.Reg)
				if e := blackoil.ComputeStorage(o.Cfg, o.Sts[i], reg, stor); e != nil {
					errs[w] = e
					return
				}
				r := o.Fb[i*neq : (i+1)*neq]
				for j := 0; j < neq; j++ {
					r[j] = (stor[j] - o.stor0[i][j]) * c.Vol / dt
				}
				if e := blackoil.ComputeSource(o.Cfg, o.Sts[i], o.Src[c.Tag], src); e != nil {
					errs[w] = e
					return
				}
				for j := 0; j < neq; j++ {
					r[j] -= src[j] * c.Vol
				}
			}
		}(w)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	// face fluxes into per-face buffers
	if nf > 0 {
		nwf := nw
		if nwf > nf {
			nwf = nf
		}
		errs = make([]error, nwf)
		for w := 0; w < nwf; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				var ff blackoil.FaceFlux
				for k := w; k < nf; k += nwf {
					f := o.Msh.Faces[k]
					cIn, cEx := o.Msh.Cells[f.In], o.Msh.Cells[f.Ex]
					reg := o.Pvt.Region(cIn.Reg)
					e := blackoil.ComputeFlux(o.Cfg, o.Sts[f.In], o.Sts[f.Ex], reg,
						f.Trans, o.Grav, cIn.Depth, cEx.Depth, f.ThPres, &ff, o.faceFb[k])
					if e != nil {
						errs[w] = e
						return
					}
				}
			}(w)
		}
		wg.Wait()
		for _, e := range errs {
			if e != nil {
				return e
			}
		}

		// deterministic scatter
		for k, f := range o.Msh.Faces {
			for j := 0; j < neq; j++ {
				o.Fb[f.In*neq+j] += o.faceFb[k][j]
				o.Fb[f.Ex*neq+j] -= o.faceFb[k][j]
			}
		}
	}

	// boundary faces
	if len(o.Msh.Bnds) > 0 {
		buf := make([]float64, neq)
		for i, b := range o.Msh.Bnds {
			bc, ok := o.BCs[b.Tag]
			if !ok {
				return chk.Err("boundary face %d has tag %d but no condition is set", i, b.Tag)
			}
			c := o.Msh.Cells[b.Cell]
			reg := o.Pvt.Region(c.Reg)
			err = blackoil.ComputeBoundaryFlux(o.Cfg, bc.Kind, o.Sts[b.Cell], bc.Bnd, bc.Rates,
				reg, b.Trans, o.Grav, c.Depth, b.Depth, buf)
			if err != nil {
				return
			}
			for j := 0; j < neq; j++ {
				o.Fb[b.Cell*neq+j] += buf[j]
			}
		}
	}
	return
}

// LargestFb returns the largest weighted residual component max|Wb·Fb|
func (o *Domain) LargestFb() (largest float64) {
	for i, r := range o.Fb {
		v := o.Wb[i] * r
		if v < 0 {
			v = -v
		}
		if v > largest {
			largest = v
		}
	}
	return
}
