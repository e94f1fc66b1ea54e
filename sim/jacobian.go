// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// AssembleKb assembles the Jacobian of the residual by forward finite
// differences: each unknown is perturbed in turn, the affected cell state
// is re-evaluated, and the residual difference fills one column. K must be
// a square matrix of size Ncells·Neq. The meanings of the switching
// unknowns are frozen during the perturbations. On return Fb holds the
// unperturbed residual again.
func (o *Domain) AssembleKb(dt float64, K *la.Matrix) (err error) {
	neq := o.Neq()
	n := o.Ncells() * neq
	if err = o.AssembleFb(dt); err != nil {
		return
	}
	fb0 := make([]float64, n)
	copy(fb0, o.Fb)
	for i := 0; i < o.Ncells(); i++ {
		for k := 0; k < neq; k++ {
			col := i*neq + k
			u := o.PV[i].Get(o.Cfg, k)
			h := 1e-7 * (1 + math.Abs(u))
			o.PV[i].Add(o.Cfg, k, h)
			if err = o.Evaluate(i); err != nil {
				return
			}
			if err = o.AssembleFb(dt); err != nil {
				return
			}
			for r := 0; r < n; r++ {
				K.Set(r, col, (o.Fb[r]-fb0[r])/h)
			}
			o.PV[i].Add(o.Cfg, k, -h)
			if err = o.Evaluate(i); err != nil {
				return
			}
		}
	}
	copy(o.Fb, fb0)
	return
}
