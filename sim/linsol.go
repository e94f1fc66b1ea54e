// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// LinSolver solves the linear system K·x = b of one Newton iteration
type LinSolver interface {
	Solve(K *la.Matrix, b, x []float64) error
}

// DenseLU solves the Newton systems with a dense LU decomposition
type DenseLU struct {
	lu mat.LU
}

// Solve factorizes K and solves K·x = b
func (o *DenseLU) Solve(K *la.Matrix, b, x []float64) (err error) {
	n := len(b)
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, K.Get(i, j))
		}
	}
	o.lu.Factorize(A)
	var xv mat.VecDense
	if err = o.lu.SolveVecTo(&xv, false, mat.NewVecDense(n, b)); err != nil {
		return chk.Err("linear solver failed: %v", err)
	}
	for i := 0; i < n; i++ {
		x[i] = xv.AtVec(i)
	}
	return
}
