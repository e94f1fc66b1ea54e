// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh holds the unstructured cell/face topology of a reservoir:
// cells with volumes and depths, interior faces with precomputed
// transmissibilities, and tagged boundary faces
package msh

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Cell is one control volume
type Cell struct {
	Vol   float64 // bulk volume
	Depth float64 // cell centre depth, increasing downwards
	Poro  float64 // porosity
	Reg   int     // PVT region index
	Tag   int     // cell tag for sources and output
}

// Face connects two cells. Geometry and permeability are already folded
// into the transmissibility.
type Face struct {
	In     int     // interior cell id
	Ex     int     // exterior cell id
	Trans  float64 // transmissibility
	ThPres float64 // threshold pressure barrier
}

// Boundary is a face on the domain boundary. Kind is one of "rate",
// "free" or "dirichlet"; the condition data itself lives with the
// simulation setup and is matched by Tag.
type Boundary struct {
	Cell  int     // interior cell id
	Kind  string  // "rate", "free" or "dirichlet"
	Trans float64 // transmissibility (unused for "rate")
	Depth float64 // depth of the boundary face
	Tag   int     // tag matched against the boundary condition data
}

// Mesh is a complete reservoir topology
type Mesh struct {
	Cells []*Cell
	Faces []*Face
	Bnds  []*Boundary
}

// ReadMesh reads a mesh from a JSON file and validates it
func ReadMesh(dir, fn string) (o *Mesh, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q: %v", fn, err)
	}
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid: %v", fn, err)
	}
	err = o.Check()
	return
}

// Check validates cell references and positivity of volumes,
// transmissibilities and porosities
func (o *Mesh) Check() (err error) {
	n := len(o.Cells)
	if n == 0 {
		return chk.Err("mesh has no cells")
	}
	for i, c := range o.Cells {
		if c.Vol <= 0 {
			return chk.Err("cell %d has non-positive volume %g", i, c.Vol)
		}
		if c.Poro <= 0 || c.Poro > 1 {
			return chk.Err("cell %d has invalid porosity %g", i, c.Poro)
		}
	}
	for i, f := range o.Faces {
		if f.In < 0 || f.In >= n || f.Ex < 0 || f.Ex >= n || f.In == f.Ex {
			return chk.Err("face %d connects invalid cells (%d,%d)", i, f.In, f.Ex)
		}
		if f.Trans < 0 {
			return chk.Err("face %d has negative transmissibility %g", i, f.Trans)
		}
		if f.ThPres < 0 {
			return chk.Err("face %d has negative threshold pressure %g", i, f.ThPres)
		}
	}
	for i, b := range o.Bnds {
		if b.Cell < 0 || b.Cell >= n {
			return chk.Err("boundary %d references invalid cell %d", i, b.Cell)
		}
		switch b.Kind {
		case "rate", "free", "dirichlet":
		default:
			return chk.Err("boundary %d has unknown kind %q", i, b.Kind)
		}
	}
	return
}

// NewColumn builds a vertical column of n equal cells, connected by faces
// with the given transmissibility. Cell 0 is the shallowest; depth grows
// by ddepth per cell starting at depth0.
func NewColumn(n int, vol, trans, poro, depth0, ddepth float64) (o *Mesh) {
	o = new(Mesh)
	o.Cells = make([]*Cell, n)
	for i := 0; i < n; i++ {
		o.Cells[i] = &Cell{Vol: vol, Depth: depth0 + float64(i)*ddepth, Poro: poro}
	}
	o.Faces = make([]*Face, n-1)
	for i := 0; i < n-1; i++ {
		o.Faces[i] = &Face{In: i, Ex: i + 1, Trans: trans}
	}
	return
}
