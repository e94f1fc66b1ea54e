// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fractalmanifold/opm-models/blackoil"
	"github.com/fractalmanifold/opm-models/mdl/capillary"
	"github.com/fractalmanifold/opm-models/mdl/conduct"
	"github.com/fractalmanifold/opm-models/mdl/fluid"
	"github.com/fractalmanifold/opm-models/msh"
	"github.com/fractalmanifold/opm-models/sim"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".msh", true)
	tf := io.ArgToFloat(1, 1e5)
	dt := io.ArgToFloat(2, 1e4)
	pini := io.ArgToFloat(3, 1e7)
	swini := io.ArgToFloat(4, 0.3)
	sgini := io.ArgToFloat(5, 0.1)
	grav := io.ArgToFloat(6, 9.81)
	verbose := io.ArgToBool(7, true)

	// message
	if verbose {
		io.PfWhite("\nBlack-Oil Reservoir Simulator\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"mesh filename path", "fnamepath", fnamepath,
			"final time", "tf", tf,
			"trial time step", "dt", dt,
			"initial oil pressure", "pini", pini,
			"initial water saturation", "swini", swini,
			"initial gas saturation", "sgini", sgini,
			"gravity acceleration", "grav", grav,
			"show messages", "verbose", verbose,
		))
	}

	// mesh
	mesh, err := msh.ReadMesh(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read mesh:\n%v", err)
	}

	// models
	cfg := blackoil.NewConfig()
	cp, err := capillary.New("zero")
	if err != nil {
		chk.Panic("cannot allocate capillary model:\n%v", err)
	}
	if err = cp.Init(nil); err != nil {
		chk.Panic("cannot initialise capillary model:\n%v", err)
	}
	kr, err := conduct.New("m1")
	if err != nil {
		chk.Panic("cannot allocate conductivity model:\n%v", err)
	}
	if err = kr.Init(kr.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise conductivity model:\n%v", err)
	}
	pvt, err := fluid.ExampleTable()
	if err != nil {
		chk.Panic("cannot build pvt table:\n%v", err)
	}

	// domain and initial hydrostatic-like state
	dom, err := sim.NewDomain(cfg, mesh, pvt, cp, kr, grav, 1e-5)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	reg := pvt.Region(0)
	rhoW := reg.Wat.RhoRef()
	d0 := mesh.Cells[0].Depth
	err = dom.SetIni(func(i int, c *msh.Cell) *blackoil.PrimaryVars {
		p := pini + rhoW*grav*(c.Depth-d0)
		var pv blackoil.PrimaryVars
		e := pv.AssignNaive(cfg, swini, sgini, [3]float64{p, p, p}, 0, 0, 0, 0, 0, 0)
		if e != nil {
			chk.Panic("cannot assign initial unknowns:\n%v", e)
		}
		return &pv
	})
	if err != nil {
		chk.Panic("cannot set initial state:\n%v", err)
	}

	// run simulation
	sol := sim.NewSolver(dom)
	err = sol.Run(tf, func(t float64) float64 { return dt }, verbose)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nfinal cell pressures:\n")
		for i, pv := range dom.PV {
			io.Pf("%4d %13.6e (%v)\n", i, pv.P, pv.MeanP)
		}
	}
}
