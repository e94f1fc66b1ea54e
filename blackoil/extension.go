// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

// Extension adds the storage, flux, and source contributions of an
// optional capability on top of the base component equations. Extensions
// are installed into the Config at construction time and called on every
// cell and face; they must only touch the equation slots they own.
type Extension interface {
	Name() string
	AddStorage(cfg *Config, st *State, stor []float64) error
	AddFlux(cfg *Config, in, ex *State, ff *FaceFlux, flux []float64) error
	AddSource(cfg *Config, st *State, src []float64) error
}

// Noop is an extension that contributes nothing. Extensions that only add
// some of the terms can embed it.
type Noop struct{}

// AddStorage adds nothing
func (o Noop) AddStorage(cfg *Config, st *State, stor []float64) error { return nil }

// AddFlux adds nothing
func (o Noop) AddFlux(cfg *Config, in, ex *State, ff *FaceFlux, flux []float64) error { return nil }

// AddSource adds nothing
func (o Noop) AddSource(cfg *Config, st *State, src []float64) error { return nil }
