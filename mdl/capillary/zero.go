// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capillary

// Zero implements a capillary model with both branches identically zero;
// all phase pressures coincide
type Zero struct {
}

// add model to factory
func init() {
	allocators["zero"] = func() Model { return new(Zero) }
}

// Init initialises model
func (o *Zero) Init(prms map[string]float64) (err error) {
	return
}

// GetPrms gets (an example) of parameters
func (o Zero) GetPrms(example bool) map[string]float64 {
	return nil
}

// Pcow returns po - pw
func (o Zero) Pcow(sw float64) float64 {
	return 0
}

// Pcgo returns pg - po
func (o Zero) Pcgo(sg float64) float64 {
	return 0
}
