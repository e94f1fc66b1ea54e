// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackoil

import "github.com/cpmech/gosl/chk"

// ComputeSource fills src with the component source rates of one cell,
// per unit bulk volume: the prescribed rates (nil means none) plus the
// contributions of the installed extensions. Positive rates add mass.
func ComputeSource(cfg *Config, st *State, rates, src []float64) (err error) {
	if len(src) != cfg.NumEq() {
		return chk.Err("source vector has length %d; need %d", len(src), cfg.NumEq())
	}
	for j := range src {
		src[j] = 0
	}
	if rates != nil {
		if len(rates) != len(src) {
			return chk.Err("prescribed rates have length %d; need %d", len(rates), len(src))
		}
		for j, q := range rates {
			src[j] += q
		}
	}
	for _, ext := range cfg.Extensions {
		if err = ext.AddSource(cfg, st, src); err != nil {
			return
		}
	}
	return
}
