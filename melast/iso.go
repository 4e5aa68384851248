// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package melast

import (
	"strings"

	"github.com/cpmech/gohom/mandel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Isotropy implements isotropic linear elasticity defined by the Young's
// modulus E [Pa] and the Poisson ratio ν:
//  C[i][j][k][l] = λ δij δkl + μ (δik δjl + δil δjk)
type Isotropy struct {

	// parameters
	E float64 // Young's modulus
	ν float64 // Poisson ratio

	// derived
	λ float64     // first Lamé parameter
	μ float64     // shear modulus
	c [][]float64 // 6x6 reduced stiffness
}

// add model to factory
func init() {
	allocators["iso"] = func() Model { return new(Isotropy) }
}

// Init initialises model
func (o *Isotropy) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e":
			o.E = p.V
		case "nu":
			o.ν = p.V
		default:
			return chk.Err("iso: parameter named %q is incorrect", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("iso: Young's modulus E=%g must be positive", o.E)
	}
	if o.ν < 0 || o.ν >= 0.5 {
		return chk.Err("iso: Poisson ratio nu=%g must be within [0, 0.5)", o.ν)
	}

	// derived
	o.λ = o.E * o.ν / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	o.μ = o.E / (2.0 * (1.0 + o.ν))

	// reduced stiffness via the full tensor; the Mandel scaling of the
	// shear block then follows from the conversion itself
	ten := mandel.Alloc3333()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					ten[i][j][k][l] = o.λ*δ(i, j)*δ(k, l) + o.μ*(δ(i, k)*δ(j, l)+δ(i, l)*δ(j, k))
				}
			}
		}
	}
	o.c = mandel.Alloc66()
	return mandel.Ten2Man(o.c, ten)
}

// GetPrms gets (an example) of parameters
func (o Isotropy) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 3e9},
		&fun.Prm{N: "nu", V: 0.35},
	}
}

// Stiffness returns the 6x6 reduced stiffness [Pa]
func (o Isotropy) Stiffness() [][]float64 {
	return o.c
}

// Poisson returns the Poisson ratio
func (o Isotropy) Poisson() float64 {
	return o.ν
}

// δ is the Kronecker delta
func δ(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}
