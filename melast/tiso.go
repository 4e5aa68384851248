// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package melast

import (
	"strings"

	"github.com/cpmech/gohom/mandel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// TransIso implements transversely isotropic linear elasticity with the
// symmetry axis along e1 (the fiber direction). The reduced compliance is
// assembled directly in Mandel scaling and inverted to give the stiffness.
type TransIso struct {

	// parameters
	E1  float64 // axial Young's modulus
	E2  float64 // transverse Young's modulus
	G12 float64 // axial shear modulus
	ν12 float64 // axial Poisson ratio
	ν23 float64 // transverse Poisson ratio

	// derived
	G23 float64     // transverse shear modulus
	c   [][]float64 // 6x6 reduced stiffness
}

// add model to factory
func init() {
	allocators["tiso"] = func() Model { return new(TransIso) }
}

// Init initialises model
func (o *TransIso) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "e1":
			o.E1 = p.V
		case "e2":
			o.E2 = p.V
		case "g12":
			o.G12 = p.V
		case "nu12":
			o.ν12 = p.V
		case "nu23":
			o.ν23 = p.V
		default:
			return chk.Err("tiso: parameter named %q is incorrect", p.N)
		}
	}
	if o.E1 <= 0 || o.E2 <= 0 || o.G12 <= 0 {
		return chk.Err("tiso: moduli E1=%g, E2=%g, G12=%g must be positive", o.E1, o.E2, o.G12)
	}

	// derived
	o.G23 = o.E2 / (2.0 * (1.0 + o.ν23))

	// reduced compliance
	s := mandel.Alloc66()
	s[0][0] = 1.0 / o.E1
	s[1][1] = 1.0 / o.E2
	s[2][2] = 1.0 / o.E2
	s[0][1], s[1][0] = -o.ν12/o.E1, -o.ν12/o.E1
	s[0][2], s[2][0] = -o.ν12/o.E1, -o.ν12/o.E1
	s[1][2], s[2][1] = -o.ν23/o.E2, -o.ν23/o.E2
	s[3][3] = 1.0 / (2.0 * o.G23)
	s[4][4] = 1.0 / (2.0 * o.G12)
	s[5][5] = 1.0 / (2.0 * o.G12)

	// stiffness = inverse of compliance. The compliance entries are
	// O(1/E) for Pa-scale moduli, far below the inversion tolerance, so
	// the matrix is normalized by E2 first and the inverse rescaled:
	// inv(s) = E2 * inv(E2*s)
	sbar := mandel.Alloc66()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sbar[i][j] = o.E2 * s[i][j]
		}
	}
	cbar := mandel.Alloc66()
	err = la.MatInvG(cbar, sbar, 1e-10)
	if err != nil {
		return chk.Err("tiso: cannot invert compliance matrix:\n%v", err)
	}
	o.c = mandel.Alloc66()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.c[i][j] = o.E2 * cbar[i][j]
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o TransIso) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E1", V: 230e9},
		&fun.Prm{N: "E2", V: 15e9},
		&fun.Prm{N: "G12", V: 50e9},
		&fun.Prm{N: "nu12", V: 0.2},
		&fun.Prm{N: "nu23", V: 0.3},
	}
}

// Stiffness returns the 6x6 reduced stiffness [Pa]
func (o TransIso) Stiffness() [][]float64 {
	return o.c
}

// Poisson returns the axial Poisson ratio ν12
func (o TransIso) Poisson() float64 {
	return o.ν12
}
