// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HalpinTsai computes the effective parameters of a single short-fiber
// lamina by the (shear-lag modified) Halpin-Tsai equations. The result is
// the planar lamina stiffness consumed by Laminate.
//  References:
//   [1] Fu S-Y, Lauke B and Mai YW (2019) Science and engineering of short
//       fibre-reinforced polymer composites, Woodhead Publishing, pp. 143 ff.
type HalpinTsai struct {

	// parameters
	Ef, Em float64 // Young's moduli of fiber and matrix [Pa]
	Gf, Gm float64 // shear moduli of fiber and matrix [Pa]
	νf, νm float64 // Poisson ratios of fiber and matrix
	lf     float64 // average fiber length [m]
	rf     float64 // average fiber radius [m]
	vf     float64 // fiber volume fraction
	pkg    string  // fiber package structure: "hex" or "square"

	// derived effective lamina parameters
	E11 float64 // axial Young's modulus
	E22 float64 // transverse Young's modulus
	G12 float64 // in-plane shear modulus
	ν12 float64 // major Poisson ratio
	ν21 float64 // minor Poisson ratio
}

// Init initialises the model and computes the effective lamina parameters
//  pkg -- fiber package structure: "hex" or "square"
func (o *HalpinTsai) Init(pkg string, prms fun.Prms) (err error) {
	o.pkg = pkg
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ef":
			o.Ef = p.V
		case "em":
			o.Em = p.V
		case "gf":
			o.Gf = p.V
		case "gm":
			o.Gm = p.V
		case "nuf":
			o.νf = p.V
		case "num":
			o.νm = p.V
		case "lf":
			o.lf = p.V
		case "rf":
			o.rf = p.V
		case "vf":
			o.vf = p.V
		default:
			return chk.Err("HalpinTsai: parameter named %q is incorrect", p.N)
		}
	}

	// shear-lag parameter depends on the package structure
	var p float64
	switch o.pkg {
	case "hex":
		p = 0.5 * math.Log(2.0*math.Pi/(math.Sqrt(3.0)*o.vf))
	case "square":
		p = 0.5 * math.Log(math.Pi/o.vf)
	default:
		return domErr("HalpinTsai: package structure %q is invalid; options are \"hex\" and \"square\"", o.pkg)
	}
	β := math.Sqrt(2.0 * math.Pi * o.Gm / (o.Ef * math.Pi * o.rf * o.rf * p))
	η1 := (o.Ef/o.Em - 1.0) / (o.Ef/o.Em + 2.0)
	η2 := (o.Gf/o.Gm - 1.0) / (o.Gf/o.Gm + 1.0)

	// effective lamina parameters
	o.E11 = o.Ef*(1.0-math.Tanh(β*o.lf/2.0)/(β*o.lf/2.0))*o.vf + o.Em*(1.0-o.vf)
	o.E22 = o.Em * (1.0 + 2.0*η1*o.vf) / (1.0 - η1*o.vf)
	o.G12 = o.Gm * (1.0 + 2.0*η2*o.vf) / (1.0 - η2*o.vf)
	o.ν12 = o.νf*o.vf + o.νm*(1.0-o.vf)
	o.ν21 = o.ν12 * o.E22 / o.E11
	return
}

// GetPrms gets (an example) of parameters
func (o HalpinTsai) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Ef", V: 242e9},
		&fun.Prm{N: "Em", V: 1.18e9},
		&fun.Prm{N: "Gf", V: 105e9},
		&fun.Prm{N: "Gm", V: 0.4e9},
		&fun.Prm{N: "nuf", V: 0.1},
		&fun.Prm{N: "num", V: 0.35},
		&fun.Prm{N: "lf", V: 0.4e-3},
		&fun.Prm{N: "rf", V: 3.6e-6},
		&fun.Prm{N: "vf", V: 0.25},
	}
}

// Stiffness3 computes the 3x3 planar stiffness of the lamina [Pa]
//  C -- 3x3 result matrix
func (o *HalpinTsai) Stiffness3(C [][]float64) {
	q11 := o.E11 / (1.0 - o.ν12*o.ν21)
	q22 := o.E22 / (1.0 - o.ν12*o.ν21)
	q12 := o.ν21 * q11
	C[0][0], C[0][1], C[0][2] = q11, q12, 0
	C[1][0], C[1][1], C[1][2] = q12, q22, 0
	C[2][0], C[2][1], C[2][2] = 0, 0, o.G12
}
