// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"math"

	"github.com/cpmech/gohom/mandel"
)

// EshelbyFull computes the Eshelby tensor of a spheroidal inclusion embedded
// in an infinite isotropic matrix, in full (3x3x3x3) form.
//  S -- 3x3x3x3 result tensor (representative components only; convert with
//       mandel.Ten2Man for the reduced form)
//  ν -- Poisson ratio of the matrix, within [0, 0.5)
//  a -- aspect ratio (length/diameter) of the spheroid; a > 1 prolate,
//       a < 1 oblate, a = 1 sphere (separate closed form)
//  References:
//   [1] Tandon GP and Weng GJ (1984) The effect of aspect ratio of inclusions
//       on the elastic properties of unidirectionally aligned composites,
//       Polymer Composites, 5(4), 327-333
//   [2] Gross D and Seelig T (2016) Bruchmechanik, Springer Berlin Heidelberg
func EshelbyFull(S [][][][]float64, ν, a float64) (err error) {

	// preconditions
	if ν < 0 || ν >= 0.5 {
		return domErr("Eshelby: Poisson ratio nu=%g must be within [0, 0.5)", ν)
	}
	if a <= 0 {
		return domErr("Eshelby: aspect ratio a=%g must be positive", a)
	}

	// clear
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					S[i][j][k][l] = 0
				}
			}
		}
	}

	// spherical inclusion: the general formula divides by (a²-1); use the
	// isotropic closed form instead
	if a == 1 {
		α := (7.0 - 5.0*ν) / (15.0 * (1.0 - ν))
		β := (5.0*ν - 1.0) / (15.0 * (1.0 - ν))
		γ := (4.0 - 5.0*ν) / (15.0 * (1.0 - ν))
		S[0][0][0][0], S[1][1][1][1], S[2][2][2][2] = α, α, α
		S[1][1][2][2], S[2][2][1][1] = β, β
		S[1][1][0][0], S[2][2][0][0] = β, β
		S[0][0][1][1], S[0][0][2][2] = β, β
		S[1][2][1][2], S[2][1][2][1] = γ, γ
		S[0][1][0][1], S[0][2][0][2] = γ, γ
		return
	}

	// shape function g(a); the arccosh form is valid for prolate spheroids
	// only, oblate ones use the arccos continuation
	a2 := a * a
	var g float64
	if a > 1 {
		g = a / math.Pow(a2-1.0, 1.5) * (a*math.Sqrt(a2-1.0) - math.Acosh(a))
	} else {
		g = a / math.Pow(1.0-a2, 1.5) * (math.Acos(a) - a*math.Sqrt(1.0-a2))
	}

	// nine independent nonzero components (Tandon-Weng)
	S[0][0][0][0] = 1.0 / (2.0 * (1.0 - ν)) * (1.0 - 2.0*ν + (3.0*a2-1.0)/(a2-1.0) - (1.0-2.0*ν+3.0*a2/(a2-1.0))*g)
	S[1][1][1][1] = 3.0/(8.0*(1.0-ν))*a2/(a2-1.0) + 1.0/(4.0*(1.0-ν))*(1.0-2.0*ν-9.0/(4.0*(a2-1.0)))*g
	S[2][2][2][2] = S[1][1][1][1]
	S[1][1][2][2] = 1.0 / (4.0 * (1.0 - ν)) * (a2/(2.0*(a2-1.0)) - (1.0-2.0*ν+3.0/(4.0*(a2-1.0)))*g)
	S[2][2][1][1] = S[1][1][2][2]
	S[1][1][0][0] = -1.0/(2.0*(1.0-ν))*a2/(a2-1.0) + 1.0/(4.0*(1.0-ν))*(3.0*a2/(a2-1.0)-(1.0-2.0*ν))*g
	S[2][2][0][0] = S[1][1][0][0]
	S[0][0][1][1] = -1.0/(2.0*(1.0-ν))*(1.0-2.0*ν+1.0/(a2-1.0)) + 1.0/(2.0*(1.0-ν))*(1.0-2.0*ν+3.0/(2.0*(a2-1.0)))*g
	S[0][0][2][2] = S[0][0][1][1]
	S[1][2][1][2] = 1.0 / (4.0 * (1.0 - ν)) * (a2/(2.0*(a2-1.0)) + (1.0-2.0*ν-3.0/(4.0*(a2-1.0)))*g)
	S[2][1][2][1] = S[1][2][1][2]
	S[0][1][0][1] = 1.0 / (4.0 * (1.0 - ν)) * (1.0 - 2.0*ν - (a2+1.0)/(a2-1.0) - 0.5*(1.0-2.0*ν-3.0*(a2+1.0)/(a2-1.0))*g)
	S[0][2][0][2] = S[0][1][0][1]
	return
}

// Eshelby66 computes the Eshelby tensor in reduced (Mandel) 6x6 form
//  S66 -- 6x6 result matrix
//  ν   -- Poisson ratio of the matrix
//  a   -- aspect ratio of the spheroid
func Eshelby66(S66 [][]float64, ν, a float64) (err error) {
	full := mandel.Alloc3333()
	if err = EshelbyFull(full, ν, a); err != nil {
		return
	}
	return mandel.Ten2Man(S66, full)
}
