// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"github.com/cpmech/gohom/mandel"
	"github.com/cpmech/gosl/io"
)

// OrientationAverage averages a transversely isotropic stiffness tensor over
// a fiber orientation distribution described by its 2nd- and 4th-order
// orientation tensors (Advani and Tucker). The input tensor must be
// transversely isotropic about e1; this is assumed, not verified.
//  ave -- 3x3x3x3 result tensor
//  ten -- 3x3x3x3 unaveraged stiffness (transversely isotropic)
//  n2  -- 3x3 orientation tensor (symmetric, trace 1)
//  n4  -- 3x3x3x3 orientation tensor (fully symmetric); if available in
//         reduced form, expand with mandel.Man2Ten first
//  References:
//   [1] Advani SG and Tucker CL (1987) The use of tensors to describe and
//       predict fiber orientation in short fiber composites, Journal of
//       Rheology, 31(8), 751-784
func OrientationAverage(ave, ten [][][][]float64, n2 [][]float64, n4 [][][][]float64) (err error) {

	// shapes
	for _, t := range [][][][][]float64{ave, ten, n4} {
		if err = mandel.Check3333(t); err != nil {
			return
		}
	}
	if len(n2) != 3 {
		return &mandel.ShapeError{Msg: io.Sf("orientation tensor n2 must be 3x3; len=%d is incorrect", len(n2))}
	}
	for i := 0; i < 3; i++ {
		if len(n2[i]) != 3 {
			return &mandel.ShapeError{Msg: io.Sf("orientation tensor n2 must be 3x3; len(row%d)=%d is incorrect", i, len(n2[i]))}
		}
	}

	// five invariants of the transversely isotropic input
	b1 := ten[0][0][0][0] + ten[1][1][1][1] - 2.0*ten[0][0][1][1] - 4.0*ten[0][1][0][1]
	b2 := ten[0][0][1][1] - ten[1][1][2][2]
	b3 := ten[0][1][0][1] + 0.5*(ten[1][1][2][2]-ten[1][1][1][1])
	b4 := ten[1][1][2][2]
	b5 := 0.5 * (ten[1][1][1][1] - ten[1][1][2][2])

	// fixed linear combination; the b3 term carries the four-fold
	// symmetrization, the b5 term the symmetric identity
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					ave[i][j][k][l] = b1*n4[i][j][k][l] +
						b2*(n2[i][j]*δ(k, l)+δ(i, j)*n2[k][l]) +
						b3*(n2[i][k]*δ(j, l)+n2[i][l]*δ(j, k)+δ(i, k)*n2[j][l]+δ(i, l)*n2[j][k]) +
						b4*δ(i, j)*δ(k, l) +
						b5*(δ(i, k)*δ(j, l)+δ(i, l)*δ(j, k))
				}
			}
		}
	}
	return
}

// δ is the Kronecker delta
func δ(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}
