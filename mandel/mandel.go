// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mandel implements the normalized (Mandel) reduced notation for
// symmetric fourth-order elasticity tensors. A tensor with minor and major
// symmetries is represented by a 6x6 matrix with component ordering
//  {11, 22, 33, 23, 13, 12}
// where the off-diagonal index-pairs carry a factor of √2 per pair. This
// scaling preserves double contractions; i.e. the Mandel matrix product of
// two reduced tensors equals the reduced form of their double contraction.
//  References:
//   [1] Mandel J (1965) Généralisation de la théorie de plasticité de
//       W. T. Koiter, Int Journal of Solids and Structures, 1(3), 273-295
package mandel

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
	"github.com/cpmech/gosl/utl"
)

// ti and tj map reduced indices 0..5 to tensor index pairs
var (
	ti = []int{0, 1, 2, 1, 0, 0} // first tensor index of reduced component
	tj = []int{0, 1, 2, 2, 2, 1} // second tensor index of reduced component

	// mi maps a tensor index pair to the reduced index
	mi = [][]int{
		{0, 5, 4},
		{5, 1, 3},
		{4, 3, 2},
	}

	// fc holds the Mandel scaling factor per reduced index
	fc = []float64{1, 1, 1, tsr.SQ2, tsr.SQ2, tsr.SQ2}
)

// canonical orthonormal basis vectors
var (
	E1 = []float64{1, 0, 0}
	E2 = []float64{0, 1, 0}
	E3 = []float64{0, 0, 1}
)

// Alloc66 allocates a 6x6 reduced matrix
func Alloc66() [][]float64 {
	return la.MatAlloc(6, 6)
}

// Alloc3333 allocates a 3x3x3x3 full tensor
func Alloc3333() [][][][]float64 {
	return utl.Deep4alloc(3, 3, 3, 3)
}

// Ten2Man converts a fourth-order tensor into its 6x6 Mandel representation.
//  man -- 6x6 result matrix
//  ten -- 3x3x3x3 tensor
// Only the representative component of each index pair is read; for a tensor
// lacking minor or major symmetry the asymmetric parts are silently
// discarded, since the reduced basis spans symmetric tensors only.
func Ten2Man(man [][]float64, ten [][][][]float64) (err error) {
	if err = Check66(man); err != nil {
		return
	}
	if err = Check3333(ten); err != nil {
		return
	}
	for p := 0; p < 6; p++ {
		for q := 0; q < 6; q++ {
			man[p][q] = fc[p] * fc[q] * ten[ti[p]][tj[p]][ti[q]][tj[q]]
		}
	}
	return
}

// Man2Ten converts a 6x6 Mandel matrix into the corresponding fourth-order
// tensor. The result possesses both minor symmetries; it has major symmetry
// if and only if the input matrix is symmetric.
//  ten -- 3x3x3x3 result tensor
//  man -- 6x6 matrix
func Man2Ten(ten [][][][]float64, man [][]float64) (err error) {
	if err = Check3333(ten); err != nil {
		return
	}
	if err = Check66(man); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					p, q := mi[i][j], mi[k][l]
					ten[i][j][k][l] = man[p][q] / (fc[p] * fc[q])
				}
			}
		}
	}
	return
}

// Dot computes the tensor (double contraction) product of two reduced
// tensors, which is simply the 6x6 matrix product in Mandel notation
//  c := a * b
func Dot(c, a, b [][]float64) {
	la.MatMul(c, 1, a, b)
}

// Contract computes the scalar contraction of two fourth-order tensors
//  res := Σ a[i][j][k][l] * b[i][j][k][l]
// For symmetric tensors this equals the Frobenius inner product of their
// Mandel representations; the invariant defining the √2 normalization.
func Contract(a, b [][][][]float64) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res += a[i][j][k][l] * b[i][j][k][l]
				}
			}
		}
	}
	return
}

// Check66 returns a ShapeError unless m is 6x6
func Check66(m [][]float64) error {
	if len(m) != 6 {
		return shapeErr("matrix must be 6x6; nrows=%d is incorrect", len(m))
	}
	for i := 0; i < 6; i++ {
		if len(m[i]) != 6 {
			return shapeErr("matrix must be 6x6; len(row%d)=%d is incorrect", i, len(m[i]))
		}
	}
	return nil
}

// Check3333 returns a ShapeError unless t is 3x3x3x3
func Check3333(t [][][][]float64) error {
	if len(t) != 3 {
		return shapeErr("tensor must be 3x3x3x3; len=%d is incorrect", len(t))
	}
	for i := 0; i < 3; i++ {
		if len(t[i]) != 3 {
			return shapeErr("tensor must be 3x3x3x3; len(t[%d])=%d is incorrect", i, len(t[i]))
		}
		for j := 0; j < 3; j++ {
			if len(t[i][j]) != 3 {
				return shapeErr("tensor must be 3x3x3x3; len(t[%d][%d])=%d is incorrect", i, j, len(t[i][j]))
			}
			for k := 0; k < 3; k++ {
				if len(t[i][j][k]) != 3 {
					return shapeErr("tensor must be 3x3x3x3; len(t[%d][%d][%d])=%d is incorrect", i, j, k, len(t[i][j][k]))
				}
			}
		}
	}
	return nil
}
