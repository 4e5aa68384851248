// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mandel

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// SymResiduals computes the Frobenius norms of the deviation of a
// fourth-order tensor from each of its elastic symmetries
//  left  -- ‖T[ijkl] - T[jikl]‖  (left minor symmetry)
//  right -- ‖T[ijkl] - T[ijlk]‖  (right minor symmetry)
//  major -- ‖T[ijkl] - T[klij]‖  (major symmetry)
func SymResiduals(ten [][][][]float64) (left, right, major float64, err error) {
	if err = Check3333(ten); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					dl := ten[i][j][k][l] - ten[j][i][k][l]
					dr := ten[i][j][k][l] - ten[i][j][l][k]
					dm := ten[i][j][k][l] - ten[k][l][i][j]
					left += dl * dl
					right += dr * dr
					major += dm * dm
				}
			}
		}
	}
	left, right, major = math.Sqrt(left), math.Sqrt(right), math.Sqrt(major)
	return
}

// ReportSym prints a diagnostic report on the elastic symmetries of ten and
// returns whether all three residuals are within tol. Purely informative;
// a failed check never blocks downstream use of the tensor.
func ReportSym(ten [][][][]float64, tol float64) (ok bool, err error) {
	left, right, major, err := SymResiduals(ten)
	if err != nil {
		return
	}
	ok = true
	for _, res := range []struct {
		name string
		val  float64
	}{
		{"left minor symmetry", left},
		{"right minor symmetry", right},
		{"major symmetry", major},
	} {
		if res.val < tol {
			io.Pf("%-21s: passed\n", res.name)
		} else {
			ok = false
			io.PfRed("%-21s: failed (residuum = %g)\n", res.name, res.val)
		}
	}
	return
}
