// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"testing"

	"github.com/cpmech/gohom/mandel"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// eye3 is the 3x3 identity
var eye3 = [][]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func Test_orient01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient01. perfectly aligned distribution")

	matrix := newiso(tst, 3e9, 0.35)
	fiber := newiso(tst, 70e9, 0.2)
	mt, err := NewMoriTanaka(matrix, fiber, 0.2, 20)
	if err != nil {
		tst.Errorf("NewMoriTanaka failed: %v\n", err)
		return
	}

	// all fibers along e1
	n2 := [][]float64{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	n4 := mandel.Alloc3333()
	n4[0][0][0][0] = 1

	// averaging over an aligned state reproduces the unaveraged stiffness
	res := mandel.Alloc66()
	err = mt.Average66(res, n2, n4)
	if err != nil {
		tst.Errorf("Average66 failed: %v\n", err)
		return
	}
	if chk.Verbose {
		la.PrintMat("aligned average [Pa]", res, "%12.4e", false)
	}
	chk.Matrix(tst, "aligned average", 1e-6*mt.Eff66[0][0], res, mt.Eff66)
}

func Test_orient02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient02. fully random distribution")

	matrix := newiso(tst, 3e9, 0.35)
	fiber := newiso(tst, 70e9, 0.2)
	mt, err := NewMoriTanaka(matrix, fiber, 0.2, 20)
	if err != nil {
		tst.Errorf("NewMoriTanaka failed: %v\n", err)
		return
	}

	// isotropic orientation tensors: N2 = I/3, N4 fully symmetric moments
	n2 := [][]float64{
		{1.0 / 3.0, 0, 0},
		{0, 1.0 / 3.0, 0},
		{0, 0, 1.0 / 3.0},
	}
	n4 := mandel.Alloc3333()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					n4[i][j][k][l] = (eye3[i][j]*eye3[k][l] + eye3[i][k]*eye3[j][l] + eye3[i][l]*eye3[j][k]) / 15.0
				}
			}
		}
	}

	ave := mandel.Alloc3333()
	err = mt.AverageFull(ave, n2, n4)
	if err != nil {
		tst.Errorf("AverageFull failed: %v\n", err)
		return
	}
	res := mandel.Alloc66()
	err = mandel.Ten2Man(res, ave)
	if err != nil {
		tst.Errorf("Ten2Man failed: %v\n", err)
		return
	}
	if chk.Verbose {
		la.PrintMat("random average [Pa]", res, "%12.4e", false)
	}

	// the averaged tensor must be isotropic: two independent constants
	tol := 1e-6 * res[0][0]
	chk.Scalar(tst, "C1111=C2222", tol, res[0][0], res[1][1])
	chk.Scalar(tst, "C1111=C3333", tol, res[0][0], res[2][2])
	chk.Scalar(tst, "C1122=C1133", tol, res[0][1], res[0][2])
	chk.Scalar(tst, "C1122=C2233", tol, res[0][1], res[1][2])
	chk.Scalar(tst, "C2323=C1212", tol, res[3][3], res[5][5])
	chk.Scalar(tst, "C2323=C1313", tol, res[3][3], res[4][4])
	// the isotropic shear relation in Mandel scaling
	chk.Scalar(tst, "C44 = C11-C12", tol, res[3][3], res[0][0]-res[0][1])

	// elastic symmetries of the averaged tensor
	left, right, major, err := mandel.SymResiduals(ave)
	if err != nil {
		tst.Errorf("SymResiduals failed: %v\n", err)
		return
	}
	io.Pforan("left=%v right=%v major=%v\n", left, right, major)
	rtol := 1e-9 * res[0][0]
	if left > rtol || right > rtol || major > rtol {
		tst.Errorf("averaged tensor must satisfy the elastic symmetries\n")
		return
	}
}

func Test_orient03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient03. reduced 4th-order orientation input")

	matrix := newiso(tst, 3e9, 0.35)
	fiber := newiso(tst, 70e9, 0.2)
	mt, err := NewMoriTanaka(matrix, fiber, 0.2, 20)
	if err != nil {
		tst.Errorf("NewMoriTanaka failed: %v\n", err)
		return
	}

	n2 := [][]float64{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	n4 := mandel.Alloc3333()
	n4[0][0][0][0] = 1
	n4man := mandel.Alloc66()
	err = mandel.Ten2Man(n4man, n4)
	if err != nil {
		tst.Errorf("Ten2Man failed: %v\n", err)
		return
	}

	a := mandel.Alloc66()
	b := mandel.Alloc66()
	err = mt.Average66(a, n2, n4)
	if err != nil {
		tst.Errorf("Average66 failed: %v\n", err)
		return
	}
	err = mt.Average66Man(b, n2, n4man)
	if err != nil {
		tst.Errorf("Average66Man failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "full vs reduced N4", 1e-9*a[0][0], a, b)
}

func Test_orient04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient04. shape errors")

	ten := mandel.Alloc3333()
	ave := mandel.Alloc3333()
	n4 := mandel.Alloc3333()

	// ragged inner slice of the 4th-order orientation tensor
	n4[1][2] = n4[1][2][:2]
	err := OrientationAverage(ave, ten, eye3, n4)
	if err == nil {
		tst.Errorf("OrientationAverage should have failed on a ragged tensor\n")
		return
	}
	if _, ok := err.(*mandel.ShapeError); !ok {
		tst.Errorf("error should be a ShapeError; %T is incorrect\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// ragged row of the 2nd-order orientation tensor
	n2 := [][]float64{{1, 0, 0}, {0, 0}, {0, 0, 0}}
	err = OrientationAverage(ave, ten, n2, mandel.Alloc3333())
	if err == nil {
		tst.Errorf("OrientationAverage should have failed on a ragged n2\n")
		return
	}
	if _, ok := err.(*mandel.ShapeError); !ok {
		tst.Errorf("error should be a ShapeError; %T is incorrect\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
}
