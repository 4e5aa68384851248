// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package melast

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_iso01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso01. isotropic stiffness")

	mdl, err := New("iso")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	E, ν := 3e9, 0.35
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: E},
		&fun.Prm{N: "nu", V: ν},
	})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	λ := E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	μ := E / (2.0 * (1.0 + ν))
	c := mdl.Stiffness()
	if chk.Verbose {
		la.PrintMat("C", c, "%14.6e", false)
	}
	chk.Scalar(tst, "nu", 1e-17, mdl.Poisson(), ν)
	chk.Matrix(tst, "C", 1e-5, c, [][]float64{
		{λ + 2.0*μ, λ, λ, 0, 0, 0},
		{λ, λ + 2.0*μ, λ, 0, 0, 0},
		{λ, λ, λ + 2.0*μ, 0, 0, 0},
		{0, 0, 0, 2.0 * μ, 0, 0}, // Mandel scaling: shear diagonal = 2μ
		{0, 0, 0, 0, 2.0 * μ, 0},
		{0, 0, 0, 0, 0, 2.0 * μ},
	})
}

func Test_iso02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iso02. invalid parameters")

	var mdl Isotropy
	err := mdl.Init([]*fun.Prm{
		&fun.Prm{N: "E", V: 3e9},
		&fun.Prm{N: "nu", V: 0.5},
	})
	if err == nil {
		tst.Errorf("Init should have failed with nu=0.5\n")
		return
	}
	io.Pforan("err = %v\n", err)

	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "young", V: 3e9},
	})
	if err == nil {
		tst.Errorf("Init should have failed with an unknown parameter\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_tiso01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tiso01. transversely isotropic stiffness")

	mdl, err := New("tiso")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// C * S must give the identity
	c := mdl.Stiffness()
	s := la.MatAlloc(6, 6)
	err = la.MatInvG(s, c, 1e-10)
	if err != nil {
		tst.Errorf("cannot invert stiffness: %v\n", err)
		return
	}
	res := la.MatAlloc(6, 6)
	la.MatMul(res, 1, c, s)
	chk.Matrix(tst, "C*inv(C)", 1e-12, res, [][]float64{
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
	})

	// compliance entries recovered from the stiffness
	E1, E2, G12, ν12 := 230e9, 15e9, 50e9, 0.2
	chk.Scalar(tst, "S11", 1e-17, s[0][0], 1.0/E1)
	chk.Scalar(tst, "S22", 1e-17, s[1][1], 1.0/E2)
	chk.Scalar(tst, "S12", 1e-17, s[0][1], -ν12/E1)
	chk.Scalar(tst, "S55", 1e-17, s[4][4], 1.0/(2.0*G12))
	chk.Scalar(tst, "nu12", 1e-17, mdl.Poisson(), ν12)
}

func Test_melast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("melast01. model database")

	_, err := New("hyperelastic")
	if err == nil {
		tst.Errorf("New should have failed with an unknown model name\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
