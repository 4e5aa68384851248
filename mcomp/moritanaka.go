// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcomp implements mean-field homogenization models for composite
// materials: the Mori-Tanaka scheme with the closed-form Eshelby tensor for
// spheroidal inclusions, Advani-Tucker orientation averaging, and the
// Halpin-Tsai / laminate-analogy approach for short-fiber laminas.
//  References:
//   [1] Gross D and Seelig T (2016) Bruchmechanik, Springer Berlin Heidelberg
//   [2] Brylka B (2017) Charakterisierung und Modellierung der Steifigkeit
//       von langfaserverstärktem Polypropylen, KIT Scientific Publishing
//   [3] Tandon GP and Weng GJ (1984) The effect of aspect ratio of inclusions
//       on the elastic properties of unidirectionally aligned composites,
//       Polymer Composites, 5(4), 327-333
//   [4] Fu S-Y, Lauke B and Mai YW (2019) Science and engineering of short
//       fibre-reinforced polymer composites, Woodhead Publishing
package mcomp

import (
	"github.com/cpmech/gohom/mandel"
	"github.com/cpmech/gohom/melast"
	"github.com/cpmech/gosl/la"
)

// MoriTanaka computes the effective stiffness of a matrix reinforced by one
// or several types of spheroidal inclusions. All derived tensors are
// computed eagerly at construction and frozen; the exported results are
// read-only and only change when a new homogenizer is constructed.
type MoriTanaka struct {

	// input
	Cm [][]float64 // matrix stiffness (reduced) [Pa]
	νm float64     // matrix Poisson ratio

	// single inclusion type
	Cf    [][]float64 // fiber stiffness (reduced) [Pa]
	Esh66 [][]float64 // Eshelby tensor (reduced)
	vf    float64     // fiber volume fraction
	ar    float64     // fiber aspect ratio

	// multiple inclusion types
	nrc  int           // number of constituents
	pols [][][]float64 // pol_α = Cf_α - Cm, per inclusion type
	Acon [][][]float64 // A_α, strain concentration tensor per inclusion type
	cα   []float64     // volume fraction of type α within the inclusion volume
	cf   float64       // total inclusion volume fraction

	// results (read-only)
	Eff66   [][]float64     // effective stiffness (reduced) [Pa]
	Eff3333 [][][][]float64 // effective stiffness (full) [Pa]
}

// NewMoriTanaka returns a homogenizer for a single inclusion type
//  matrix -- matrix material (isotropic; its Poisson ratio enters the
//            Eshelby tensor)
//  fiber  -- inclusion material
//  vfrac  -- inclusion volume fraction, within (0, 1)
//  aratio -- inclusion aspect ratio
func NewMoriTanaka(matrix, fiber melast.Model, vfrac, aratio float64) (o *MoriTanaka, err error) {
	o = new(MoriTanaka)
	o.Cm = matrix.Stiffness()
	o.νm = matrix.Poisson()
	o.Cf = fiber.Stiffness()
	o.vf = vfrac
	o.ar = aratio
	if err = o.calcSingle(); err != nil {
		return nil, err
	}
	return
}

// NewMoriTanakaMulti returns a homogenizer for several inclusion types.
// The three lists must have the same length.
func NewMoriTanakaMulti(matrix melast.Model, fibers []melast.Model, vfracs, aratios []float64) (o *MoriTanaka, err error) {
	if len(fibers) != len(vfracs) || len(fibers) != len(aratios) {
		return nil, dimErr("dimensions of fibers, vfracs and aratios do not match: %d, %d, %d",
			len(fibers), len(vfracs), len(aratios))
	}
	if len(fibers) < 1 {
		return nil, dimErr("at least one inclusion type is required")
	}
	o = new(MoriTanaka)
	o.Cm = matrix.Stiffness()
	o.νm = matrix.Poisson()
	o.nrc = len(fibers)
	if err = o.calcMulti(fibers, vfracs, aratios); err != nil {
		return nil, err
	}
	return
}

// calcSingle computes the effective stiffness for a single inclusion type:
//  Ainv = I + S·(Cm⁻¹·pol)
//  Ceff = Cm + v·pol·(v·I + (1-v)·Ainv)⁻¹
func (o *MoriTanaka) calcSingle() (err error) {

	// inverse of matrix stiffness
	cmi := mandel.Alloc66()
	if err = la.MatInvG(cmi, o.Cm, 1e-10); err != nil {
		return singErr("Mori-Tanaka: cannot invert matrix stiffness:\n%v", err)
	}

	// Eshelby tensor
	o.Esh66 = mandel.Alloc66()
	if err = Eshelby66(o.Esh66, o.νm, o.ar); err != nil {
		return
	}

	// polarization and dilute concentration
	pol := mandel.Alloc66()
	matCombine(pol, 1, o.Cf, -1, o.Cm)
	tmp := mandel.Alloc66()
	ainv := mandel.Alloc66()
	mandel.Dot(tmp, cmi, pol)
	mandel.Dot(ainv, o.Esh66, tmp)
	matAddEye(ainv, 1)

	// Mori-Tanaka correction
	b := mandel.Alloc66()
	matScale(b, 1-o.vf, ainv)
	matAddEye(b, o.vf)
	bi := mandel.Alloc66()
	if err = la.MatInvG(bi, b, 1e-10); err != nil {
		return singErr("Mori-Tanaka: cannot invert v·I + (1-v)·Ainv:\n%v", err)
	}
	mandel.Dot(tmp, pol, bi)

	// effective stiffness
	o.Eff66 = mandel.Alloc66()
	matCombine(o.Eff66, 1, o.Cm, o.vf, tmp)
	o.Eff3333 = mandel.Alloc3333()
	return mandel.Man2Ten(o.Eff3333, o.Eff66)
}

// calcMulti computes the effective stiffness for several inclusion types:
//  A_α  = (I + S_α·Cm⁻¹·pol_α)⁻¹
//  Ceff = Cm + c_f·⟨pol·A⟩·(c_f·⟨A⟩ + (1-c_f)·I)⁻¹
// with ⟨·⟩ the average over inclusion types weighted by c_α = v_α/c_f
func (o *MoriTanaka) calcMulti(fibers []melast.Model, vfracs, aratios []float64) (err error) {

	// inverse of matrix stiffness
	cmi := mandel.Alloc66()
	if err = la.MatInvG(cmi, o.Cm, 1e-10); err != nil {
		return singErr("Mori-Tanaka: cannot invert matrix stiffness:\n%v", err)
	}

	// total inclusion volume fraction
	o.cf = 0
	for _, v := range vfracs {
		o.cf += v
	}
	if o.cf <= 0 {
		return domErr("Mori-Tanaka: total inclusion volume fraction c_f=%g must be positive", o.cf)
	}

	// per-type polarization and strain concentration tensors
	o.pols = make([][][]float64, o.nrc)
	o.Acon = make([][][]float64, o.nrc)
	o.cα = make([]float64, o.nrc)
	s66 := mandel.Alloc66()
	tmp := mandel.Alloc66()
	ainv := mandel.Alloc66()
	for α := 0; α < o.nrc; α++ {
		o.pols[α] = mandel.Alloc66()
		matCombine(o.pols[α], 1, fibers[α].Stiffness(), -1, o.Cm)
		if err = Eshelby66(s66, o.νm, aratios[α]); err != nil {
			return
		}
		mandel.Dot(tmp, cmi, o.pols[α])
		mandel.Dot(ainv, s66, tmp)
		matAddEye(ainv, 1)
		o.Acon[α] = mandel.Alloc66()
		if err = la.MatInvG(o.Acon[α], ainv, 1e-10); err != nil {
			return singErr("Mori-Tanaka: cannot invert A⁻¹ of inclusion type %d:\n%v", α, err)
		}
		o.cα[α] = vfracs[α] / o.cf
	}

	// volume-weighted averages
	aAve := mandel.Alloc66()
	polAave := mandel.Alloc66()
	for α := 0; α < o.nrc; α++ {
		mandel.Dot(tmp, o.pols[α], o.Acon[α])
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				aAve[i][j] += o.cα[α] * o.Acon[α][i][j]
				polAave[i][j] += o.cα[α] * tmp[i][j]
			}
		}
	}

	// effective stiffness
	b := mandel.Alloc66()
	matScale(b, o.cf, aAve)
	matAddEye(b, 1-o.cf)
	bi := mandel.Alloc66()
	if err = la.MatInvG(bi, b, 1e-10); err != nil {
		return singErr("Mori-Tanaka: cannot invert c_f·⟨A⟩ + (1-c_f)·I:\n%v", err)
	}
	mandel.Dot(tmp, polAave, bi)
	o.Eff66 = mandel.Alloc66()
	matCombine(o.Eff66, 1, o.Cm, o.cf, tmp)
	o.Eff3333 = mandel.Alloc3333()
	return mandel.Man2Ten(o.Eff3333, o.Eff66)
}

// Average66 returns the orientation average of the effective stiffness in
// reduced form, given the 2nd- and 4th-order orientation tensors.
//  res -- 6x6 result matrix
//  n2  -- 3x3 orientation tensor (symmetric, trace 1)
//  n4  -- 3x3x3x3 orientation tensor (fully symmetric)
func (o *MoriTanaka) Average66(res [][]float64, n2 [][]float64, n4 [][][][]float64) (err error) {
	ave := mandel.Alloc3333()
	if err = OrientationAverage(ave, o.Eff3333, n2, n4); err != nil {
		return
	}
	return mandel.Ten2Man(res, ave)
}

// Average66Man is Average66 with the 4th-order orientation tensor supplied
// in reduced (6x6) form; it is expanded to full form before use.
func (o *MoriTanaka) Average66Man(res [][]float64, n2, n4man [][]float64) (err error) {
	n4 := mandel.Alloc3333()
	if err = mandel.Man2Ten(n4, n4man); err != nil {
		return
	}
	return o.Average66(res, n2, n4)
}

// AverageFull returns the orientation average of the effective stiffness in
// full (3x3x3x3) form.
func (o *MoriTanaka) AverageFull(ave [][][][]float64, n2 [][]float64, n4 [][][][]float64) (err error) {
	return OrientationAverage(ave, o.Eff3333, n2, n4)
}

// CheckSym prints a diagnostic report on the elastic symmetries of the
// effective stiffness and returns whether all residuals are within tol.
// Multi-inclusion results with distinct aspect ratios carry a genuine
// major-symmetry residual, so tol should scale with the stiffness magnitude.
func (o *MoriTanaka) CheckSym(tol float64) (ok bool) {
	ok, _ = mandel.ReportSym(o.Eff3333, tol)
	return
}

// matCombine computes r := s·a + t·b for 6x6 matrices
func matCombine(r [][]float64, s float64, a [][]float64, t float64, b [][]float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r[i][j] = s*a[i][j] + t*b[i][j]
		}
	}
}

// matScale computes r := s·a for 6x6 matrices
func matScale(r [][]float64, s float64, a [][]float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			r[i][j] = s * a[i][j]
		}
	}
}

// matAddEye adds s·I to the 6x6 matrix a
func matAddEye(a [][]float64, s float64) {
	for i := 0; i < 6; i++ {
		a[i][i] += s
	}
}
