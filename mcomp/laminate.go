// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Laminate averages the planar stiffnesses of n laminas, each rotated by
// its own angle, into an effective laminate stiffness (laminate analogy
// approach, [4] pp. 155 ff.)
type Laminate struct {

	// input
	stiff  [][][]float64 // 3x3 stiffness of each lamina [Pa]
	angles []float64     // rotation angle of each lamina [rad]
	vfracs []float64     // volume fraction of each lamina
}

// NewLaminate returns a laminate made of n laminas
//  stiffnesses -- 3x3 planar stiffness of each lamina [Pa]
//  angles      -- rotation angle of each lamina [rad]
//  vfracs      -- volume fraction of each lamina (nil for uniform weights)
func NewLaminate(stiffnesses [][][]float64, angles, vfracs []float64) (o *Laminate, err error) {
	if len(stiffnesses) != len(angles) {
		return nil, dimErr("dimensions of stiffnesses and angles do not match: %d, %d", len(stiffnesses), len(angles))
	}
	if vfracs == nil {
		vfracs = make([]float64, len(stiffnesses))
		for i := range vfracs {
			vfracs[i] = 1.0 / float64(len(stiffnesses))
		}
	} else if len(vfracs) != len(stiffnesses) {
		return nil, dimErr("dimensions of stiffnesses and vfracs do not match: %d, %d", len(stiffnesses), len(vfracs))
	}
	o = &Laminate{stiffnesses, angles, vfracs}
	return
}

// Effective3 computes the effective planar stiffness of the laminate [Pa]
//  C -- 3x3 result matrix
func (o *Laminate) Effective3(C [][]float64) {
	ave := make([]float64, 6)
	rot := make([]float64, 6)
	for i := range o.stiff {
		RotateStiffness(rot, o.stiff[i], o.angles[i])
		for j := 0; j < 6; j++ {
			ave[j] += o.vfracs[i] * rot[j]
		}
	}
	C[0][0], C[0][1], C[0][2] = ave[0], ave[2], ave[4]
	C[1][0], C[1][1], C[1][2] = ave[2], ave[1], ave[5]
	C[2][0], C[2][1], C[2][2] = ave[4], ave[5], ave[3]
}

// RotateStiffness rotates a planar lamina stiffness by angle and returns the
// six independent components of the rotated matrix
//  res -- {Q11, Q22, Q12, Q66, Q16, Q26} of the rotated stiffness
//  Q   -- 3x3 lamina stiffness [Pa]
func RotateStiffness(res []float64, Q [][]float64, angle float64) {
	m := math.Cos(angle)
	n := math.Sin(angle)
	m2, n2 := m*m, n*n
	m3, n3 := m2*m, n2*n
	m4, n4 := m2*m2, n2*n2
	rot := [][]float64{
		{m4, n4, 2.0 * m2 * n2, 4.0 * m2 * n2},
		{n4, m4, 2.0 * m2 * n2, 4.0 * m2 * n2},
		{m2 * n2, m2 * n2, m4 + n4, -4.0 * m2 * n2},
		{m2 * n2, m2 * n2, -2.0 * m2 * n2, (m2 - n2) * (m2 - n2)},
		{m3 * n, -m * n3, m*n3 - m3*n, 2.0 * (m*n3 - m3*n)},
		{m * n3, -m3 * n, m3*n - m*n3, 2.0 * (m3*n - m*n3)},
	}
	flat := []float64{Q[0][0], Q[1][1], Q[0][1], Q[2][2]}
	la.MatVecMul(res, 1, rot, flat)
}
