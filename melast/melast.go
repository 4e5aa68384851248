// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package melast implements elastic constitutive data for composite
// constituents. Each model delivers the reduced (Mandel) stiffness matrix
// in Pa and the Poisson ratio used when the material acts as the matrix
// phase of a homogenization.
package melast

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for elastic constitutive models
type Model interface {
	Init(prms fun.Prms) error // initialises model; no usable object on error
	GetPrms() fun.Prms        // gets (an example) of parameters
	Stiffness() [][]float64   // returns the 6x6 reduced stiffness [Pa]
	Poisson() float64         // returns the Poisson ratio (matrix-phase contract)
}

// New returns a new elasticity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'melast' database", name)
	}
	return allocator(), nil
}

// allocators holds all available elasticity models; modelname => allocator
var allocators = map[string]func() Model{}
