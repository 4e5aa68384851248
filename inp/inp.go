// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input database of constituent materials and
// composite definitions, read from .mat JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gohom/mcomp"
	"github.com/cpmech/gohom/melast"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds one constituent material definition
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of elasticity model; e.g. "iso", "tiso"
	Prms  fun.Prms `json:"prms"`  // model parameters

	// derived
	Elast melast.Model `json:"-"` // pointer to allocated elasticity model
}

// Composite holds one composite (matrix + inclusions) definition
type Composite struct {
	Name    string    `json:"name"`    // name of composite
	Matrix  string    `json:"matrix"`  // name of matrix material
	Fibers  []string  `json:"fibers"`  // names of inclusion materials
	Vfracs  []float64 `json:"vfracs"`  // inclusion volume fractions
	Aratios []float64 `json:"aratios"` // inclusion aspect ratios
}

// MatDb implements a database of materials and composites
type MatDb struct {

	// input
	Materials  []*Material  `json:"materials"`  // all materials
	Composites []*Composite `json:"composites"` // all composites

	// derived
	mats  map[string]*Material
	comps map[string]*Composite
}

// ReadMat reads a material/composite database from a .mat JSON file and
// allocates and initialises all elasticity models
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	mdb = new(MatDb)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// maps
	mdb.mats = make(map[string]*Material)
	mdb.comps = make(map[string]*Composite)
	for _, m := range mdb.Materials {
		if _, ok := mdb.mats[m.Name]; ok {
			return nil, chk.Err("material %q is defined twice", m.Name)
		}
		mdb.mats[m.Name] = m
	}
	for _, c := range mdb.Composites {
		if _, ok := mdb.comps[c.Name]; ok {
			return nil, chk.Err("composite %q is defined twice", c.Name)
		}
		mdb.comps[c.Name] = c
	}

	// alloc/init elasticity models
	for _, m := range mdb.Materials {
		m.Elast, err = melast.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Elast.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material or nil if not present
func (o *MatDb) Get(name string) *Material {
	return o.mats[name]
}

// GetComposite returns a composite definition or nil if not present
func (o *MatDb) GetComposite(name string) *Composite {
	return o.comps[name]
}

// Homogenize builds the Mori-Tanaka homogenizer for a named composite.
// Composites with one inclusion type use the single-inclusion path; others
// use the multi-inclusion path.
func (o *MatDb) Homogenize(name string) (mt *mcomp.MoriTanaka, err error) {
	c := o.GetComposite(name)
	if c == nil {
		return nil, chk.Err("composite %q is not available in database", name)
	}
	matrix := o.Get(c.Matrix)
	if matrix == nil {
		return nil, chk.Err("matrix material %q of composite %q is not available in database", c.Matrix, name)
	}
	fibers := make([]melast.Model, len(c.Fibers))
	for i, fname := range c.Fibers {
		f := o.Get(fname)
		if f == nil {
			return nil, chk.Err("fiber material %q of composite %q is not available in database", fname, name)
		}
		fibers[i] = f.Elast
	}
	if len(fibers) == 1 && len(c.Vfracs) == 1 && len(c.Aratios) == 1 {
		return mcomp.NewMoriTanaka(matrix.Elast, fibers[0], c.Vfracs[0], c.Aratios[0])
	}
	return mcomp.NewMoriTanakaMulti(matrix.Elast, fibers, c.Vfracs, c.Aratios)
}

// String prints a json formatted version of the database
func (o MatDb) String() string {
	b, err := json.MarshalIndent(struct {
		Materials  []*Material  `json:"materials"`
		Composites []*Composite `json:"composites"`
	}{o.Materials, o.Composites}, "", "  ")
	if err != nil {
		return "[cannot marshal database]"
	}
	return string(b)
}
