// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/compo", ".mat", true)
	cname := io.ArgToString(1, "")
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGohom -- Mean-Field Homogenization of Composites\n")
		io.Pf("Copyright 2016 The Gohom Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"material database path", "fnamepath", fnamepath,
			"composite name (empty means all)", "cname", cname,
			"show messages", "verbose", verbose,
		))
	}

	// read material database
	dir, fn := filepath.Split(fnamepath)
	mdb, err := inp.ReadMat(dir, fn)
	if err != nil {
		chk.Panic("cannot read material database:\n%v", err)
	}

	// homogenize composites
	for _, c := range mdb.Composites {
		if cname != "" && c.Name != cname {
			continue
		}
		mt, err := mdb.Homogenize(c.Name)
		if err != nil {
			chk.Panic("cannot homogenize composite %q:\n%v", c.Name, err)
		}
		io.Pfyel("\ncomposite %q\n", c.Name)
		la.PrintMat("effective stiffness [Pa]", mt.Eff66, "%13.5e", false)
		io.Pf("\n")
		mt.CheckSym(1e-4 * mt.Eff66[0][0])
	}
}
