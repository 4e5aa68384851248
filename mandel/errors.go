// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mandel

import "github.com/cpmech/gosl/io"

// ShapeError indicates that a tensor or matrix has the wrong rank or shape
type ShapeError struct {
	Msg string // message
}

// Error returns the error message
func (o *ShapeError) Error() string {
	return o.Msg
}

// shapeErr returns a new ShapeError with a formatted message
func shapeErr(msg string, prm ...interface{}) *ShapeError {
	return &ShapeError{io.Sf(msg, prm...)}
}
