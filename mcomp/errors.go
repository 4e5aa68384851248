// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import "github.com/cpmech/gosl/io"

// DomainError indicates an input outside the analytically valid range of a
// closed-form formula; e.g. a Poisson ratio not in [0, 0.5)
type DomainError struct {
	Msg string // message
}

// Error returns the error message
func (o *DomainError) Error() string {
	return o.Msg
}

// DimensionMismatchError indicates input lists with disagreeing lengths
type DimensionMismatchError struct {
	Msg string // message
}

// Error returns the error message
func (o *DimensionMismatchError) Error() string {
	return o.Msg
}

// SingularMatrixError indicates a numerically singular matrix inversion
type SingularMatrixError struct {
	Msg string // message
}

// Error returns the error message
func (o *SingularMatrixError) Error() string {
	return o.Msg
}

func domErr(msg string, prm ...interface{}) *DomainError {
	return &DomainError{io.Sf(msg, prm...)}
}

func dimErr(msg string, prm ...interface{}) *DimensionMismatchError {
	return &DimensionMismatchError{io.Sf(msg, prm...)}
}

func singErr(msg string, prm ...interface{}) *SingularMatrixError {
	return &SingularMatrixError{io.Sf(msg, prm...)}
}
