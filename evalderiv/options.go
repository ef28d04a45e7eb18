/*
 * options.go, part of gobasis.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package evalderiv

import (
	"runtime"

	basis "github.com/rmera/gobasis"
	"gonum.org/v1/gonum/mat"
)

// Options contains the optional parameters of the basis evaluation functions.
type Options struct {
	transform  mat.Matrix
	coordTypes []basis.CoordType
	cpus       int
	normalize  bool
	perShell   bool //coordTypes must have one element per shell
}

// DefaultOptions returns options for evaluating spherical basis functions without
// transformation, using all logical CPUs.
func DefaultOptions() *Options {
	r := new(Options)
	r.coordTypes = []basis.CoordType{basis.Spherical}
	r.cpus = runtime.NumCPU()
	return r
}

// Transform returns the matrix used to build linear combinations of the basis functions,
// and sets it to a new value, if given. A nil matrix means no transformation.
// The matrix has one row per linear combination (e.g. per molecular orbital) and one
// column per basis function.
func (O *Options) Transform(t ...mat.Matrix) mat.Matrix {
	if len(t) > 0 {
		O.transform = t[0]
	}
	return O.transform
}

// CoordTypes returns the coordinate types of the shells, and sets them to new values,
// if given. A single coordinate type applies to all shells. Otherwise, there must be
// one coordinate type per shell.
func (O *Options) CoordTypes(ct ...basis.CoordType) []basis.CoordType {
	if len(ct) > 0 {
		O.coordTypes = append([]basis.CoordType(nil), ct...)
		O.perShell = false
	}
	return O.coordTypes
}

// ShellCoordTypes is like CoordTypes, but the coordinate types given are always taken
// as one per shell, even if there is only one of them, so a list with the wrong number
// of elements gives a basis.TypeError on evaluation instead of being applied to all shells.
func (O *Options) ShellCoordTypes(ct ...basis.CoordType) []basis.CoordType {
	if len(ct) > 0 {
		O.coordTypes = append([]basis.CoordType(nil), ct...)
		O.perShell = true
	}
	return O.coordTypes
}

// Cpus returns the number of gorutines to be used,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Normalize returns whether the contractions are normalized before evaluation,
// and sets it to a new value, if given.
func (O *Options) Normalize(n ...bool) bool {
	if len(n) > 0 {
		O.normalize = n[0]
	}
	return O.normalize
}
