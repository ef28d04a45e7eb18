/*
 * gonum.go, part of gobasis.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of points in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		//gonum doesn't allow empty matrices, so an empty set of points
		//is represented by a zero-value Dense.
		return &Matrix{&mat.Dense{}}, nil
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{&mat.Dense{}}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// Check returns an error if A is not a Nx3 matrix.
func Check(A mat.Matrix) error {
	if A == nil {
		return Error{string(ErrNilMatrix), []string{"Check"}, true}
	}
	if m, ok := A.(*Matrix); ok {
		if m == nil {
			return Error{string(ErrNilMatrix), []string{"Check"}, true}
		}
		if m.Dense == nil {
			return Error{string(ErrNilMatrix), []string{"Check"}, true}
		}
		if m.IsEmpty() {
			return nil
		}
	}
	if d, ok := A.(*mat.Dense); ok {
		if d == nil {
			return Error{string(ErrNilMatrix), []string{"Check"}, true}
		}
		if d.IsEmpty() {
			return nil
		}
	}
	_, c := A.Dims()
	if c != 3 {
		return Error{fmt.Sprintf("%s: got %d columns", ErrNotXx3Matrix, c), []string{"Check"}, true}
	}
	return nil
}

// NVecs returns the number of vecs in F. It panics if F doesn't have 3 columns.
func (F *Matrix) NVecs() int {
	if F.Dense == nil || F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//Errors

// Error is the error type for the v3 package. It satisfies the gobasis Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goBasis/v3: A v3.Matrix should have 3 columns")
	ErrNilMatrix       = PanicMsg("goBasis/v3: nil matrix")
	ErrShape           = PanicMsg("goBasis/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goBasis/v3: index out of range")
)
