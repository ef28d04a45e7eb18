/*
 * gocoords.go, part of gobasis.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SubVec substracts the vector vec from each vector of A, putting the result
// on the receiver. F and A can be the same matrix. This is what one uses to
// obtain the displacements of a set of points from a center.
func (F *Matrix) SubVec(A *Matrix, vec [3]float64) {
	ar := A.NVecs()
	if F.NVecs() != ar {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		a := A.RawRowView(i)
		f := F.RawRowView(i)
		for k := 0; k < 3; k++ {
			f[k] = a[k] - vec[k]
		}
	}
}

// AddVec adds the vector vec to each vector of A, putting the result on the receiver.
func (F *Matrix) AddVec(A *Matrix, vec [3]float64) {
	neg := [3]float64{-vec[0], -vec[1], -vec[2]}
	F.SubVec(A, neg)
}

// SomeVecs puts on the receiver all the vectors of A with indexes in clist,
// in the same order as clist. It panics if F has the wrong number of vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for i, v := range clist {
		copy(F.RawRowView(i), A.RawRowView(v))
	}
}

// Line returns n equally spaced points going from "from" to "to", both included.
// If n is 1, only "from" is returned.
func Line(from, to [3]float64, n int) *Matrix {
	ret := Zeros(n)
	if n == 0 {
		return ret
	}
	tmp := make([]float64, n)
	for k := 0; k < 3; k++ {
		if n == 1 {
			tmp[0] = from[k]
		} else {
			floats.Span(tmp, from[k], to[k])
		}
		for i, v := range tmp {
			ret.Set(i, k, v)
		}
	}
	return ret
}

// Distances returns the distance of each vector in F to the point p.
func (F *Matrix) Distances(p [3]float64) []float64 {
	n := F.NVecs()
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		ret[i] = floats.Distance(F.RawRowView(i), p[:], 2)
	}
	return ret
}

// String returns a neat string representation of the matrix, one vector per line.
func (F *Matrix) String() string {
	n := F.NVecs()
	s := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := F.RawRowView(i)
		s = append(s, fmt.Sprintf("%8.4f %8.4f %8.4f", v[0], v[1], v[2]))
	}
	return strings.Join(s, "\n")
}
