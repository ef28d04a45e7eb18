/*
 * shell.go, part of gobasis.
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

package basis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// CoordType is the coordinate system in which the functions of a shell are given.
type CoordType string

const (
	Cartesian CoordType = "cartesian"
	Spherical CoordType = "spherical"
)

// Check returns a ValueError if c is not one of the supported coordinate types.
func (c CoordType) Check() error {
	if c != Cartesian && c != Spherical {
		return NewError(ValueError, fmt.Sprintf("coordinate type must be %q or %q, got %q", Cartesian, Spherical, string(c)), "CoordType.Check")
	}
	return nil
}

// Shell is a generalized contraction shell: a set of Gaussian primitives sharing
// center, angular momentum and exponents, contracted with one or more sets of
// coefficients (segmented contractions).
// A Shell is not modified after creation, and its methods return copies.
type Shell struct {
	angmom  int
	center  [3]float64
	exps    []float64
	coeffs  *mat.Dense //primitives x segmented contractions
	icenter int        //index of the atom carrying the shell, -1 if unknown
}

// NewShell returns a new shell with angular momentum angmom, centered at center, with the
// given exponents and a coefficient matrix with one row per primitive and one column per
// segmented contraction. The data is copied. The index of the atom the shell belongs to
// can be given as icenter.
func NewShell(angmom int, center [3]float64, coeffs mat.Matrix, exps []float64, icenter ...int) (*Shell, error) {
	S := &Shell{angmom: angmom, center: center, icenter: -1}
	if len(icenter) > 0 {
		S.icenter = icenter[0]
	}
	S.exps = make([]float64, len(exps))
	copy(S.exps, exps)
	if coeffs != nil {
		if r, c := coeffs.Dims(); r > 0 && c > 0 {
			S.coeffs = mat.DenseCopyOf(coeffs)
		}
	}
	if err := S.Check(); err != nil {
		return nil, ErrDecorate(err, "NewShell")
	}
	return S, nil
}

// NewSegmentedShell is like NewShell, for shells with only one segmented contraction.
func NewSegmentedShell(angmom int, center [3]float64, coeffs, exps []float64, icenter ...int) (*Shell, error) {
	if len(coeffs) == 0 {
		return nil, NewError(TypeError, "no contraction coefficients given", "NewSegmentedShell")
	}
	c := mat.NewDense(len(coeffs), 1, append([]float64(nil), coeffs...))
	return NewShell(angmom, center, c, exps, icenter...)
}

// Check returns a TypeError if the shell is not consistent: exponents, coefficients,
// angular momentum and center must all be present and agree with each other.
// Non-positive exponents are a ValueError.
func (S *Shell) Check() error {
	if S == nil {
		return NewError(TypeError, "nil shell", "Shell.Check")
	}
	if S.angmom < 0 {
		return NewError(TypeError, fmt.Sprintf("negative angular momentum %d", S.angmom), "Shell.Check")
	}
	if len(S.exps) == 0 {
		return NewError(TypeError, "shell without exponents", "Shell.Check")
	}
	if S.coeffs == nil {
		return NewError(TypeError, "shell without contraction coefficients", "Shell.Check")
	}
	if r, _ := S.coeffs.Dims(); r != len(S.exps) {
		return NewError(TypeError, fmt.Sprintf("%d exponents but %d rows of coefficients", len(S.exps), r), "Shell.Check")
	}
	for _, v := range S.center {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewError(TypeError, fmt.Sprintf("non-finite center %v", S.center), "Shell.Check")
		}
	}
	for _, v := range S.exps {
		if !(v > 0) || math.IsInf(v, 0) {
			return NewError(ValueError, fmt.Sprintf("exponents must be positive and finite, got %v", v), "Shell.Check")
		}
	}
	return nil
}

// Angmom returns the angular momentum of the shell.
func (S *Shell) Angmom() int { return S.angmom }

// Center returns the center of the shell.
func (S *Shell) Center() [3]float64 { return S.center }

// ICenter returns the index of the atom carrying the shell, or -1.
func (S *Shell) ICenter() int { return S.icenter }

// Exps returns a copy of the exponents of the primitives.
func (S *Shell) Exps() []float64 {
	ret := make([]float64, len(S.exps))
	copy(ret, S.exps)
	return ret
}

// Coeffs returns a copy of the coefficient matrix (primitives x segmented contractions).
func (S *Shell) Coeffs() *mat.Dense {
	return mat.DenseCopyOf(S.coeffs)
}

// NumPrim returns the number of primitives in the shell.
func (S *Shell) NumPrim() int { return len(S.exps) }

// NumSeg returns the number of segmented contractions in the shell.
func (S *Shell) NumSeg() int {
	_, c := S.coeffs.Dims()
	return c
}

// NumCart returns the number of Cartesian components of each segmented contraction.
func (S *Shell) NumCart() int { return NumCart(S.angmom) }

// NumSph returns the number of spherical components of each segmented contraction.
func (S *Shell) NumSph() int { return NumSph(S.angmom) }

// NumFunctions returns the number of basis functions the shell contributes
// in the coordinate system ct.
func (S *Shell) NumFunctions(ct CoordType) int {
	if ct == Cartesian {
		return S.NumSeg() * S.NumCart()
	}
	return S.NumSeg() * S.NumSph()
}

// AngmomComponentsCart returns the Cartesian components of the shell. See CartComponents.
func (S *Shell) AngmomComponentsCart() [][3]int { return CartComponents(S.angmom) }

// AngmomComponentsSph returns the labels of the spherical components of the shell. See SphComponents.
func (S *Shell) AngmomComponentsSph() []string { return SphComponents(S.angmom) }

// NormPrimCart returns the normalization constants of the Cartesian primitives, as a
// matrix with one row per Cartesian component and one column per primitive.
func (S *Shell) NormPrimCart() *mat.Dense {
	comps := S.AngmomComponentsCart()
	ret := mat.NewDense(len(comps), len(S.exps), nil)
	l := float64(S.angmom)
	for i, c := range comps {
		den := math.Sqrt(Factorial2(2*c[0]-1) * Factorial2(2*c[1]-1) * Factorial2(2*c[2]-1))
		for j, a := range S.exps {
			ret.Set(i, j, math.Pow(2*a/math.Pi, 0.75)*math.Pow(4*a, l/2)/den)
		}
	}
	return ret
}

// primOverlap returns the overlap of two normalized primitives with the same
// center and Cartesian component, and exponents a and b.
func primOverlap(a, b float64, angmom int) float64 {
	return math.Pow(2*math.Sqrt(a*b)/(a+b), float64(angmom)+1.5)
}

// NormCont returns the normalization constant of each segmented contraction,
// i.e. the factor that makes the contraction of normalized primitives have unit norm.
// A contraction with all coefficients equal to zero can't be normalized, its constant is 1.
func (S *Shell) NormCont() []float64 {
	p, m := S.coeffs.Dims()
	ret := make([]float64, m)
	for k := 0; k < m; k++ {
		var s float64
		for i := 0; i < p; i++ {
			for j := 0; j < p; j++ {
				s += S.coeffs.At(i, k) * S.coeffs.At(j, k) * primOverlap(S.exps[i], S.exps[j], S.angmom)
			}
		}
		if !(s > 0) {
			ret[k] = 1
			continue
		}
		ret[k] = 1 / math.Sqrt(s)
	}
	return ret
}

// Normalized returns a copy of the shell with the coefficients of each segmented
// contraction scaled by its normalization constant.
func (S *Shell) Normalized() *Shell {
	norms := S.NormCont()
	c := S.Coeffs()
	p, _ := c.Dims()
	for i := 0; i < p; i++ {
		row := c.RawRowView(i)
		for k, n := range norms {
			row[k] *= n
		}
	}
	return &Shell{angmom: S.angmom, center: S.center, exps: S.Exps(), coeffs: c, icenter: S.icenter}
}

// String returns a short description of the shell.
func (S *Shell) String() string {
	e := make([]string, 0, len(S.exps))
	for _, v := range S.exps {
		e = append(e, fmt.Sprintf("%g", v))
	}
	return fmt.Sprintf("%c shell at (%.4f %.4f %.4f), %d segmented contraction(s), exponents: %s",
		AngmomLetter(S.angmom), S.center[0], S.center[1], S.center[2], S.NumSeg(), strings.Join(e, " "))
}
