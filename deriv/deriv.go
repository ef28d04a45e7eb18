/*
 * deriv.go, part of gobasis.
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

/*
Package deriv evaluates contracted Cartesian Gaussians, and their derivatives,
at a set of points.

The derivative of order o of x^n exp(-a x^2) is written as P_o(x) exp(-a x^2),
where P_0(x) = x^n and P_(k+1) = P_k' - 2 a x P_k. The coefficients of P_o are
built order by order (see Poly), so no recursion is involved and each polynomial
is computed once per primitive, axis and monomial exponent, independently of the
number of points. The 3D function is separable, so its derivative is the product
of the three 1D derivatives.
*/
package deriv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Poly returns the coefficients (the element i multiplies x^i) of the polynomial P such
// that P(x)exp(-alpha x^2) is the derivative of order "order" of x^n exp(-alpha x^2).
// The returned slice has n+order+1 elements.
func Poly(n, order int, alpha float64) []float64 {
	p := make([]float64, n+order+1)
	tmp := make([]float64, n+order+1)
	p[n] = 1
	deg := n
	for k := 0; k < order; k++ {
		for i := range tmp {
			tmp[i] = 0
		}
		for i := 0; i <= deg; i++ {
			c := p[i]
			if c == 0 {
				continue
			}
			if i > 0 {
				tmp[i-1] += float64(i) * c
			}
			tmp[i+1] -= 2 * alpha * c
		}
		p, tmp = tmp, p
		deg++
	}
	return p
}

// EvalPoly evaluates the polynomial with coefficients p at x.
func EvalPoly(p []float64, x float64) float64 {
	var ret float64
	for i := len(p) - 1; i >= 0; i-- {
		ret = ret*x + p[i]
	}
	return ret
}

// Contractions returns the derivatives of the given orders along x, y and z of a
// generalized contraction, evaluated at the points in coords (one point per row).
// The contraction is centered at center, has the Cartesian components in angmomComps,
// primitives with exponents alphas, a coefficient matrix coeffs (primitives x M
// segmented contractions) and the primitive normalization constants norm
// (Cartesian components x primitives).
// The result contains M matrices, one per segmented contraction, each with one row per
// Cartesian component and one column per point. If there are no points, the matrices
// are empty.
// Contractions doesn't validate its input. Orders must be non-negative.
func Contractions(coords mat.Matrix, orders [3]int, center [3]float64, angmomComps [][3]int, alphas []float64, coeffs, norm mat.Matrix) []*mat.Dense {
	var npoints int
	if coords != nil {
		npoints, _ = coords.Dims()
	}
	_, nseg := coeffs.Dims()
	nprim := len(alphas)
	ncart := len(angmomComps)
	ret := make([]*mat.Dense, nseg)
	if npoints == 0 || ncart == 0 {
		for i := range ret {
			ret[i] = &mat.Dense{}
		}
		return ret
	}
	for i := range ret {
		ret[i] = mat.NewDense(ncart, npoints, nil)
	}
	var maxn [3]int
	for _, c := range angmomComps {
		for ax := 0; ax < 3; ax++ {
			if c[ax] > maxn[ax] {
				maxn[ax] = c[ax]
			}
		}
	}
	//polys[p][ax][n] is the derivative polynomial for primitive p, axis ax and exponent n.
	polys := make([][3][][]float64, nprim)
	for p, a := range alphas {
		for ax := 0; ax < 3; ax++ {
			polys[p][ax] = make([][]float64, maxn[ax]+1)
			for n := 0; n <= maxn[ax]; n++ {
				polys[p][ax][n] = Poly(n, orders[ax], a)
			}
		}
	}
	c := make([]float64, nprim*nseg)
	for p := 0; p < nprim; p++ {
		for j := 0; j < nseg; j++ {
			c[p*nseg+j] = coeffs.At(p, j)
		}
	}
	nrm := make([]float64, ncart*nprim)
	for k := 0; k < ncart; k++ {
		for p := 0; p < nprim; p++ {
			nrm[k*nprim+p] = norm.At(k, p)
		}
	}
	var vals [3][]float64
	for ax := 0; ax < 3; ax++ {
		vals[ax] = make([]float64, maxn[ax]+1)
	}
	acc := make([]float64, nseg*ncart)
	var d [3]float64
	for pt := 0; pt < npoints; pt++ {
		for ax := 0; ax < 3; ax++ {
			d[ax] = coords.At(pt, ax) - center[ax]
		}
		r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		for i := range acc {
			acc[i] = 0
		}
		for p, a := range alphas {
			g := math.Exp(-a * r2)
			if g == 0 {
				//underflow, the primitive doesn't contribute.
				continue
			}
			for ax := 0; ax < 3; ax++ {
				for n, poly := range polys[p][ax] {
					vals[ax][n] = EvalPoly(poly, d[ax])
				}
			}
			for k, comp := range angmomComps {
				v := g * nrm[k*nprim+p] * vals[0][comp[0]] * vals[1][comp[1]] * vals[2][comp[2]]
				if v == 0 {
					continue
				}
				for j := 0; j < nseg; j++ {
					acc[j*ncart+k] += c[p*nseg+j] * v
				}
			}
		}
		for j := 0; j < nseg; j++ {
			for k := 0; k < ncart; k++ {
				ret[j].Set(k, pt, acc[j*ncart+k])
			}
		}
	}
	return ret
}
