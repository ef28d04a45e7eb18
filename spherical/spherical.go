/*
 * spherical.go, part of gobasis.
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

// Package spherical builds the transformations from Cartesian to real spherical
// harmonic Gaussian functions.
package spherical

import (
	"math"

	basis "github.com/rmera/gobasis"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Transform returns the (2l+1) x (l+1)(l+2)/2 matrix that, multiplied from the left,
// turns normalized Cartesian Gaussians of angular momentum l (ordered as in
// basis.CartComponents) into normalized real solid harmonic Gaussians (ordered as
// in basis.SphComponents, i.e. m from -l to l).
// The solid harmonics follow Helgaker, Jørgensen and Olsen, Molecular
// Electronic-Structure Theory, eq. 6.4.47. Transform panics if l is negative.
func Transform(l int) *mat.Dense {
	if l < 0 {
		panic(basis.NewError(basis.ValueError, "negative angular momentum", "spherical.Transform"))
	}
	comps := basis.CartComponents(l)
	index := make(map[[3]int]int, len(comps))
	cartnorm := make([]float64, len(comps))
	dfl := basis.Factorial2(2*l - 1)
	for i, c := range comps {
		index[c] = i
		//converts the monomial into the normalized Cartesian function.
		cartnorm[i] = math.Sqrt(basis.Factorial2(2*c[0]-1) * basis.Factorial2(2*c[1]-1) * basis.Factorial2(2*c[2]-1) / dfl)
	}
	ret := mat.NewDense(basis.NumSph(l), len(comps), nil)
	for m := -l; m <= l; m++ {
		am := m
		vm2 := 0 //twice the v_m of the reference
		if m < 0 {
			am = -m
			vm2 = 1
		}
		n := math.Sqrt(2*factorial(l+am)*factorial(l-am)) / (math.Pow(2, float64(am)) * factorial(l))
		if m == 0 {
			n /= math.Sqrt2
		}
		for t := 0; t <= (l-am)/2; t++ {
			for u := 0; u <= t; u++ {
				for v2 := vm2; v2 <= am; v2 += 2 {
					sign := 1.0
					if (t+(v2-vm2)/2)%2 != 0 {
						sign = -1
					}
					c := sign * math.Pow(0.25, float64(t)) * binomial(l, t) * binomial(l-t, am+t) * binomial(t, u) * binomial(am, v2)
					key := [3]int{2*t + am - 2*u - v2, 2*u + v2, l - 2*t - am}
					i := index[key]
					ret.Set(m+l, i, ret.At(m+l, i)+n*c*cartnorm[i])
				}
			}
		}
	}
	return ret
}

// Components returns the labels of the spherical components produced by Transform(l).
func Components(l int) []string {
	return basis.SphComponents(l)
}

func factorial(n int) float64 {
	ret := 1.0
	for i := 2; i <= n; i++ {
		ret *= float64(i)
	}
	return ret
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return float64(combin.Binomial(n, k))
}
