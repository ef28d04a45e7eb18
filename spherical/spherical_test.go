/*
 * spherical_test.go, part of gobasis.
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

package spherical

import (
	"math"
	"testing"

	basis "github.com/rmera/gobasis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// cartOverlap returns the overlap matrix of normalized Cartesian Gaussians with
// the same center, exponent and angular momentum l.
func cartOverlap(l int) *mat.Dense {
	comps := basis.CartComponents(l)
	S := mat.NewDense(len(comps), len(comps), nil)
	for i, a := range comps {
		for j, b := range comps {
			s := 1.0
			for k := 0; k < 3; k++ {
				if (a[k]+b[k])%2 != 0 {
					s = 0
					break
				}
				s *= basis.Factorial2(a[k]+b[k]-1) / math.Sqrt(basis.Factorial2(2*a[k]-1)*basis.Factorial2(2*b[k]-1))
			}
			S.Set(i, j, s)
		}
	}
	return S
}

func TestLowAngmom(t *testing.T) {
	t.Parallel()
	assert.True(t, mat.Equal(Transform(0), mat.NewDense(1, 1, []float64{1})))
	//m=-1 is y, m=0 is z, m=1 is x.
	p := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	})
	assert.True(t, mat.EqualApprox(Transform(1), p, 1e-14), "p transform:\n%v", mat.Formatted(Transform(1)))
}

func TestD(t *testing.T) {
	t.Parallel()
	s3 := math.Sqrt(3)
	//columns: xx xy xz yy yz zz
	want := mat.NewDense(5, 6, []float64{
		0, 1, 0, 0, 0, 0, //xy
		0, 0, 0, 0, 1, 0, //yz
		-0.5, 0, 0, -0.5, 0, 1, //z^2
		0, 0, 1, 0, 0, 0, //xz
		s3 / 2, 0, 0, -s3 / 2, 0, 0, //x^2-y^2
	})
	got := Transform(2)
	assert.True(t, mat.EqualApprox(got, want, 1e-13), "d transform:\n%v", mat.Formatted(got))
}

func TestOrthonormal(t *testing.T) {
	t.Parallel()
	for l := 0; l <= 6; l++ {
		T := Transform(l)
		r, c := T.Dims()
		require.Equal(t, basis.NumSph(l), r)
		require.Equal(t, basis.NumCart(l), c)
		var tmp, res mat.Dense
		tmp.Mul(T, cartOverlap(l))
		res.Mul(&tmp, T.T())
		eye := mat.NewDiagDense(r, nil)
		for i := 0; i < r; i++ {
			eye.SetDiag(i, 1)
		}
		assert.True(t, mat.EqualApprox(&res, eye, 1e-10), "l=%d\n%v", l, mat.Formatted(&res))
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"s2", "s1", "c0", "c1", "c2"}, Components(2))
	assert.Panics(t, func() { Transform(-1) })
}
