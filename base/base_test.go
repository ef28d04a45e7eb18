/*
 * base_test.go, part of gobasis.
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

package base

import (
	"errors"
	"sync/atomic"
	"testing"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// fakeEv fills the array of segment j of the shell centered on atom c with
// 1000*c + 100*j + 10*row + point.
type fakeEv struct {
	fail  int //icenter of the shell that fails, -1 for none
	calls int32
}

func (f *fakeEv) ConstructArrayContraction(sh *basis.Shell, coords mat.Matrix, orders []int) ([]*mat.Dense, error) {
	atomic.AddInt32(&f.calls, 1)
	if sh.ICenter() == f.fail {
		return nil, basis.NewError(basis.ValueError, "failed on purpose", "fakeEv")
	}
	n, _ := coords.Dims()
	ret := make([]*mat.Dense, sh.NumSeg())
	for j := range ret {
		if n == 0 {
			ret[j] = &mat.Dense{}
			continue
		}
		ret[j] = mat.NewDense(sh.NumCart(), n, nil)
		for r := 0; r < sh.NumCart(); r++ {
			for p := 0; p < n; p++ {
				ret[j].Set(r, p, float64(1000*sh.ICenter()+100*j+10*r+p))
			}
		}
	}
	return ret, nil
}

func testShells(Te *testing.T) []*basis.Shell {
	Te.Helper()
	s, err := basis.NewSegmentedShell(0, [3]float64{}, []float64{1}, []float64{1}, 0)
	require.NoError(Te, err)
	p, err := basis.NewShell(1, [3]float64{}, mat.NewDense(1, 2, []float64{1, 1}), []float64{1}, 1)
	require.NoError(Te, err)
	d, err := basis.NewSegmentedShell(2, [3]float64{}, []float64{1}, []float64{1}, 2)
	require.NoError(Te, err)
	return []*basis.Shell{s, p, d}
}

var points = mat.NewDense(2, 3, []float64{0, 0, 0, 1, 1, 1})

func TestNewOneIndex(Te *testing.T) {
	shells := testShells(Te)
	_, err := NewOneIndex(nil, shells, 1)
	assert.True(Te, errors.Is(err, basis.TypeError))
	_, err = NewOneIndex(&fakeEv{fail: -1}, nil, 1)
	assert.True(Te, errors.Is(err, basis.TypeError))
	_, err = NewOneIndex(&fakeEv{fail: -1}, []*basis.Shell{shells[0], nil}, 1)
	assert.True(Te, errors.Is(err, basis.TypeError))
	B, err := NewOneIndex(&fakeEv{fail: -1}, shells, 0)
	require.NoError(Te, err)
	assert.Len(Te, B.Shells(), 3)
	n, err := B.NumFunctions(basis.Cartesian)
	require.NoError(Te, err)
	assert.Equal(Te, 1+2*3+6, n)
	n, err = B.NumFunctions(basis.Spherical)
	require.NoError(Te, err)
	assert.Equal(Te, 1+2*3+5, n)
	n, err = B.NumFunctions(basis.Spherical, basis.Cartesian, basis.Cartesian)
	require.NoError(Te, err)
	assert.Equal(Te, 13, n)
	_, err = B.NumFunctions(basis.Spherical, basis.Cartesian)
	assert.True(Te, errors.Is(err, basis.TypeError))
	_, err = B.NumFunctions(basis.CoordType("polar"))
	assert.True(Te, errors.Is(err, basis.ValueError))
}

func TestCartesian(Te *testing.T) {
	for _, cpus := range []int{1, 4} {
		B, err := NewOneIndex(&fakeEv{fail: -1}, testShells(Te), cpus)
		require.NoError(Te, err)
		arr, err := B.Cartesian(points, []int{0, 0, 0})
		require.NoError(Te, err)
		r, c := arr.Dims()
		require.Equal(Te, 13, r)
		require.Equal(Te, 2, c)
		//s, then both segments of p, then d.
		want := []float64{0, 1000, 1010, 1020, 1100, 1110, 1120, 2000, 2010, 2020, 2030, 2040, 2050}
		assert.Equal(Te, want, mat.Col(nil, 0, arr))
		assert.Equal(Te, 2051.0, arr.At(12, 1))
	}
}

func TestSpherical(Te *testing.T) {
	B, err := NewOneIndex(&fakeEv{fail: -1}, testShells(Te), 2)
	require.NoError(Te, err)
	cart, err := B.Cartesian(points, []int{0, 0, 0})
	require.NoError(Te, err)
	sph, err := B.Spherical(points, []int{0, 0, 0})
	require.NoError(Te, err)
	r, _ := sph.Dims()
	require.Equal(Te, 12, r)
	assert.Equal(Te, cart.At(0, 1), sph.At(0, 1))
	//p functions come out as y, z, x.
	assert.InDelta(Te, 1010.0, sph.At(1, 0), 1e-12)
	assert.InDelta(Te, 1020.0, sph.At(2, 0), 1e-12)
	assert.InDelta(Te, 1000.0, sph.At(3, 0), 1e-12)
	var want mat.Dense
	want.Mul(spherical.Transform(2), cart.Slice(7, 13, 0, 2))
	assert.True(Te, mat.EqualApprox(&want, sph.Slice(7, 12, 0, 2), 1e-9))
}

func TestMix(Te *testing.T) {
	B, err := NewOneIndex(&fakeEv{fail: -1}, testShells(Te), 2)
	require.NoError(Te, err)
	cart, err := B.Cartesian(points, []int{0, 0, 0})
	require.NoError(Te, err)
	sph, err := B.Spherical(points, []int{0, 0, 0})
	require.NoError(Te, err)
	mix, err := B.Mix([]basis.CoordType{basis.Spherical, basis.Cartesian, basis.Spherical}, points, []int{0, 0, 0})
	require.NoError(Te, err)
	r, _ := mix.Dims()
	require.Equal(Te, 1+6+5, r)
	assert.True(Te, mat.Equal(cart.Slice(1, 7, 0, 2), mix.Slice(1, 7, 0, 2)))
	assert.True(Te, mat.Equal(sph.Slice(7, 12, 0, 2), mix.Slice(7, 12, 0, 2)))

	_, err = B.Mix([]basis.CoordType{basis.Spherical}, points, []int{0, 0, 0})
	assert.True(Te, errors.Is(err, basis.TypeError))
	_, err = B.Mix([]basis.CoordType{basis.Spherical, "polar", basis.Cartesian}, points, []int{0, 0, 0})
	assert.True(Te, errors.Is(err, basis.ValueError))
}

func TestLincomb(Te *testing.T) {
	B, err := NewOneIndex(&fakeEv{fail: -1}, testShells(Te), 2)
	require.NoError(Te, err)
	cart, err := B.Cartesian(points, []int{0, 0, 0})
	require.NoError(Te, err)
	T := mat.NewDense(2, 13, nil)
	T.Set(0, 0, 1)
	T.Set(0, 12, 2)
	T.Set(1, 3, -1)
	lc, err := B.Lincomb(T, []basis.CoordType{basis.Cartesian}, points, []int{0, 0, 0})
	require.NoError(Te, err)
	r, c := lc.Dims()
	require.Equal(Te, 2, r)
	require.Equal(Te, 2, c)
	assert.Equal(Te, cart.At(0, 1)+2*cart.At(12, 1), lc.At(0, 1))
	assert.Equal(Te, -cart.At(3, 0), lc.At(1, 0))

	_, err = B.Lincomb(mat.NewDense(2, 12, nil), []basis.CoordType{basis.Cartesian}, points, []int{0, 0, 0})
	assert.True(Te, errors.Is(err, basis.TypeError))
	_, err = B.Lincomb(nil, []basis.CoordType{basis.Cartesian}, points, []int{0, 0, 0})
	assert.True(Te, errors.Is(err, basis.TypeError))
	lc, err = B.Lincomb(mat.NewDense(1, 12, nil), []basis.CoordType{basis.Spherical}, points, []int{0, 0, 0})
	require.NoError(Te, err)
	r, _ = lc.Dims()
	assert.Equal(Te, 1, r)
}

func TestEvaluatorError(Te *testing.T) {
	ev := &fakeEv{fail: 1}
	B, err := NewOneIndex(ev, testShells(Te), 1)
	require.NoError(Te, err)
	arr, err := B.Cartesian(points, []int{0, 0, 0})
	require.Error(Te, err)
	assert.Nil(Te, arr)
	assert.True(Te, errors.Is(err, basis.ValueError))
	//with one goroutine, the shell after the failing one is never evaluated.
	assert.Equal(Te, int32(2), atomic.LoadInt32(&ev.calls))
}

func TestNoPoints(Te *testing.T) {
	B, err := NewOneIndex(&fakeEv{fail: -1}, testShells(Te), 2)
	require.NoError(Te, err)
	arr, err := B.Spherical(&mat.Dense{}, []int{0, 0, 0})
	require.NoError(Te, err)
	assert.True(Te, arr.IsEmpty())
}
