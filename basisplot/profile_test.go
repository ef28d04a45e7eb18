/*
 * profile_test.go, part of gobasis.
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

package basisplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/evalderiv"
	v3 "github.com/rmera/gobasis/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func hydrogen(Te *testing.T) []*basis.Shell {
	Te.Helper()
	s, err := basis.NewSegmentedShell(0, [3]float64{}, []float64{0.15432897, 0.53532814, 0.44463454}, []float64{3.42525091, 0.62391373, 0.16885540}, 0)
	require.NoError(Te, err)
	p, err := basis.NewSegmentedShell(1, [3]float64{}, []float64{1}, []float64{0.8}, 0)
	require.NoError(Te, err)
	return []*basis.Shell{s, p}
}

// TestLineProfile plots the s function and the p_x function of a hydrogen atom
// and the x derivative of the s function, along the x axis.
func TestLineProfile(Te *testing.T) {
	dir := Te.TempDir()
	O := evalderiv.DefaultOptions()
	O.CoordTypes(basis.Cartesian)
	png := filepath.Join(dir, "profile")
	err := LineProfile(hydrogen(Te), [3]float64{-4, 0, 0}, [3]float64{4, 0, 0}, 101, []int{0, 0, 0}, O, []int{0, 1}, []string{"s", "px"}, "H functions", png)
	require.NoError(Te, err)
	info, err := os.Stat(png + ".png")
	require.NoError(Te, err)
	assert.Greater(Te, info.Size(), int64(0))

	svg := filepath.Join(dir, "ds.svg")
	err = LineProfile(hydrogen(Te), [3]float64{-4, 0, 0}, [3]float64{4, 0, 0}, 101, []int{1, 0, 0}, O, []int{0}, nil, "ds/dx", svg)
	require.NoError(Te, err)
	_, err = os.Stat(svg)
	require.NoError(Te, err)
}

func TestProfileErrors(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "bad")
	path := v3.Line([3]float64{}, [3]float64{1, 0, 0}, 5)
	values := mat.NewDense(2, 5, nil)
	err := Profile(values, path, []int{2}, nil, "", name)
	assert.True(Te, errors.Is(err, basis.ValueError))
	err = Profile(values, path, []int{0}, []string{"a", "b"}, "", name)
	assert.True(Te, errors.Is(err, basis.TypeError))
	err = Profile(mat.NewDense(2, 4, nil), path, nil, nil, "", name)
	assert.True(Te, errors.Is(err, basis.TypeError))
	err = Profile(values.Slice(0, 2, 0, 1), v3.Line([3]float64{}, [3]float64{1, 0, 0}, 1), nil, nil, "", name)
	assert.True(Te, errors.Is(err, basis.ValueError))
	err = LineProfile(hydrogen(Te), [3]float64{}, [3]float64{1, 0, 0}, 5, []int{-1, 0, 0}, nil, nil, nil, "", name)
	assert.True(Te, errors.Is(err, basis.ValueError))
}
