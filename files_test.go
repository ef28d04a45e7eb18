/*
 * files_test.go, part of gobasis.
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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const water = `3
water, in Angstrom
O   0.000000   0.000000   0.117790
H   0.000000   0.755453  -0.471161
h   0.000000  -0.755453  -0.471161
`

func TestXYZRead(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), "water.xyz")
	require.NoError(t, os.WriteFile(name, []byte(water), 0o644))
	T, coords, err := XYZRead(name)
	require.NoError(t, err)
	require.Equal(t, 3, T.Len())
	assert.Equal(t, "O", T.Symbol(0))
	assert.Equal(t, "H", T.Symbol(2))
	assert.Equal(t, 8, T.Atom(0).Z)
	assert.Equal(t, 3, coords.NVecs())
	assert.InDelta(t, -0.755453, coords.At(2, 1), 1e-12)

	_, _, err = XYZRead(filepath.Join(t.TempDir(), "nothere.xyz"))
	assert.Error(t, err)
}

func TestXYZReadErrors(t *testing.T) {
	t.Parallel()
	for name, in := range map[string]string{
		"empty":     "",
		"natoms":    "three\n\n",
		"truncated": "2\ncomment\nH 0 0 0\n",
		"short":     "1\ncomment\nH 0 0\n",
		"number":    "1\ncomment\nH 0 x 0\n",
		"element":   "1\ncomment\nXx 0 0 0\n",
	} {
		_, _, err := XYZReadFrom(strings.NewReader(in))
		assert.Error(t, err, name)
	}
	_, _, err := XYZReadFrom(strings.NewReader("1\ncomment\nQq 0 0 0\n"))
	assert.True(t, errors.Is(err, ValueError))
}

func TestAtomicData(t *testing.T) {
	t.Parallel()
	z, ok := AtomicNumber("cl")
	assert.True(t, ok)
	assert.Equal(t, 17, z)
	z, ok = AtomicNumber("Carbon")
	assert.True(t, ok)
	assert.Equal(t, 6, z)
	_, ok = AtomicNumber("Qq")
	assert.False(t, ok)
	s, ok := Symbol(26)
	assert.True(t, ok)
	assert.Equal(t, "Fe", s)
	_, ok = Symbol(0)
	assert.False(t, ok)
	assert.Equal(t, "Cl", NormalizeSymbol(" CL "))
}
