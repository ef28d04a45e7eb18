/*
 * files.go, part of gobasis.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gobasis/v3"
)

// Atom contains the information of an atom needed to build its basis functions,
// except for the coordinates, which are kept in a v3.Matrix.
type Atom struct {
	Symbol string
	Z      int
}

// Topology is an ordered set of atoms. It implements Atomer.
type Topology struct {
	atoms []*Atom
}

// NewTopology returns a topology with atoms of the given element symbols.
// It returns a ValueError if one of the symbols is not a known element.
func NewTopology(symbols ...string) (*Topology, error) {
	T := &Topology{atoms: make([]*Atom, 0, len(symbols))}
	for i, s := range symbols {
		z, ok := AtomicNumber(s)
		if !ok {
			return nil, NewError(ValueError, fmt.Sprintf("unknown element %q for atom %d", s, i), "NewTopology")
		}
		sym, _ := Symbol(z)
		T.atoms = append(T.atoms, &Atom{Symbol: sym, Z: z})
	}
	return T, nil
}

// Atom returns the Atom corresponding to the index i. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	return T.atoms[i]
}

// Symbol returns the element symbol of the atom i. Panics if out of range.
func (T *Topology) Symbol(i int) string {
	return T.atoms[i].Symbol
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// XYZRead reads an xyz file, returns a Topology, the coordinates in a v3.Matrix (in the
// units of the file, normally Angstrom, use A2Bohr to convert) and an error.
func XYZRead(xyzname string) (*Topology, *v3.Matrix, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, NewError(TypeError, err.Error(), "os.Open", "XYZRead")
	}
	defer xyzfile.Close()
	T, coords, err := XYZReadFrom(xyzfile)
	if err != nil {
		return nil, nil, ErrDecorate(err, "XYZRead: "+xyzname)
	}
	return T, coords, nil
}

// XYZReadFrom reads the first frame of an xyz file from r.
func XYZReadFrom(r io.Reader) (*Topology, *v3.Matrix, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, nil, NewError(TypeError, "Ill formatted XYZ file: empty file", "XYZReadFrom")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, nil, NewError(TypeError, fmt.Sprintf("Ill formatted XYZ file: bad number of atoms %q", strings.TrimSpace(line)), "XYZReadFrom")
	}
	//The comment line, we don't care about it.
	if _, err = xyz.ReadString('\n'); err != nil && natoms > 0 {
		return nil, nil, NewError(TypeError, "Ill formatted XYZ file: missing comment line", "XYZReadFrom")
	}
	syms := make([]string, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) < 4 {
			if err != nil {
				return nil, nil, NewError(TypeError, fmt.Sprintf("XYZ file ended after %d of %d atoms", i, natoms), "XYZReadFrom")
			}
			return nil, nil, NewError(TypeError, fmt.Sprintf("Line for atom %d ill formed", i), "XYZReadFrom")
		}
		syms[i] = fields[0]
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, nil, NewError(TypeError, fmt.Sprintf("Bad coordinate for atom %d: %s", i, err.Error()), "XYZReadFrom")
			}
		}
	}
	T, err := NewTopology(syms...)
	if err != nil {
		return nil, nil, ErrDecorate(err, "XYZReadFrom")
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, ErrDecorate(err, "XYZReadFrom")
	}
	return T, mcoords, nil
}
