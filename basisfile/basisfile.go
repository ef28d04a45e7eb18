/*
 * basisfile.go, part of gobasis.
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

// Package basisfile reads basis sets from files in the NWChem and Gaussian94 (.gbs)
// formats, and builds the shells of a basis set for a molecule.
package basisfile

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	basis "github.com/rmera/gobasis"
	v3 "github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// Contraction is a (generalized) contraction of a basis set, not yet placed on any atom.
type Contraction struct {
	Angmom int
	Exps   []float64
	Coeffs *mat.Dense //primitives x segmented contractions
}

// Set is a basis set: the contractions for each element, in the order in which they
// were read. The keys are element symbols, as given by basis.NormalizeSymbol.
type Set map[string][]Contraction

// Elements returns the element symbols in the set, sorted by atomic number.
func (S Set) Elements() []string {
	ret := make([]string, 0, len(S))
	for k := range S {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		zi, _ := basis.AtomicNumber(ret[i])
		zj, _ := basis.AtomicNumber(ret[j])
		return zi < zj
	})
	return ret
}

func (S Set) add(symbol string, c Contraction) error {
	z, ok := basis.AtomicNumber(symbol)
	if !ok {
		return basis.NewError(basis.ValueError, fmt.Sprintf("unknown element %q", symbol), "Set.add")
	}
	sym, _ := basis.Symbol(z)
	S[sym] = append(S[sym], c)
	return nil
}

// MakeContractions returns the shells for the atoms in atoms, centered at the
// corresponding vectors of coords (which should be in bohr). The shells are ordered
// by atom, and within each atom in the order of the basis set.
// It returns a basis.ValueError if the set has no contractions for one of the atoms.
func MakeContractions(set Set, atoms basis.Atomer, coords *v3.Matrix) ([]*basis.Shell, error) {
	if atoms == nil || coords == nil {
		return nil, basis.NewError(basis.TypeError, "nil atoms or coordinates", "MakeContractions")
	}
	if err := v3.Check(coords); err != nil {
		return nil, basis.NewError(basis.TypeError, err.Error(), "MakeContractions")
	}
	if atoms.Len() != coords.NVecs() {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("%d atoms but %d coordinates", atoms.Len(), coords.NVecs()), "MakeContractions")
	}
	ret := make([]*basis.Shell, 0, 3*atoms.Len())
	for i := 0; i < atoms.Len(); i++ {
		sym := basis.NormalizeSymbol(atoms.Symbol(i))
		conts, ok := set[sym]
		if !ok {
			return nil, basis.NewError(basis.ValueError, fmt.Sprintf("no basis functions for element %s (atom %d)", sym, i), "MakeContractions")
		}
		for _, c := range conts {
			sh, err := basis.NewShell(c.Angmom, coords.Vec(i), c.Coeffs, c.Exps, i)
			if err != nil {
				return nil, basis.ErrDecorate(err, fmt.Sprintf("MakeContractions: atom %d", i))
			}
			ret = append(ret, sh)
		}
	}
	return ret, nil
}

// Read reads a basis set from the file fname. format can be "nwchem" or "gbs". If it is
// empty, it is deduced from the extension of the file (.nw and .nwchem for NWChem, .gbs and
// .g94 for Gaussian94). Files ending in .gz or .zst are decompressed on the fly.
// If the format can't be deduced, a message is logged and NWChem is assumed.
func Read(fname string, format string) (Set, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, basis.NewError(basis.TypeError, err.Error(), "os.Open", "Read")
	}
	defer f.Close()
	name := strings.ToLower(fname)
	var r io.Reader = f
	switch filepath.Ext(name) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, basis.NewError(basis.TypeError, err.Error(), "gzip.NewReader", "Read")
		}
		defer gz.Close()
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	case ".zst":
		zs, err := zstd.NewReader(f)
		if err != nil {
			return nil, basis.NewError(basis.TypeError, err.Error(), "zstd.NewReader", "Read")
		}
		defer zs.Close()
		r = zs
		name = strings.TrimSuffix(name, ".zst")
	}
	if format == "" {
		switch filepath.Ext(name) {
		case ".gbs", ".g94":
			format = "gbs"
		case ".nw", ".nwchem":
			format = "nwchem"
		default:
			log.Printf("goBasis/basisfile: can't deduce the format of %s, will assume NWChem", fname)
			format = "nwchem"
		}
	}
	var set Set
	switch strings.ToLower(format) {
	case "nwchem":
		set, err = ParseNWChem(r)
	case "gbs", "g94", "gaussian94":
		set, err = ParseGBS(r)
	default:
		return nil, basis.NewError(basis.ValueError, fmt.Sprintf("unknown basis set format %q", format), "Read")
	}
	if err != nil {
		return nil, basis.ErrDecorate(err, "Read: "+fname)
	}
	return set, nil
}
