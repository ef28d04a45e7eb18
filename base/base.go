/*
 * base.go, part of gobasis.
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
Package base assembles the arrays of whole basis sets from the arrays of each
of their shells. It is generic over basis.ShellEvaluator: the evaluator only
knows how to build the (segmented contraction, Cartesian component, point)
array of one shell, and this package loops over the shells, transforms them to
spherical functions where requested, applies linear combinations and
concatenates the results along the basis function axis, always in the order
of the shells.
*/
package base

import (
	"context"
	"fmt"
	"runtime"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/spherical"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// OneIndex builds arrays with one index running over the basis functions of a set of shells.
type OneIndex struct {
	ev     basis.ShellEvaluator
	shells []*basis.Shell
	cpus   int
}

// NewOneIndex returns a OneIndex for the given evaluator and shells, which will use
// up to cpus goroutines. If cpus is less than 1, all the logical CPUs are used.
func NewOneIndex(ev basis.ShellEvaluator, shells []*basis.Shell, cpus int) (*OneIndex, error) {
	if ev == nil {
		return nil, basis.NewError(basis.TypeError, "nil shell evaluator", "NewOneIndex")
	}
	if len(shells) == 0 {
		return nil, basis.NewError(basis.TypeError, "no shells given", "NewOneIndex")
	}
	for i, sh := range shells {
		if err := sh.Check(); err != nil {
			return nil, basis.ErrDecorate(err, fmt.Sprintf("NewOneIndex: shell %d", i))
		}
	}
	if cpus < 1 {
		cpus = runtime.NumCPU()
	}
	return &OneIndex{ev: ev, shells: shells, cpus: cpus}, nil
}

// Shells returns the shells of the receiver.
func (B *OneIndex) Shells() []*basis.Shell {
	return B.shells
}

// NumFunctions returns the number of basis functions when each shell is given in
// the corresponding element of coordTypes. If only one coordinate type is given,
// it is used for all shells.
func (B *OneIndex) NumFunctions(coordTypes ...basis.CoordType) (int, error) {
	cts, err := B.coordTypes(coordTypes)
	if err != nil {
		return 0, basis.ErrDecorate(err, "NumFunctions")
	}
	ret := 0
	for i, sh := range B.shells {
		ret += sh.NumFunctions(cts[i])
	}
	return ret, nil
}

// Cartesian returns the array for all the shells as Cartesian functions.
// The array has one row per basis function and one column per point.
// coords and orders are passed unchanged to the shell evaluator.
func (B *OneIndex) Cartesian(coords mat.Matrix, orders []int) (*mat.Dense, error) {
	ret, err := B.assemble(coords, orders, []basis.CoordType{basis.Cartesian})
	if err != nil {
		return nil, basis.ErrDecorate(err, "Cartesian")
	}
	return ret, nil
}

// Spherical returns the array for all the shells as spherical functions.
func (B *OneIndex) Spherical(coords mat.Matrix, orders []int) (*mat.Dense, error) {
	ret, err := B.assemble(coords, orders, []basis.CoordType{basis.Spherical})
	if err != nil {
		return nil, basis.ErrDecorate(err, "Spherical")
	}
	return ret, nil
}

// Mix returns the array for all the shells, each in the coordinate system given by
// the corresponding element of coordTypes. coordTypes must have exactly one element
// per shell.
func (B *OneIndex) Mix(coordTypes []basis.CoordType, coords mat.Matrix, orders []int) (*mat.Dense, error) {
	if len(coordTypes) != len(B.shells) {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("%d coordinate types given for %d shells", len(coordTypes), len(B.shells)), "Mix")
	}
	ret, err := B.assemble(coords, orders, coordTypes)
	if err != nil {
		return nil, basis.ErrDecorate(err, "Mix")
	}
	return ret, nil
}

// Lincomb returns the array for the linear combinations of the basis functions given by
// transform, which is applied from the left: transform has one row per linear combination
// and one column per basis function. The basis functions are taken in the coordinate
// systems given in coordTypes, either one for all shells or one per shell.
func (B *OneIndex) Lincomb(transform mat.Matrix, coordTypes []basis.CoordType, coords mat.Matrix, orders []int) (*mat.Dense, error) {
	if transform == nil {
		return nil, basis.NewError(basis.TypeError, "nil transformation matrix", "Lincomb")
	}
	nfunc, err := B.NumFunctions(coordTypes...)
	if err != nil {
		return nil, basis.ErrDecorate(err, "Lincomb")
	}
	korbs, kcont := transform.Dims()
	if kcont != nfunc {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("transformation matrix has %d columns, but there are %d basis functions", kcont, nfunc), "Lincomb")
	}
	arr, err := B.assemble(coords, orders, coordTypes)
	if err != nil {
		return nil, basis.ErrDecorate(err, "Lincomb")
	}
	if arr.IsEmpty() || korbs == 0 {
		return arr, nil
	}
	ret := mat.NewDense(korbs, arr.RawMatrix().Cols, nil)
	ret.Mul(transform, arr)
	return ret, nil
}

// coordTypes expands and checks a list of coordinate types.
func (B *OneIndex) coordTypes(coordTypes []basis.CoordType) ([]basis.CoordType, error) {
	var cts []basis.CoordType
	switch len(coordTypes) {
	case 0:
		return nil, basis.NewError(basis.TypeError, "no coordinate type given", "coordTypes")
	case 1:
		cts = make([]basis.CoordType, len(B.shells))
		for i := range cts {
			cts[i] = coordTypes[0]
		}
	case len(B.shells):
		cts = coordTypes
	default:
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("%d coordinate types given for %d shells", len(coordTypes), len(B.shells)), "coordTypes")
	}
	for i, ct := range cts {
		if err := ct.Check(); err != nil {
			return nil, basis.ErrDecorate(err, fmt.Sprintf("coordTypes: shell %d", i))
		}
	}
	return cts, nil
}

// assemble evaluates all shells concurrently and stacks their blocks in shell order.
func (B *OneIndex) assemble(coords mat.Matrix, orders []int, coordTypes []basis.CoordType) (*mat.Dense, error) {
	cts, err := B.coordTypes(coordTypes)
	if err != nil {
		return nil, err
	}
	blocks := make([]*mat.Dense, len(B.shells))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(B.cpus)
	for i, sh := range B.shells {
		i, sh := i, sh
		g.Go(func() error {
			if ctx.Err() != nil {
				//another shell failed already.
				return nil
			}
			arrs, err := B.ev.ConstructArrayContraction(sh, coords, orders)
			if err != nil {
				return basis.ErrDecorate(err, fmt.Sprintf("assemble: shell %d", i))
			}
			blocks[i], err = shellBlock(arrs, sh, cts[i])
			if err != nil {
				return basis.ErrDecorate(err, fmt.Sprintf("assemble: shell %d", i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stack(blocks)
}

// shellBlock turns the per-segmented-contraction arrays of a shell into one matrix with
// the functions of every segmented contraction, one after the other, in the coordinate
// system ct. It returns nil if the arrays are empty (no points).
func shellBlock(arrs []*mat.Dense, sh *basis.Shell, ct basis.CoordType) (*mat.Dense, error) {
	if len(arrs) != sh.NumSeg() {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("evaluator returned %d arrays for %d segmented contractions", len(arrs), sh.NumSeg()), "shellBlock")
	}
	if arrs[0].IsEmpty() {
		return nil, nil
	}
	nf := sh.NumCart()
	var T *mat.Dense
	if ct == basis.Spherical {
		T = spherical.Transform(sh.Angmom())
		nf = sh.NumSph()
	}
	_, npoints := arrs[0].Dims()
	ret := mat.NewDense(nf*len(arrs), npoints, nil)
	for j, a := range arrs {
		r, c := a.Dims()
		if r != sh.NumCart() || c != npoints {
			return nil, basis.NewError(basis.TypeError, fmt.Sprintf("evaluator returned a %dx%d array, expected %dx%d", r, c, sh.NumCart(), npoints), "shellBlock")
		}
		dst := ret.Slice(j*nf, (j+1)*nf, 0, npoints).(*mat.Dense)
		if T != nil {
			dst.Mul(T, a)
		} else {
			dst.Copy(a)
		}
	}
	return ret, nil
}

// stack puts the blocks one over the other. If the blocks are nil (no points),
// an empty matrix is returned.
func stack(blocks []*mat.Dense) (*mat.Dense, error) {
	rows := 0
	cols := -1
	for _, b := range blocks {
		if b == nil {
			return &mat.Dense{}, nil
		}
		r, c := b.Dims()
		if cols >= 0 && c != cols {
			return nil, basis.NewError(basis.TypeError, "blocks with different numbers of points", "stack")
		}
		cols = c
		rows += r
	}
	ret := mat.NewDense(rows, cols, nil)
	r0 := 0
	for _, b := range blocks {
		r, _ := b.Dims()
		ret.Slice(r0, r0+r, 0, cols).(*mat.Dense).Copy(b)
		r0 += r
	}
	return ret, nil
}
