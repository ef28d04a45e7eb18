/*
 * evalderiv.go, part of gobasis.
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
Package evalderiv evaluates basis sets, and their derivatives, at sets of points.

EvalDeriv builds the array of one shell, after validating its input, and the
Evaluate* functions assemble whole basis sets, optionally transformed into linear
combinations such as molecular orbitals.
*/
package evalderiv

import (
	"fmt"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/base"
	"github.com/rmera/gobasis/deriv"
	v3 "github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// EvalDeriv evaluates contracted Cartesian Gaussians and their derivatives.
// It implements basis.ShellEvaluator.
type EvalDeriv struct{}

// ConstructArrayContraction returns the derivatives of the Cartesian contractions of sh,
// of orders orders[0], orders[1] and orders[2] along x, y and z, evaluated at the points
// in coords (one point per row, 3 columns, in bohr).
// The result has one matrix per segmented contraction in sh, each with one row per
// Cartesian component (in the order of sh.AngmomComponentsCart()) and one column per point.
// An invalid shell, coords without 3 columns or orders without 3 elements give a
// basis.TypeError. Negative orders give a basis.ValueError.
func (E EvalDeriv) ConstructArrayContraction(sh *basis.Shell, coords mat.Matrix, orders []int) ([]*mat.Dense, error) {
	if err := sh.Check(); err != nil {
		return nil, basis.ErrDecorate(err, "ConstructArrayContraction")
	}
	if err := checkCoords(coords); err != nil {
		return nil, basis.ErrDecorate(err, "ConstructArrayContraction")
	}
	o, err := ValidateOrders(orders)
	if err != nil {
		return nil, basis.ErrDecorate(err, "ConstructArrayContraction")
	}
	return deriv.Contractions(coords, o, sh.Center(), sh.AngmomComponentsCart(), sh.Exps(), sh.Coeffs(), sh.NormPrimCart()), nil
}

func checkCoords(coords mat.Matrix) error {
	if err := v3.Check(coords); err != nil {
		return basis.NewError(basis.TypeError, "coordinates must be given as a matrix with 3 columns: "+err.Error(), "checkCoords")
	}
	return nil
}

// EvaluateDerivBasis returns the derivatives of orders orders[0], orders[1] and orders[2]
// along x, y and z of the basis functions in shells, evaluated at points. The result has one
// row per basis function (or per linear combination of them, if a transformation is set in O)
// and one column per point.
// The coordinate types, the transformation and whether the contractions are normalized
// first are taken from O (nil means DefaultOptions()):
// if a transformation is set, the linear combinations of the basis functions, each shell in
// its coordinate type, are evaluated. Otherwise all shells are Cartesian, all are spherical,
// or each shell has its own coordinate type.
func EvaluateDerivBasis(shells []*basis.Shell, points mat.Matrix, orders []int, O *Options) (*mat.Dense, error) {
	if O == nil {
		O = DefaultOptions()
	}
	B, err := base.NewOneIndex(EvalDeriv{}, shells, O.Cpus())
	if err != nil {
		return nil, basis.ErrDecorate(err, "EvaluateDerivBasis")
	}
	if O.Normalize() {
		norm := make([]*basis.Shell, len(shells))
		for i, sh := range shells {
			norm[i] = sh.Normalized()
		}
		//the shells were already checked, so this can't fail.
		B, _ = base.NewOneIndex(EvalDeriv{}, norm, O.Cpus())
	}
	cts := O.CoordTypes()
	var ret *mat.Dense
	switch {
	case O.perShell && len(cts) != len(shells):
		err = basis.NewError(basis.TypeError, fmt.Sprintf("%d coordinate types given for %d shells", len(cts), len(shells)), "EvaluateDerivBasis")
	case O.Transform() != nil:
		ret, err = B.Lincomb(O.Transform(), cts, points, orders)
	case O.perShell:
		ret, err = B.Mix(cts, points, orders)
	case len(cts) == 1 && cts[0] == basis.Cartesian:
		ret, err = B.Cartesian(points, orders)
	case len(cts) == 1 && cts[0] == basis.Spherical:
		ret, err = B.Spherical(points, orders)
	case len(cts) == 1:
		err = cts[0].Check()
	case len(cts) == 0:
		err = basis.NewError(basis.TypeError, "no coordinate type given", "EvaluateDerivBasis")
	default:
		ret, err = B.Mix(cts, points, orders)
	}
	if err != nil {
		return nil, basis.ErrDecorate(err, "EvaluateDerivBasis")
	}
	return ret, nil
}

// EvaluateBasis returns the values of the basis functions in shells at points.
// It is EvaluateDerivBasis with all orders set to 0.
func EvaluateBasis(shells []*basis.Shell, points mat.Matrix, O *Options) (*mat.Dense, error) {
	ret, err := EvaluateDerivBasis(shells, points, []int{0, 0, 0}, O)
	if err != nil {
		return nil, basis.ErrDecorate(err, "EvaluateBasis")
	}
	return ret, nil
}

// EvaluateDerivBasisGrad returns the first derivatives of the basis functions in shells
// along x, y and z, in that order, evaluated at points.
func EvaluateDerivBasisGrad(shells []*basis.Shell, points mat.Matrix, O *Options) ([3]*mat.Dense, error) {
	var ret [3]*mat.Dense
	for ax := 0; ax < 3; ax++ {
		orders := []int{0, 0, 0}
		orders[ax] = 1
		d, err := EvaluateDerivBasis(shells, points, orders, O)
		if err != nil {
			return ret, basis.ErrDecorate(err, "EvaluateDerivBasisGrad")
		}
		ret[ax] = d
	}
	return ret, nil
}
