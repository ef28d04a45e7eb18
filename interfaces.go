/*
 * interfaces.go, part of gobasis.
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

import "gonum.org/v1/gonum/mat"

// ShellEvaluator is anything that can build the array associated with one shell.
// The orchestration functions in the base package are generic over it.
type ShellEvaluator interface {
	//ConstructArrayContraction returns the M matrices (one per segmented contraction)
	//of L_cart x N values for the shell sh evaluated at the N points in coords.
	//orders contains the orders of the derivatives along x, y and z.
	ConstructArrayContraction(sh *Shell, coords mat.Matrix, orders []int) ([]*mat.Dense, error)
}

// Atomer gives the element symbols of the atoms in a geometry.
type Atomer interface {
	//Symbol returns the element symbol of the atom i. Should panic if
	//out of range.
	Symbol(i int) string

	Len() int
}

//Errors

// ErrorDecorator is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type ErrorDecorator interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
