/*
 * doc.go, part of gobasis.
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
Package basis is the main package of the goBasis library. It provides the
generalized contraction shell (Shell) used to describe Gaussian basis sets,
the error types shared by all goBasis packages and a few facilities to read
molecular geometries.

	**goBasis Capabilities**

	Evaluates contracted Cartesian Gaussians, and their derivatives of any order
	along x, y and z, at arbitrary sets of points (package deriv).

	Assembles the evaluations of whole basis sets in Cartesian, spherical or
	mixed coordinate systems, and of linear combinations of the basis functions,
	such as molecular orbitals (packages base and evalderiv).

	Transforms Cartesian shells into real spherical harmonic shells (package spherical).

	Reads basis sets in the NWChem and Gaussian94 formats, plain or compressed,
	and builds the shells for a molecule (package basisfile).

	Communicates evaluation requests and results with other programs using JSON
	(package basisjson), and plots basis functions or orbitals along a line
	(package basisplot).

Points and centers are handled as v3.Matrix objects, which are gonum Dense
matrices with 3 columns, one point per row. All lengths are in bohr.
*/
package basis
