/*
 * atomicdata.go, part of gobasis.
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

import "strings"

// Element symbols, ordered by atomic number (the symbol for Z is at index Z-1).
var symbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

// A map for assigning atomic numbers to element symbols. Filled from symbols.
var symbolZ map[string]int

// Element names, as they appear in the comments of some basis set files.
var nameZ = map[string]int{
	"hydrogen": 1, "helium": 2, "lithium": 3, "beryllium": 4, "boron": 5, "carbon": 6,
	"nitrogen": 7, "oxygen": 8, "fluorine": 9, "neon": 10, "sodium": 11, "magnesium": 12,
	"aluminum": 13, "silicon": 14, "phosphorus": 15, "sulfur": 16, "chlorine": 17, "argon": 18,
	"potassium": 19, "calcium": 20, "iron": 26, "copper": 29, "zinc": 30, "bromine": 35, "iodine": 53,
}

func init() {
	symbolZ = make(map[string]int, len(symbols))
	for i, v := range symbols {
		symbolZ[v] = i + 1
	}
}

// NormalizeSymbol returns symbol with the capitalization used in the periodic
// table ("CL" and "cl" become "Cl").
func NormalizeSymbol(symbol string) string {
	s := strings.ToLower(strings.TrimSpace(symbol))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AtomicNumber returns the atomic number of the element with the given symbol or
// (lowercase) name, and false if the element is not known. Symbols are case-insensitive.
func AtomicNumber(symbol string) (int, bool) {
	if z, ok := symbolZ[NormalizeSymbol(symbol)]; ok {
		return z, true
	}
	z, ok := nameZ[strings.ToLower(strings.TrimSpace(symbol))]
	return z, ok
}

// Symbol returns the symbol of the element with atomic number z, and false if z is out of range.
func Symbol(z int) (string, bool) {
	if z < 1 || z > len(symbols) {
		return "", false
	}
	return symbols[z-1], true
}
