/*
 * handy.go, part of gobasis.
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
	"fmt"
	"strings"
)

const angmomLetters = "spdfghiklmnoqrtuvwxyz"

// Factorial2 returns the double factorial of n. Following the usual convention
// in Gaussian normalization constants, it returns 1 for n <= 0 (so (-1)!! = 1).
func Factorial2(n int) float64 {
	ret := 1.0
	for ; n > 1; n -= 2 {
		ret *= float64(n)
	}
	return ret
}

// NumCart returns the number of Cartesian components for the angular momentum l.
func NumCart(l int) int {
	return (l + 1) * (l + 2) / 2
}

// NumSph returns the number of spherical components for the angular momentum l.
func NumSph(l int) int {
	return 2*l + 1
}

// CartComponents returns the exponents (nx, ny, nz) of the Cartesian components
// for the angular momentum l, in the order x^l, x^(l-1)y, x^(l-1)z, ..., z^l
// (i.e. lexicographic, from the largest x exponent down).
func CartComponents(l int) [][3]int {
	ret := make([][3]int, 0, NumCart(l))
	for x := l; x >= 0; x-- {
		for y := l - x; y >= 0; y-- {
			ret = append(ret, [3]int{x, y, l - x - y})
		}
	}
	return ret
}

// SphComponents returns labels for the spherical components of the angular momentum l,
// ordered by m, from -l to l. Components with negative m are the sine-like ("s|m|")
// harmonics, the rest are the cosine-like ("cm") ones.
func SphComponents(l int) []string {
	ret := make([]string, 0, NumSph(l))
	for m := l; m > 0; m-- {
		ret = append(ret, fmt.Sprintf("s%d", m))
	}
	for m := 0; m <= l; m++ {
		ret = append(ret, fmt.Sprintf("c%d", m))
	}
	return ret
}

// AngmomLetter returns the spectroscopic letter for the angular momentum l
// ('s', 'p', 'd'...). It returns '?' if l is out of range.
func AngmomLetter(l int) byte {
	if l < 0 || l >= len(angmomLetters) {
		return '?'
	}
	return angmomLetters[l]
}

// AngmomFromLetter returns the angular momentum for the given spectroscopic letter,
// which is case-insensitive. It returns a ValueError for unknown letters.
func AngmomFromLetter(letter string) (int, error) {
	l := strings.ToLower(letter)
	if len(l) != 1 {
		return -1, NewError(ValueError, fmt.Sprintf("%q is not an angular momentum letter", letter), "AngmomFromLetter")
	}
	i := strings.Index(angmomLetters, l)
	if i < 0 {
		return -1, NewError(ValueError, fmt.Sprintf("%q is not an angular momentum letter", letter), "AngmomFromLetter")
	}
	return i, nil
}
