/*
 * parse.go, part of gobasis.
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

package basisfile

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
	"gonum.org/v1/gonum/mat"
)

// parseFloat also accepts the Fortran exponent marker (1.0D+01).
func parseFloat(s string) (float64, error) {
	s = strings.NewReplacer("D", "E", "d", "e").Replace(s)
	return strconv.ParseFloat(s, 64)
}

// shellLetters returns the angular momenta named by a shell label such as "S", "SP"
// or "L" (the Gaussian name for SP).
func shellLetters(label string) ([]int, error) {
	label = strings.ToUpper(label)
	if label == "L" {
		label = "SP"
	}
	ret := make([]int, 0, len(label))
	for _, v := range label {
		l, err := basis.AngmomFromLetter(string(v))
		if err != nil {
			return nil, err
		}
		ret = append(ret, l)
	}
	return ret, nil
}

// primitive is one line of a contraction block: an exponent and one or more coefficients.
type primitive struct {
	exp    float64
	coeffs []float64
}

func readPrimitive(fields []string, scale float64) (primitive, error) {
	var p primitive
	if len(fields) < 2 {
		return p, fmt.Errorf("expected an exponent and at least one coefficient, got %d fields", len(fields))
	}
	var err error
	p.exp, err = parseFloat(fields[0])
	if err != nil {
		return p, err
	}
	p.exp *= scale * scale
	p.coeffs = make([]float64, len(fields)-1)
	for i, v := range fields[1:] {
		p.coeffs[i], err = parseFloat(v)
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

// contractions turns a block of primitives into contractions. A block with several
// angular momenta (SP) takes one coefficient column per angular momentum. A block with
// only one angular momentum and several columns is a generalized contraction.
func contractions(angmoms []int, prims []primitive) ([]Contraction, error) {
	if len(prims) == 0 {
		return nil, fmt.Errorf("shell with no primitives")
	}
	ncols := len(prims[0].coeffs)
	exps := make([]float64, len(prims))
	for i, p := range prims {
		if len(p.coeffs) != ncols {
			return nil, fmt.Errorf("primitive %d has %d coefficients, expected %d", i, len(p.coeffs), ncols)
		}
		exps[i] = p.exp
	}
	if len(angmoms) > 1 && len(angmoms) != ncols {
		return nil, fmt.Errorf("shell with %d angular momenta but %d coefficient columns", len(angmoms), ncols)
	}
	column := func(j int) []float64 {
		c := make([]float64, len(prims))
		for i, p := range prims {
			c[i] = p.coeffs[j]
		}
		return c
	}
	if len(angmoms) == 1 {
		coeffs := mat.NewDense(len(prims), ncols, nil)
		for j := 0; j < ncols; j++ {
			coeffs.SetCol(j, column(j))
		}
		return []Contraction{{Angmom: angmoms[0], Exps: exps, Coeffs: coeffs}}, nil
	}
	ret := make([]Contraction, len(angmoms))
	for j, l := range angmoms {
		e := make([]float64, len(exps))
		copy(e, exps)
		ret[j] = Contraction{Angmom: l, Exps: e, Coeffs: mat.NewDense(len(prims), 1, column(j))}
	}
	return ret, nil
}

func parseError(format string, line int, msg string) error {
	return basis.NewError(basis.ValueError, fmt.Sprintf("%s: line %d: %s", format, line, msg), "Parse"+format)
}

// ParseNWChem reads a basis set in the NWChem format. Only BASIS blocks are read; ECP
// and other blocks are skipped with a logged message. Several BASIS blocks are merged.
// Input without any BASIS keyword is read as the body of a single block.
func ParseNWChem(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	var (
		nline   int
		symbol  string
		angmoms []int
		prims   []primitive
		skip    string //name of the block being skipped, if any
		seen    bool
	)
	flush := func() error {
		if symbol == "" {
			return nil
		}
		conts, err := contractions(angmoms, prims)
		if err != nil {
			return parseError("NWChem", nline, err.Error())
		}
		for _, c := range conts {
			if err := set.add(symbol, c); err != nil {
				return basis.ErrDecorate(err, "ParseNWChem")
			}
		}
		symbol, angmoms, prims = "", nil, nil
		return nil
	}
	for scanner.Scan() {
		nline++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		key := strings.ToUpper(fields[0])
		if skip != "" {
			if key == "END" {
				skip = ""
			}
			continue
		}
		switch key {
		case "BASIS":
			if err := flush(); err != nil {
				return nil, err
			}
			seen = true
			continue
		case "END":
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		case "ECP", "SO":
			if err := flush(); err != nil {
				return nil, err
			}
			log.Printf("goBasis/basisfile: skipping %s block at line %d", key, nline)
			skip = key
			continue
		}
		if _, err := parseFloat(fields[0]); err != nil {
			//a new shell: element and shell label
			if len(fields) < 2 {
				return nil, parseError("NWChem", nline, fmt.Sprintf("unexpected line %q", line))
			}
			if err := flush(); err != nil {
				return nil, err
			}
			angmoms, err = shellLetters(fields[1])
			if err != nil {
				return nil, parseError("NWChem", nline, err.Error())
			}
			symbol = fields[0]
			continue
		}
		if symbol == "" {
			return nil, parseError("NWChem", nline, "primitive outside of a shell")
		}
		p, err := readPrimitive(fields, 1)
		if err != nil {
			return nil, parseError("NWChem", nline, err.Error())
		}
		prims = append(prims, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, basis.NewError(basis.TypeError, err.Error(), "ParseNWChem")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		msg := "no basis functions found"
		if seen {
			msg = "empty BASIS block"
		}
		return nil, basis.NewError(basis.ValueError, msg, "ParseNWChem")
	}
	return set, nil
}

// ParseGBS reads a basis set in the Gaussian94 (.gbs) format. Exponents are scaled by
// the square of the scale factor in each shell header, as Gaussian does.
func ParseGBS(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	nline := 0
	next := func() ([]string, bool) {
		for scanner.Scan() {
			nline++
			line := scanner.Text()
			if i := strings.Index(line, "!"); i >= 0 {
				line = line[:i]
			}
			if f := strings.Fields(line); len(f) > 0 {
				return f, true
			}
		}
		return nil, false
	}
	symbol := ""
	for {
		fields, ok := next()
		if !ok {
			break
		}
		switch {
		case fields[0] == "****":
			symbol = ""
			continue
		case symbol == "":
			//element header, "C 0"
			if _, ok := basis.AtomicNumber(strings.TrimPrefix(fields[0], "-")); !ok {
				return nil, parseError("GBS", nline, fmt.Sprintf("unknown element %q", fields[0]))
			}
			symbol = strings.TrimPrefix(fields[0], "-")
			continue
		}
		//shell header, "SP 3 1.00"
		if len(fields) < 2 {
			return nil, parseError("GBS", nline, fmt.Sprintf("bad shell header %q", strings.Join(fields, " ")))
		}
		angmoms, err := shellLetters(fields[0])
		if err != nil {
			return nil, parseError("GBS", nline, err.Error())
		}
		nprim, err := strconv.Atoi(fields[1])
		if err != nil || nprim < 1 {
			return nil, parseError("GBS", nline, fmt.Sprintf("bad number of primitives %q", fields[1]))
		}
		scale := 1.0
		if len(fields) > 2 {
			if scale, err = parseFloat(fields[2]); err != nil {
				return nil, parseError("GBS", nline, err.Error())
			}
		}
		prims := make([]primitive, nprim)
		for i := range prims {
			f, ok := next()
			if !ok {
				return nil, parseError("GBS", nline, "unexpected end of input")
			}
			if prims[i], err = readPrimitive(f, scale); err != nil {
				return nil, parseError("GBS", nline, err.Error())
			}
		}
		conts, err := contractions(angmoms, prims)
		if err != nil {
			return nil, parseError("GBS", nline, err.Error())
		}
		for _, c := range conts {
			if err := set.add(symbol, c); err != nil {
				return nil, basis.ErrDecorate(err, "ParseGBS")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, basis.NewError(basis.TypeError, err.Error(), "ParseGBS")
	}
	if len(set) == 0 {
		return nil, basis.NewError(basis.ValueError, "no basis functions found", "ParseGBS")
	}
	return set, nil
}
