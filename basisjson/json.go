/*
 * json.go, part of gobasis.
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

package basisjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/evalderiv"
	v3 "github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// Options passed from the calling external program.
type Options struct {
	Orders     []any    //3 integers. Floats are rejected, even if integral.
	CoordTypes []string //one for all shells, or one per shell. Empty means spherical.
	Cpus       int
	Grad       bool //if true, Orders is ignored and the 3 first derivatives are returned.
	Normalize  bool //normalize the contractions before evaluating.
	Shells     int
	Points     int
	Orbitals   int //rows of the transformation matrix, 0 for none
}

// Shell is a ready-to-serialize container for a shell.
type Shell struct {
	Angmom  int
	Center  []float64
	Exps    []float64
	Coeffs  [][]float64 //one slice per segmented contraction, each with one coefficient per primitive
	ICenter int
}

// Coords is a ready-to-serialize container for coordinates, or for any other row of numbers.
type Coords struct {
	Coords []float64
}

// Request is a decoded job.
type Request struct {
	Shells  []*basis.Shell
	Points  *v3.Matrix
	Orders  []int
	Grad    bool
	Options *evalderiv.Options
}

// An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool //If error, was it in parsing the options?
	InShells      bool
	InPoints      bool
	InTransform   bool
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Kind          string //"type" or "value"
	Index         int    //Which shell or row of the transformation?
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-able error.
// where can be "options", "shells", "points", "transform" or "postprocess".
// Anything else means the error happened while evaluating.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "shells":
		jerr.InShells = true
	case "points":
		jerr.InPoints = true
	case "transform":
		jerr.InTransform = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	//anything that isn't a goBasis ValueError (malformed JSON included) is a type error.
	jerr.Kind = "type"
	if errors.Is(err, basis.ValueError) {
		jerr.Kind = "value"
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

// Result is the information passed back to the calling program: one array for a
// derivative or value request, 3 (x, y, z) for a gradient. Each array has one row
// per basis function, or per linear combination of them, and one column per point.
type Result struct {
	Functions int
	Points    int
	Arrays    [][][]float64
}

// Send Marshals the result and writes to out, returns an error or nil
func (J *Result) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Result.Send", err)
	}
	return nil
}

// DecodeRequest decodes a whole job from in.
func DecodeRequest(in io.Reader) (*Request, *Error) {
	dec := json.NewDecoder(bufio.NewReader(in))
	dec.UseNumber()
	opts := new(Options)
	if err := dec.Decode(opts); err != nil {
		return nil, NewError("options", "DecodeRequest", err)
	}
	req, jerr := fromOptions(opts)
	if jerr != nil {
		return nil, jerr
	}
	if opts.Shells < 1 {
		return nil, NewError("options", "DecodeRequest", basis.NewError(basis.TypeError, "no shells in request"))
	}
	req.Shells = make([]*basis.Shell, 0, opts.Shells)
	for i := 0; i < opts.Shells; i++ {
		js := new(Shell)
		if err := dec.Decode(js); err != nil {
			jerr := NewError("shells", "DecodeRequest", err)
			jerr.Index = i
			return nil, jerr
		}
		sh, err := js.shell()
		if err != nil {
			jerr := NewError("shells", "DecodeRequest", err)
			jerr.Index = i
			return nil, jerr
		}
		req.Shells = append(req.Shells, sh)
	}
	coords := new(Coords)
	if err := dec.Decode(coords); err != nil {
		return nil, NewError("points", "DecodeRequest", err)
	}
	if len(coords.Coords) != 3*opts.Points {
		return nil, NewError("points", "DecodeRequest", basis.NewError(basis.TypeError, fmt.Sprintf("expected %d coordinates, got %d", 3*opts.Points, len(coords.Coords))))
	}
	var err error
	if req.Points, err = v3.NewMatrix(coords.Coords); err != nil {
		return nil, NewError("points", "DecodeRequest", basis.NewError(basis.TypeError, err.Error()))
	}
	if opts.Orbitals <= 0 {
		return req, nil
	}
	var T *mat.Dense
	for i := 0; i < opts.Orbitals; i++ {
		row := new(Coords)
		if err := dec.Decode(row); err != nil {
			jerr := NewError("transform", "DecodeRequest", err)
			jerr.Index = i
			return nil, jerr
		}
		if T == nil {
			if len(row.Coords) == 0 {
				return nil, NewError("transform", "DecodeRequest", basis.NewError(basis.TypeError, "empty row in transformation matrix"))
			}
			T = mat.NewDense(opts.Orbitals, len(row.Coords), nil)
		}
		if _, c := T.Dims(); len(row.Coords) != c {
			jerr := NewError("transform", "DecodeRequest", basis.NewError(basis.TypeError, fmt.Sprintf("row with %d elements, expected %d", len(row.Coords), c)))
			jerr.Index = i
			return nil, jerr
		}
		T.SetRow(i, row.Coords)
	}
	req.Options.Transform(T)
	return req, nil
}

func fromOptions(opts *Options) (*Request, *Error) {
	req := &Request{Grad: opts.Grad, Options: evalderiv.DefaultOptions()}
	if !opts.Grad {
		o, err := evalderiv.OrdersFrom(opts.Orders)
		if err != nil {
			return nil, NewError("options", "DecodeRequest", err)
		}
		req.Orders = o
	}
	if len(opts.CoordTypes) > 0 {
		cts := make([]basis.CoordType, len(opts.CoordTypes))
		for i, v := range opts.CoordTypes {
			cts[i] = basis.CoordType(strings.ToLower(v))
		}
		req.Options.CoordTypes(cts...)
	}
	req.Options.Cpus(opts.Cpus)
	if opts.Normalize {
		req.Options.Normalize(true)
	}
	return req, nil
}

func (J *Shell) shell() (*basis.Shell, error) {
	if len(J.Center) != 3 {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("center must have 3 coordinates, got %d", len(J.Center)), "Shell.shell")
	}
	if len(J.Coeffs) == 0 || len(J.Exps) == 0 {
		return nil, basis.NewError(basis.TypeError, "shell without exponents or coefficients", "Shell.shell")
	}
	coeffs := mat.NewDense(len(J.Exps), len(J.Coeffs), nil)
	for j, c := range J.Coeffs {
		if len(c) != len(J.Exps) {
			return nil, basis.NewError(basis.TypeError, fmt.Sprintf("segmented contraction %d has %d coefficients for %d primitives", j, len(c), len(J.Exps)), "Shell.shell")
		}
		coeffs.SetCol(j, c)
	}
	return basis.NewShell(J.Angmom, [3]float64{J.Center[0], J.Center[1], J.Center[2]}, coeffs, J.Exps, J.ICenter)
}

// Run evaluates the job in req.
func Run(req *Request) (*Result, *Error) {
	var arrs []*mat.Dense
	if req.Grad {
		g, err := evalderiv.EvaluateDerivBasisGrad(req.Shells, req.Points, req.Options)
		if err != nil {
			return nil, NewError("process", "Run", err)
		}
		arrs = g[:]
	} else {
		a, err := evalderiv.EvaluateDerivBasis(req.Shells, req.Points, req.Orders, req.Options)
		if err != nil {
			return nil, NewError("process", "Run", err)
		}
		arrs = []*mat.Dense{a}
	}
	ret := &Result{Points: req.Points.NVecs(), Arrays: make([][][]float64, len(arrs))}
	for i, a := range arrs {
		if a.IsEmpty() {
			ret.Arrays[i] = [][]float64{}
			continue
		}
		r, _ := a.Dims()
		ret.Functions = r
		ret.Arrays[i] = make([][]float64, r)
		for j := range ret.Arrays[i] {
			ret.Arrays[i][j] = mat.Row(nil, j, a)
		}
	}
	return ret, nil
}
