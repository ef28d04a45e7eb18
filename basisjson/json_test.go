/*
 * json_test.go, part of gobasis.
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
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shellsAndPoints = `{"Angmom":0,"Center":[0,0,0],"Exps":[1],"Coeffs":[[1]],"ICenter":0}
{"Angmom":1,"Center":[0,0,0],"Exps":[1],"Coeffs":[[1]],"ICenter":0}
{"Coords":[0,0,0,0.5,0,0]}
`

const sOrigin = 0.712705470354990

func request(opts string) string {
	return opts + "\n" + shellsAndPoints
}

func TestRunValues(Te *testing.T) {
	req, jerr := DecodeRequest(strings.NewReader(request(`{"Orders":[0,0,0],"CoordTypes":["cartesian"],"Shells":2,"Points":2}`)))
	require.Nil(Te, jerr)
	assert.Equal(Te, []int{0, 0, 0}, req.Orders)
	res, jerr := Run(req)
	require.Nil(Te, jerr)
	assert.Equal(Te, 4, res.Functions)
	assert.Equal(Te, 2, res.Points)
	require.Len(Te, res.Arrays, 1)
	assert.InDelta(Te, sOrigin, res.Arrays[0][0][0], 1e-12)
	//p_x at (0.5,0,0)
	assert.InDelta(Te, sOrigin*2*0.5*math.Exp(-0.25), res.Arrays[0][1][1], 1e-12)
	assert.InDelta(Te, 0, res.Arrays[0][2][1], 1e-14)

	var buf bytes.Buffer
	require.Nil(Te, res.Send(&buf))
	back := new(Result)
	require.NoError(Te, json.Unmarshal(buf.Bytes(), back))
	assert.Equal(Te, res, back)
}

func TestRunGradAndTransform(Te *testing.T) {
	in := `{"Grad":true,"Shells":2,"Points":2,"Orbitals":1}` + "\n" + shellsAndPoints + `{"Coords":[1,0,0,2]}` + "\n"
	req, jerr := DecodeRequest(strings.NewReader(in))
	require.Nil(Te, jerr)
	require.True(Te, req.Grad)
	res, jerr := Run(req)
	require.Nil(Te, jerr)
	require.Len(Te, res.Arrays, 3)
	assert.Equal(Te, 1, res.Functions)
	//spherical p is (y, z, x), so the orbital is s + 2p_x.
	x := 0.5
	ds := -2 * x * sOrigin * math.Exp(-x*x)
	dpx := 2 * sOrigin * (1 - 2*x*x) * math.Exp(-x*x)
	assert.InDelta(Te, ds+2*dpx, res.Arrays[0][0][1], 1e-12)
	assert.InDelta(Te, 0, res.Arrays[1][0][1], 1e-12)
}

func TestDecodeErrors(Te *testing.T) {
	cases := []struct {
		name  string
		in    string
		check func(*Error) bool
		kind  string
	}{
		{"float orders", request(`{"Orders":[0,1.0,0],"Shells":2,"Points":2}`), func(e *Error) bool { return e.InOptions }, "value"},
		{"negative orders", request(`{"Orders":[0,-1,0],"Shells":2,"Points":2}`), func(e *Error) bool { return e.InOptions }, "value"},
		{"short orders", request(`{"Orders":[0,0],"Shells":2,"Points":2}`), func(e *Error) bool { return e.InOptions }, "type"},
		{"no shells", request(`{"Orders":[0,0,0],"Shells":0,"Points":2}`), func(e *Error) bool { return e.InOptions }, "type"},
		{"bad center", `{"Orders":[0,0,0],"Shells":1,"Points":1}` + "\n" + `{"Angmom":0,"Center":[0,0],"Exps":[1],"Coeffs":[[1]]}`, func(e *Error) bool { return e.InShells && e.Index == 0 }, "type"},
		{"bad exponent", `{"Orders":[0,0,0],"Shells":1,"Points":1}` + "\n" + `{"Angmom":0,"Center":[0,0,0],"Exps":[-1],"Coeffs":[[1]]}`, func(e *Error) bool { return e.InShells }, "value"},
		{"points", request(`{"Orders":[0,0,0],"Shells":2,"Points":3}`), func(e *Error) bool { return e.InPoints }, "type"},
		{"transform", request(`{"Orders":[0,0,0],"Shells":2,"Points":2,"Orbitals":2}`) + `{"Coords":[1,0]}` + "\n" + `{"Coords":[1]}`, func(e *Error) bool { return e.InTransform && e.Index == 1 }, "type"},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			_, jerr := DecodeRequest(strings.NewReader(c.in))
			require.NotNil(Te, jerr)
			assert.True(Te, jerr.IsError)
			assert.True(Te, c.check(jerr), string(jerr.Marshal()))
			assert.Equal(Te, c.kind, jerr.Kind)
		})
	}
}

func TestRunErrors(Te *testing.T) {
	//the transformation has the wrong number of columns.
	in := request(`{"Orders":[0,0,0],"Shells":2,"Points":2,"Orbitals":1}`) + `{"Coords":[1,0]}` + "\n"
	req, jerr := DecodeRequest(strings.NewReader(in))
	require.Nil(Te, jerr)
	_, jerr = Run(req)
	require.NotNil(Te, jerr)
	assert.True(Te, jerr.InProcess)
	assert.Equal(Te, "type", jerr.Kind)

	req, jerr = DecodeRequest(strings.NewReader(request(`{"Orders":[0,0,0],"CoordTypes":["polar"],"Shells":2,"Points":2}`)))
	require.Nil(Te, jerr)
	_, jerr = Run(req)
	require.NotNil(Te, jerr)
	assert.Equal(Te, "value", jerr.Kind)
}

func TestErrorMarshal(Te *testing.T) {
	jerr := NewError("options", "f", assert.AnError)
	jerr.Decorate("g")
	out := make(map[string]any)
	require.NoError(Te, json.Unmarshal(jerr.Marshal(), &out))
	assert.Equal(Te, true, out["InOptions"])
	assert.Equal(Te, "f", out["Function"])
	assert.Equal(Te, "type", out["Kind"])
}

func TestMalformedJSON(Te *testing.T) {
	_, jerr := DecodeRequest(strings.NewReader(`{"Orders":[0,0,0],"Shells":`))
	require.NotNil(Te, jerr)
	assert.True(Te, jerr.InOptions)
	assert.Equal(Te, "type", jerr.Kind)
	_, jerr = DecodeRequest(strings.NewReader(request(`{"Orders":[0,"1",0],"Shells":2,"Points":2}`)))
	require.NotNil(Te, jerr)
	assert.Equal(Te, "type", jerr.Kind)
	_, jerr = DecodeRequest(strings.NewReader(request(`{"Orders":[0,99999999999999999999,0],"Shells":2,"Points":2}`)))
	require.NotNil(Te, jerr)
	assert.Equal(Te, "value", jerr.Kind)
}
