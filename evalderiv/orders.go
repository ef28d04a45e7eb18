/*
 * orders.go, part of gobasis.
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

package evalderiv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// ValidateOrders returns the orders of a derivative as an array. It returns
// a basis.TypeError if there are not exactly 3 orders and a basis.ValueError
// if any of them is negative.
func ValidateOrders(orders []int) ([3]int, error) {
	var ret [3]int
	if len(orders) != 3 {
		return ret, basis.NewError(basis.TypeError, fmt.Sprintf("orders of the derivatives must have 3 elements, got %d", len(orders)), "ValidateOrders")
	}
	for i, v := range orders {
		if v < 0 {
			return ret, basis.NewError(basis.ValueError, fmt.Sprintf("negative order of derivative %d is not supported", v), "ValidateOrders")
		}
		ret[i] = v
	}
	return ret, nil
}

// OrdersFrom takes the orders of a derivative given as some kind of slice or array,
// such as the ones obtained from decoding data sent by other programs, and returns them
// as a []int. The orders must be integers: a slice of floats (even if all the values are
// integral) or a JSON number written as a float ("1.0", "1e0") gives a basis.ValueError,
// as do negative orders. Anything that isn't a slice of 3 numbers gives a basis.TypeError.
func OrdersFrom(v any) ([]int, error) {
	var ret []int
	var err error
	switch o := v.(type) {
	case []int:
		ret, err = intOrders(o)
	case [3]int:
		ret, err = intOrders(o[:])
	case []int64:
		ret, err = intOrders(o)
	case []int32:
		ret, err = intOrders(o)
	case []uint:
		ret, err = intOrders(o)
	case []float64:
		err = floatOrders(o)
	case [3]float64:
		err = floatOrders(o[:])
	case []float32:
		err = floatOrders(o)
	case []json.Number:
		ret, err = jsonNumbers(o)
	case []any:
		ret, err = anys(o)
	default:
		err = basis.NewError(basis.TypeError, fmt.Sprintf("orders of the derivatives must be a slice of 3 integers, got %T", v), "OrdersFrom")
	}
	if err != nil {
		return nil, basis.ErrDecorate(err, "OrdersFrom")
	}
	return ret, nil
}

func intOrders[T integer](o []T) ([]int, error) {
	ret := make([]int, len(o))
	for i, v := range o {
		ret[i] = int(v)
	}
	if _, err := ValidateOrders(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// floatOrders always returns an error: the type error if the shape is wrong,
// otherwise a value error.
func floatOrders[T float](o []T) error {
	if len(o) != 3 {
		return basis.NewError(basis.TypeError, fmt.Sprintf("orders of the derivatives must have 3 elements, got %d", len(o)), "floatOrders")
	}
	for _, v := range o {
		if v < 0 {
			return basis.NewError(basis.ValueError, fmt.Sprintf("negative order of derivative %v is not supported", v), "floatOrders")
		}
	}
	return basis.NewError(basis.ValueError, fmt.Sprintf("orders of the derivatives must be given as integers, got %T", o), "floatOrders")
}

func jsonNumbers(o []json.Number) ([]int, error) {
	if len(o) != 3 {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("orders of the derivatives must have 3 elements, got %d", len(o)), "jsonNumbers")
	}
	ret := make([]int, len(o))
	isfloat := false
	for i, v := range o {
		s := v.String()
		if strings.ContainsAny(s, ".eE") {
			isfloat = true
			f, err := v.Float64()
			if err != nil {
				return nil, basis.NewError(basis.TypeError, fmt.Sprintf("order %q is not a number", s), "jsonNumbers")
			}
			ret[i] = int(f)
			if f < 0 {
				ret[i] = -1
			}
			continue
		}
		n, err := strconv.Atoi(s)
		if errors.Is(err, strconv.ErrRange) {
			return nil, basis.NewError(basis.ValueError, fmt.Sprintf("order %s is too large", s), "jsonNumbers")
		}
		if err != nil {
			return nil, basis.NewError(basis.TypeError, fmt.Sprintf("order %q is not a number", s), "jsonNumbers")
		}
		ret[i] = n
	}
	if _, err := ValidateOrders(ret); err != nil {
		return nil, err
	}
	if isfloat {
		return nil, basis.NewError(basis.ValueError, "orders of the derivatives must be given as integers", "jsonNumbers")
	}
	return ret, nil
}

// anys handles what encoding/json produces when decoding into an interface{}.
func anys(o []any) ([]int, error) {
	if len(o) != 3 {
		return nil, basis.NewError(basis.TypeError, fmt.Sprintf("orders of the derivatives must have 3 elements, got %d", len(o)), "anys")
	}
	nums := make([]json.Number, len(o))
	for i, v := range o {
		switch n := v.(type) {
		case json.Number:
			nums[i] = n
		case int:
			nums[i] = json.Number(strconv.Itoa(n))
		case float64:
			//without UseNumber, encoding/json can't tell 1 from 1.0, so we are strict.
			nums[i] = json.Number(strconv.FormatFloat(n, 'f', 1, 64))
		default:
			return nil, basis.NewError(basis.TypeError, fmt.Sprintf("order %v is not a number", v), "anys")
		}
	}
	return jsonNumbers(nums)
}
