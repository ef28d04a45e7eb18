/*
 * errors.go, part of gobasis.
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
	"errors"
	"fmt"
)

// ErrorKind distinguishes malformed calls (TypeError) from requests that
// are well formed but outside of the domain of the function (ValueError).
// Errors returned by goBasis wrap one of them, so they can be checked
// with errors.Is.
type ErrorKind string

func (k ErrorKind) Error() string { return string(k) }

const (
	TypeError  = ErrorKind("goBasis: type error")
	ValueError = ErrorKind("goBasis: value error")
)

// Error is the general error type for goBasis.
// It satisfies the ErrorDecorator interface.
type Error struct {
	message  string
	kind     ErrorKind
	deco     []string
	critical bool
}

// NewError returns a critical error of the given kind. The names given in deco
// are used as the initial decoration (normally, the function returning the error).
func NewError(kind ErrorKind, message string, deco ...string) *Error {
	return &Error{message: message, kind: kind, deco: deco, critical: true}
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.kind, err.message)
}

// Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

// Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. If dec is empty, the slice is just returned.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// ErrDecorate decorates err with the caller's name if err (or something it wraps)
// implements ErrorDecorator, and returns err. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	var d ErrorDecorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
