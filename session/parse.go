// seehuhn.de/go/schottky - limit sets of Schottky groups
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package session

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/schottky/internal/float"
)

// Precision is the number of digits after the decimal point used by
// [Format].
const Precision = 3

// Format returns a human readable form of z, like "2 - i * 0.1".
func Format(z complex128) string {
	re := float.Format(real(z), Precision)
	im := float.Format(math.Abs(imag(z)), Precision)
	if imag(z) < 0 && im != "0" {
		return re + " - i * " + im
	}
	return re + " + i * " + im
}

// ParseError is returned when a trace parameter cannot be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (err *ParseError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "invalid trace " + strconv.Quote(err.Input) + middle
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// ParseComplex parses a trace value.
//
// Go complex literals like "2", "2-0.1i" or "(1.5+1i)" are accepted, as
// well as the output of [Format], for example "2 - i * 0.1".
// Non-finite values are rejected.
func ParseComplex(s string) (complex128, error) {
	in := strings.TrimSpace(s)
	if m := displayRegexp.FindStringSubmatch(in); m != nil {
		z, err := ParsePair(m[1], m[2]+m[3])
		if perr, ok := err.(*ParseError); ok {
			return 0, &ParseError{Input: s, Err: perr.Err}
		}
		return z, err
	}

	z, err := strconv.ParseComplex(strings.ReplaceAll(in, " ", ""), 128)
	if err != nil {
		return 0, &ParseError{Input: s, Err: unwrapNum(err)}
	}
	if err := checkFinite(z); err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return z, nil
}

// ParsePair combines separate text fields for the real and imaginary
// parts.  An empty field is read as zero.
func ParsePair(re, im string) (complex128, error) {
	x, err := parseField(re)
	if err != nil {
		return 0, err
	}
	y, err := parseField(im)
	if err != nil {
		return 0, err
	}
	z := complex(x, y)
	if err := checkFinite(z); err != nil {
		return 0, &ParseError{Input: re + ", " + im, Err: err}
	}
	return z, nil
}

func parseField(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: unwrapNum(err)}
	}
	return x, nil
}

func checkFinite(z complex128) error {
	if math.IsInf(real(z), 0) || math.IsNaN(real(z)) ||
		math.IsInf(imag(z), 0) || math.IsNaN(imag(z)) {
		return errNotFinite
	}
	return nil
}

// unwrapNum strips the function name and input from strconv errors,
// since ParseError reports the input itself.
func unwrapNum(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

var (
	errNotFinite  = errors.New("value is not finite")
	displayRegexp = regexp.MustCompile(`^([-+]?[0-9.eE+-]+?)\s*([-+])\s*i\s*\*\s*([0-9.eE+-]+)$`)
)
