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

// Package session holds the parameter state of an interactive host.
//
// The state consists of the two traces ta and tb.  Hosts can change them
// by dragging a handle for each trace or by entering numbers as text.  The
// state is passed by value to [State.Generators]; the algebra packages keep
// no state between calls.
package session

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/schottky/granny"
)

// State is the pair of trace parameters.
type State struct {
	TA, TB complex128
}

// Default returns the initial parameters, with both handles in their
// start positions.
func Default() State {
	return State{
		TA: FromHandle(vec.Vec2{X: 0, Y: 0}),
		TB: FromHandle(vec.Vec2{X: 0, Y: -100}),
	}
}

// Generators runs the recipe for the current parameters.
func (s State) Generators() (*granny.Generators, error) {
	return granny.New(s.TA, s.TB)
}

func (s State) String() string {
	return "ta = " + Format(s.TA) + ", tb = " + Format(s.TB)
}

// Handle identifies one of the two drag handles.
type Handle int

// These are the possible values for [Handle].
const (
	HandleTA Handle = iota
	HandleTB
)

func (h Handle) String() string {
	switch h {
	case HandleTA:
		return "ta"
	case HandleTB:
		return "tb"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// Handle geometry, in device pixels relative to the centre of the canvas.
// Screen y coordinates grow downwards.
const (
	HandleScale  = 200.0 // pixels per unit of trace
	HandleRadius = 30.0  // pick radius around a handle
)

// FromHandle converts a handle position to a trace value.
// The origin corresponds to the trace 2.
func FromHandle(p vec.Vec2) complex128 {
	return complex(p.X/HandleScale+2, -p.Y/HandleScale)
}

// ToHandle converts a trace value to a handle position.
func ToHandle(t complex128) vec.Vec2 {
	return vec.Vec2{
		X: (real(t) - 2) * HandleScale,
		Y: -imag(t) * HandleScale,
	}
}

// Handles returns the current positions of both handles.
func (s State) Handles() (ta, tb vec.Vec2) {
	return ToHandle(s.TA), ToHandle(s.TB)
}

// HitTest returns the handle under the pointer position p.
// If both handles are in range, ta is preferred.
func (s State) HitTest(p vec.Vec2) (Handle, bool) {
	ta, tb := s.Handles()
	if dist(p, ta) < HandleRadius {
		return HandleTA, true
	}
	if dist(p, tb) < HandleRadius {
		return HandleTB, true
	}
	return 0, false
}

// Drag moves the given handle to the pointer position p and returns the
// new state.
func (s State) Drag(h Handle, p vec.Vec2) State {
	switch h {
	case HandleTA:
		s.TA = FromHandle(p)
	case HandleTB:
		s.TB = FromHandle(p)
	}
	return s
}

func dist(p, q vec.Vec2) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
