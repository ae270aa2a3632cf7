// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import "github.com/ericsakmar/roundslider/math32"

// Pointer is one draggable handle on the slider.
type Pointer struct {
	// Radii is this pointer's own rx/ry, used for sizing.
	Radii math32.Vector2

	// Percent is the position along the active arc, in [0, 100].
	Percent float32

	// ID is the stable identity of this pointer across renders.
	ID string

	// Index is the ordinal position, used for z-order and tie-breaking.
	Index int

	// BgColor is the fill color of the pointer.
	BgColor string

	// Disabled pointers never move.
	Disabled bool

	// KeyboardDisabled disables keyboard handling for this pointer.
	KeyboardDisabled bool

	// MousewheelDisabled disables mouse wheel handling for this pointer.
	MousewheelDisabled bool
}

// MaxPointer returns the componentwise maximum of the radii across all of
// the given pointers, which bounds the canvas padding in the layout. The
// slider always has at least one pointer; an empty slice returns the zero
// vector.
func MaxPointer(pointers []Pointer) math32.Vector2 {
	if len(pointers) == 0 {
		return math32.Vector2{}
	}
	m := pointers[0].Radii
	for _, p := range pointers[1:] {
		m.SetMax(p.Radii)
	}
	return m
}
