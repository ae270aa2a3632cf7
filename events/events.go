// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer, keyboard, and scroll wheel events
// consumed by the slider. Events are plain values handled synchronously;
// each handler runs to completion before the next event is processed.
package events

import "github.com/ericsakmar/roundslider/math32"

// Types is the type of an event.
type Types int32

const (
	// Unknown is an uninitialized event type.
	Unknown Types = iota

	// MouseDown is a mouse or touch press on the slider surface.
	MouseDown

	// MouseMove is a mouse or touch movement during a drag.
	MouseMove

	// MouseUp is a mouse or touch release, ending a drag.
	MouseUp

	// KeyDown is a keyboard key press.
	KeyDown

	// Scroll is a mouse wheel movement.
	Scroll
)

func (t Types) String() string {
	switch t {
	case MouseDown:
		return "MouseDown"
	case MouseMove:
		return "MouseMove"
	case MouseUp:
		return "MouseUp"
	case KeyDown:
		return "KeyDown"
	case Scroll:
		return "Scroll"
	}
	return "Unknown"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Key codes handled by the slider.
const (
	CodeArrowUp    = "ArrowUp"
	CodeArrowDown  = "ArrowDown"
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowRight = "ArrowRight"
	CodeHome       = "Home"
	CodeEnd        = "End"
)

// Event is a single input event. Only the fields relevant to the event
// type are set: Pos and Button for mouse events, Key for key events,
// Pos and Delta for scroll events.
type Event struct {
	Type Types

	// Pos is the position in absolute (viewport) coordinates.
	Pos math32.Vector2

	// Button is the mouse button for mouse events.
	Button Buttons

	// Key is the key code for [KeyDown] events.
	Key string

	// Delta is the scroll amount for [Scroll] events.
	Delta math32.Vector2
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, button Buttons, pos math32.Vector2) Event {
	return Event{Type: typ, Button: button, Pos: pos}
}

// NewKey returns a new [KeyDown] event for the given key code.
func NewKey(code string) Event {
	return Event{Type: KeyDown, Key: code}
}

// NewScroll returns a new [Scroll] event at the given position with the
// given wheel delta.
func NewScroll(pos, delta math32.Vector2) Event {
	return Event{Type: Scroll, Pos: pos, Delta: delta}
}

// IsMouse reports whether this is a mouse press, move, or release event.
func (e Event) IsMouse() bool {
	return e.Type == MouseDown || e.Type == MouseMove || e.Type == MouseUp
}
