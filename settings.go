// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import "github.com/ericsakmar/roundslider/math32"

// Default settings values.
const (
	// PathStartAngleDefault is the default start angle of the active arc,
	// in degrees (0 = 3 o'clock, angles increase clockwise in screen
	// coordinates).
	PathStartAngleDefault float32 = 0

	// PathEndAngleDefault is the default end angle of the active arc.
	PathEndAngleDefault float32 = 360

	// StrokeWidthDefault is the default path stroke width.
	StrokeWidthDefault float32 = 5
)

// Default settings vectors and colors.
var (
	// SVGRadiiDefault is the default rx/ry of the slider ellipse.
	SVGRadiiDefault = math32.Vec2(150, 150)

	// PointerRadiiDefault is the default rx/ry of a pointer.
	PointerRadiiDefault = math32.Vec2(10, 10)
)

// Default colors.
const (
	PathBgColorDefault       = "#efefef"
	ConnectionBgColorDefault = "#5daed2"
	PointerBgColorDefault    = "#163a86"
)

// PointerSettings are the user-supplied settings for one pointer.
type PointerSettings struct {
	// Value is the initial value: a number for numeric ranges, or a data
	// item for categorical ranges. A nil value starts at the range minimum.
	Value any

	// Radii is this pointer's rx/ry; the zero vector inherits
	// [Settings.PointerRadii].
	Radii math32.Vector2

	// ID is an optional stable identity; when empty, one is generated from
	// the pointer's ordinal position.
	ID string

	// BgColor is the fill color; empty inherits [Settings.PointerBgColor].
	BgColor string

	Disabled           bool
	KeyboardDisabled   bool
	MousewheelDisabled bool
}

// Settings is the user settings object for a slider. Min, Max, and Step
// are loosely typed the way user input arrives (numbers, numeric strings,
// data items, or a [StepFunc]) and are resolved by [ResolveRange] and
// [ResolveStep] when the slider is created.
type Settings struct {
	Min  any
	Max  any
	Step any

	// Data is the ordered sequence of string or number items for a
	// categorical range; empty for a numeric range.
	Data []any

	// PathStartAngle and PathEndAngle define the active arc in degrees.
	// The end angle may be numerically less than the start angle, meaning
	// the arc wraps through 0.
	PathStartAngle float32
	PathEndAngle   float32

	// SVGRadii is the rx/ry of the slider ellipse.
	SVGRadii math32.Vector2

	// PointerRadii is the default rx/ry for pointers without their own.
	PointerRadii math32.Vector2

	// StrokeWidth is the width of the slider path stroke.
	StrokeWidth float32

	PathBgColor       string
	ConnectionBgColor string
	PointerBgColor    string

	// Pointers configures the draggable handles; when empty, a single
	// default pointer is created.
	Pointers []PointerSettings
}

// DefaultSettings returns a [Settings] with all defaults: a full-circle
// numeric slider from [MinValueDefault] to [MaxValueDefault] with one
// pointer.
func DefaultSettings() Settings {
	return Settings{
		PathStartAngle:    PathStartAngleDefault,
		PathEndAngle:      PathEndAngleDefault,
		SVGRadii:          SVGRadiiDefault,
		PointerRadii:      PointerRadiiDefault,
		StrokeWidth:       StrokeWidthDefault,
		PathBgColor:       PathBgColorDefault,
		ConnectionBgColor: ConnectionBgColorDefault,
		PointerBgColor:    PointerBgColorDefault,
	}
}
