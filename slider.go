// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roundslider implements the geometry and interaction-mapping core
// of a circular/elliptical slider widget with one or more draggable
// pointers. It converts between raw screen coordinates, angular position
// on an ellipse, and normalized value/percent along a numeric or
// categorical range, and computes the layout quantities (canvas size,
// center, arc segments) needed to render the slider.
package roundslider

import (
	"strconv"

	"github.com/ericsakmar/roundslider/events"
	"github.com/ericsakmar/roundslider/math32"
)

// Slider is the state container for one slider instance. All contained
// values are owned by the slider and are updated synchronously from input
// events; nothing is shared across instances.
type Slider struct {
	// Settings are the resolved user settings this slider was built from.
	Settings Settings

	// Range is the resolved numeric or categorical range.
	Range Range

	// Step is the resolved stepping behavior.
	Step Step

	// Pointers are the draggable handles, in index order.
	Pointers []Pointer

	// computed layout values
	size    math32.Vector2
	center  math32.Vector2
	segment EllipseSegment

	// active is the index of the pointer being dragged, or -1.
	active int
}

// NewSlider returns a new [Slider] for the given settings. Zero-valued
// geometry settings fall back to the package defaults, and an empty
// pointer list produces a single default pointer at the range minimum.
func NewSlider(settings Settings) *Slider {
	sl := &Slider{active: -1}
	sl.applySettings(settings)
	return sl
}

// Update re-resolves the slider from new settings, as on a settings
// change in the host component. Pointers whose ID survives the change
// keep their current percent.
func (sl *Slider) Update(settings Settings) {
	percents := map[string]float32{}
	for _, p := range sl.Pointers {
		percents[p.ID] = p.Percent
	}
	sl.applySettings(settings)
	for i, p := range sl.Pointers {
		if pct, ok := percents[p.ID]; ok {
			sl.Pointers[i].Percent = pct
		}
	}
}

func (sl *Slider) applySettings(settings Settings) {
	if settings.SVGRadii == (math32.Vector2{}) {
		settings.SVGRadii = SVGRadiiDefault
	}
	if settings.PointerRadii == (math32.Vector2{}) {
		settings.PointerRadii = PointerRadiiDefault
	}
	if settings.StrokeWidth == 0 {
		settings.StrokeWidth = StrokeWidthDefault
	}
	if settings.PathStartAngle == 0 && settings.PathEndAngle == 0 {
		settings.PathEndAngle = PathEndAngleDefault
	}
	if settings.PathBgColor == "" {
		settings.PathBgColor = PathBgColorDefault
	}
	if settings.ConnectionBgColor == "" {
		settings.ConnectionBgColor = ConnectionBgColorDefault
	}
	if settings.PointerBgColor == "" {
		settings.PointerBgColor = PointerBgColorDefault
	}
	if len(settings.Pointers) == 0 {
		settings.Pointers = []PointerSettings{{}}
	}
	sl.Settings = settings

	sl.Range = ResolveRange(settings.Min, settings.Max, settings.Data)
	sl.Step = ResolveStep(settings.Step, sl.Range.Min, sl.Range.Max)

	sl.Pointers = make([]Pointer, len(settings.Pointers))
	for i, ps := range settings.Pointers {
		radii := ps.Radii
		if radii == (math32.Vector2{}) {
			radii = settings.PointerRadii
		}
		id := ps.ID
		if id == "" {
			id = "pointer-" + strconv.Itoa(i)
		}
		bg := ps.BgColor
		if bg == "" {
			bg = settings.PointerBgColor
		}
		sl.Pointers[i] = Pointer{
			Radii:              radii,
			Percent:            sl.PercentForValue(ps.Value),
			ID:                 id,
			Index:              i,
			BgColor:            bg,
			Disabled:           ps.Disabled,
			KeyboardDisabled:   ps.KeyboardDisabled,
			MousewheelDisabled: ps.MousewheelDisabled,
		}
	}

	maxRadii := MaxPointer(sl.Pointers)
	sl.size = SVGSize(settings.SVGRadii, maxRadii, settings.StrokeWidth)
	sl.center = SVGCenter(settings.SVGRadii, maxRadii, settings.StrokeWidth)
	sl.segment = NewEllipseSegment(settings.PathStartAngle, settings.PathEndAngle,
		settings.SVGRadii, maxRadii, settings.StrokeWidth)
}

// Size returns the computed canvas size.
func (sl *Slider) Size() math32.Vector2 { return sl.size }

// Center returns the computed canvas center.
func (sl *Slider) Center() math32.Vector2 { return sl.center }

// Segment returns the arc segment of the active path.
func (sl *Slider) Segment() EllipseSegment { return sl.segment }

// MaxPointerRadii returns the bounding radii over all pointers.
func (sl *Slider) MaxPointerRadii() math32.Vector2 { return MaxPointer(sl.Pointers) }

// endAngle returns the end angle corrected to be numerically greater than
// the start angle for arcs wrapping through 0.
func (sl *Slider) endAngle() float32 {
	end := sl.Settings.PathEndAngle
	if end < sl.Settings.PathStartAngle {
		end += 360
	}
	return end
}

// AngleForPercent returns the angle in degrees on the active arc for the
// given percent in [0, 100].
func (sl *Slider) AngleForPercent(percent float32) float32 {
	return math32.ConvertRange(percent, 0, 100, sl.Settings.PathStartAngle, sl.endAngle())
}

// PointerPoint returns the on-ellipse point for the given pointer's
// current percent.
func (sl *Slider) PointerPoint(i int) math32.Vector2 {
	angle := sl.AngleForPercent(sl.Pointers[i].Percent)
	return math32.PointOnEllipse(sl.center, sl.Settings.SVGRadii, math32.DegToRad(angle))
}

// PercentForPoint returns the percent along the active arc for the given
// on-ellipse point.
func (sl *Slider) PercentForPoint(pt math32.Vector2) float32 {
	vector := pt.Sub(sl.center)
	angle := math32.Atan2(vector.Y, vector.X)
	if angle < 0 {
		angle += 2 * math32.Pi
	}
	degrees := math32.RadToDeg(angle)

	start, end := sl.Settings.PathStartAngle, sl.endAngle()
	if end == start {
		return 0
	}
	if degrees < start {
		degrees += 360
	}
	if degrees > end {
		// outside the active arc: snap to the angularly closer end,
		// preferring the start on an exact tie
		if math32.AnglesDistance(degrees, start) <= math32.AnglesDistance(degrees, end) {
			return 0
		}
		return 100
	}
	return math32.Clamp(math32.ConvertRange(degrees, start, end, 0, 100), 0, 100)
}

// PercentForValue returns the percent along the range for the given value:
// a number for numeric ranges, or a data item for categorical ranges. A
// nil or unresolvable value maps to the range minimum.
func (sl *Slider) PercentForValue(value any) float32 {
	if sl.Range.Max == sl.Range.Min {
		return 0
	}
	var v float32
	switch sl.Range.Kind {
	case RangeCategorical:
		v = float32(findIndex(sl.Range.Data, value, int(sl.Range.Min)))
	default:
		v = asNumber(value, sl.Range.Min)
	}
	return math32.Clamp(math32.ConvertRange(v, sl.Range.Min, sl.Range.Max, 0, 100), 0, 100)
}

// valueAt returns the range-space value at the given percent: a numeric
// value for numeric ranges, or a fractional index for categorical ones.
func (sl *Slider) valueAt(percent float32) float32 {
	if sl.Range.Max == sl.Range.Min {
		return sl.Range.Min
	}
	return math32.ConvertRange(percent, 0, 100, sl.Range.Min, sl.Range.Max)
}

// Value returns the given pointer's current value: a float32 for numeric
// ranges, or the data item at the nearest index for categorical ranges.
func (sl *Slider) Value(i int) any {
	v := sl.valueAt(sl.Pointers[i].Percent)
	if sl.Range.Kind == RangeCategorical {
		idx := math32.Clamp(int(math32.Round(v)), 0, len(sl.Range.Data)-1)
		return sl.Range.Data[idx]
	}
	return v
}

// SetValue sets the given pointer to the given value, snapped per the
// resolved step.
func (sl *Slider) SetValue(i int, value any) {
	sl.SetPointerPercent(i, sl.PercentForValue(value))
}

// stepPercent returns the resolved step size expressed in percent of the
// range at the given percent, or 0 when there is no stepping.
func (sl *Slider) stepPercent(percent float32) float32 {
	var size float32
	switch sl.Step.Kind {
	case StepFixed:
		size = sl.Step.Size
	case StepComputed:
		size = sl.Step.Func(sl.valueAt(percent), percent)
	default:
		return 0
	}
	span := math32.Abs(sl.Range.Max - sl.Range.Min)
	if size <= 0 || span == 0 {
		return 0
	}
	return size / span * 100
}

// SetPointerPercent sets the given pointer's percent, clamped to [0, 100]
// and snapped to the resolved step.
func (sl *Slider) SetPointerPercent(i int, percent float32) {
	percent = math32.Clamp(percent, 0, 100)
	if sp := sl.stepPercent(percent); sp > 0 {
		percent = math32.Clamp(math32.Round(percent/sp)*sp, 0, 100)
	}
	sl.Pointers[i].Percent = percent
}

// Drag moves the given pointer toward the given absolute input coordinate,
// using the current bounding box of the rendering surface. The coordinate
// is mapped onto the active arc via [PointerPosition]; disabled pointers
// do not move.
func (sl *Slider) Drag(i int, bounds math32.Box2, absPos math32.Vector2) {
	if i < 0 || i >= len(sl.Pointers) || sl.Pointers[i].Disabled {
		return
	}
	pos := PointerPosition(bounds, absPos, sl.center, sl.Settings.SVGRadii,
		sl.Settings.PathStartAngle, sl.Settings.PathEndAngle,
		sl.segment.Start, sl.segment.End)
	sl.SetPointerPercent(i, sl.PercentForPoint(pos))
}

// ActivePointer returns the index of the pointer currently being dragged,
// or -1.
func (sl *Slider) ActivePointer() int { return sl.active }

// nearestPointer returns the enabled pointer closest to the given absolute
// position; on equal distance the later index wins, matching z-order.
func (sl *Slider) nearestPointer(bounds math32.Box2, absPos math32.Vector2) int {
	relative := absPos.Sub(bounds.Min)
	best := -1
	bestDist := math32.Infinity
	for i, p := range sl.Pointers {
		if p.Disabled {
			continue
		}
		if d := relative.DistanceToSquared(sl.PointerPoint(i)); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// targetPointer returns the pointer an untargeted event applies to:
// the active pointer if allowed, else the first enabled pointer passing
// the given filter.
func (sl *Slider) targetPointer(allowed func(Pointer) bool) int {
	if sl.active >= 0 && allowed(sl.Pointers[sl.active]) {
		return sl.active
	}
	for i, p := range sl.Pointers {
		if allowed(p) {
			return i
		}
	}
	return -1
}

// HandleEvent processes one input event against the given rendering
// surface bounds. Mouse events select and drag the nearest pointer; arrow,
// Home, and End keys move the target pointer by one step (1 percent when
// continuous); wheel events do the same in the direction of the scroll.
func (sl *Slider) HandleEvent(bounds math32.Box2, e events.Event) {
	switch e.Type {
	case events.MouseDown:
		if i := sl.nearestPointer(bounds, e.Pos); i >= 0 {
			sl.active = i
			sl.Drag(i, bounds, e.Pos)
		}
	case events.MouseMove:
		if sl.active >= 0 {
			sl.Drag(sl.active, bounds, e.Pos)
		}
	case events.MouseUp:
		sl.active = -1
	case events.KeyDown:
		i := sl.targetPointer(func(p Pointer) bool {
			return !p.Disabled && !p.KeyboardDisabled
		})
		if i < 0 {
			return
		}
		switch e.Key {
		case events.CodeArrowUp, events.CodeArrowRight:
			sl.SetPointerPercent(i, sl.Pointers[i].Percent+sl.eventStepPercent(i))
		case events.CodeArrowDown, events.CodeArrowLeft:
			sl.SetPointerPercent(i, sl.Pointers[i].Percent-sl.eventStepPercent(i))
		case events.CodeHome:
			sl.SetPointerPercent(i, 0)
		case events.CodeEnd:
			sl.SetPointerPercent(i, 100)
		}
	case events.Scroll:
		i := sl.targetPointer(func(p Pointer) bool {
			return !p.Disabled && !p.MousewheelDisabled
		})
		if i < 0 || e.Delta.Y == 0 {
			return
		}
		sp := sl.eventStepPercent(i)
		if e.Delta.Y > 0 {
			sp = -sp
		}
		sl.SetPointerPercent(i, sl.Pointers[i].Percent+sp)
	}
}

// eventStepPercent is the per-keypress / per-wheel-notch increment in
// percent: the resolved step, or 1 percent for continuous sliders.
func (sl *Slider) eventStepPercent(i int) float32 {
	if sp := sl.stepPercent(sl.Pointers[i].Percent); sp > 0 {
		return sp
	}
	return 1
}
