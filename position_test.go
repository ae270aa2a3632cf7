// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericsakmar/roundslider/math32"
)

// onEllipse asserts that p satisfies the ellipse equation for the given
// center and radii within floating-point tolerance.
func onEllipse(t *testing.T, p, center, radii math32.Vector2) {
	t.Helper()
	dx := (p.X - center.X) / radii.X
	dy := (p.Y - center.Y) / radii.Y
	assert.InDelta(t, 1, dx*dx+dy*dy, 1e-3)
}

func TestPointerPositionFullCircle(t *testing.T) {
	bounds := math32.B2(50, 50, 350, 350)
	center := math32.Vec2(150, 150)
	radii := math32.Vec2(100, 100)
	seg := NewEllipseSegment(0, 360, radii, math32.Vec2(10, 10), 5)

	// a point to the right of center maps to angle 0
	p := PointerPosition(bounds, math32.Vec2(350, 200), center, radii, 0, 360, seg.Start, seg.End)
	assert.InDelta(t, center.X+100, p.X, 1e-3)
	assert.InDelta(t, center.Y, p.Y, 1e-3)
	onEllipse(t, p, center, radii)

	// directly below center (screen coords): angle 90
	p = PointerPosition(bounds, math32.Vec2(200, 400), center, radii, 0, 360, seg.Start, seg.End)
	assert.InDelta(t, center.X, p.X, 1e-3)
	assert.InDelta(t, center.Y+100, p.Y, 1e-3)
}

// The result always lies on the ellipse, for any input coordinate.
func TestPointerPositionOnEllipse(t *testing.T) {
	bounds := math32.B2(10, 20, 400, 400)
	center := math32.Vec2(120, 110)
	radii := math32.Vec2(90, 60)
	seg := NewEllipseSegment(0, 360, radii, math32.Vec2(10, 10), 5)

	for x := float32(-50); x <= 450; x += 37 {
		for y := float32(-50); y <= 450; y += 41 {
			p := PointerPosition(bounds, math32.Vec2(x, y), center, radii, 0, 360, seg.Start, seg.End)
			onEllipse(t, p, center, radii)
		}
	}
}

func TestPointerPositionClamp(t *testing.T) {
	bounds := math32.B2(0, 0, 300, 300)
	center := math32.Vec2(150, 150)
	radii := math32.Vec2(100, 100)
	arcStart := math32.PointOnEllipse(center, radii, math32.DegToRad(90))
	arcEnd := math32.PointOnEllipse(center, radii, math32.DegToRad(270))

	// 80 degrees is outside [90, 270] and closer to the start
	p := PointerPosition(bounds, math32.Vec2(
		center.X+200*math32.Cos(math32.DegToRad(80)),
		center.Y+200*math32.Sin(math32.DegToRad(80))),
		center, radii, 90, 270, arcStart, arcEnd)
	assert.Equal(t, arcStart, p)

	// 280 degrees is outside and closer to the end
	p = PointerPosition(bounds, math32.Vec2(
		center.X+200*math32.Cos(math32.DegToRad(280)),
		center.Y+200*math32.Sin(math32.DegToRad(280))),
		center, radii, 90, 270, arcStart, arcEnd)
	assert.Equal(t, arcEnd, p)
}

// Exactly equidistant from both endpoints prefers the arc start.
func TestPointerPositionClampTie(t *testing.T) {
	bounds := math32.B2(0, 0, 300, 300)
	center := math32.Vec2(150, 150)
	radii := math32.Vec2(100, 100)
	arcStart := math32.PointOnEllipse(center, radii, math32.DegToRad(90))
	arcEnd := math32.PointOnEllipse(center, radii, math32.DegToRad(270))

	// angle 0 is 90 degrees from both ends of the [90, 270] arc
	p := PointerPosition(bounds, math32.Vec2(center.X+200, center.Y),
		center, radii, 90, 270, arcStart, arcEnd)
	assert.Equal(t, arcStart, p)
}

func TestPointerPositionInsideWrapArc(t *testing.T) {
	bounds := math32.B2(0, 0, 300, 300)
	center := math32.Vec2(150, 150)
	radii := math32.Vec2(100, 100)
	seg := NewEllipseSegment(350, 10, radii, math32.Vec2(10, 10), 5)

	// angle 0 is inside the wrapping arc [350, 10]
	p := PointerPosition(bounds, math32.Vec2(center.X+137, center.Y),
		center, radii, 350, 10, seg.Start, seg.End)
	assert.InDelta(t, center.X+100, p.X, 1e-3)
	assert.InDelta(t, center.Y, p.Y, 1e-3)
	onEllipse(t, p, center, radii)
}

// Degenerate surface geometry still yields a finite point.
func TestPointerPositionDegenerate(t *testing.T) {
	bounds := math32.B2(0, 0, 0, 0)
	center := math32.Vec2(0, 0)
	radii := math32.Vec2(100, 100)
	seg := NewEllipseSegment(0, 360, radii, math32.Vec2(10, 10), 5)

	p := PointerPosition(bounds, math32.Vec2(0, 0), center, radii, 0, 360, seg.Start, seg.End)
	assert.False(t, math32.IsNaN(p.X))
	assert.False(t, math32.IsNaN(p.Y))
	onEllipse(t, p, center, radii)
}
