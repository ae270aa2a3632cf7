// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnglesDistance(t *testing.T) {
	assert.Equal(t, float32(0), AnglesDistance(0, 0))
	assert.Equal(t, float32(90), AnglesDistance(0, 90))
	assert.Equal(t, float32(180), AnglesDistance(0, 180))
	assert.Equal(t, float32(90), AnglesDistance(0, 270))
	assert.Equal(t, float32(20), AnglesDistance(350, 10))
	assert.Equal(t, float32(2), AnglesDistance(359, 1))
}

// separation is symmetric and in [0, 180] for all angle pairs.
func TestAnglesDistanceProperties(t *testing.T) {
	for a := float32(0); a < 360; a += 7.5 {
		for b := float32(0); b < 360; b += 7.5 {
			d := AnglesDistance(a, b)
			assert.Equal(t, d, AnglesDistance(b, a), "a=%v b=%v", a, b)
			assert.GreaterOrEqual(t, d, float32(0), "a=%v b=%v", a, b)
			assert.LessOrEqual(t, d, float32(180), "a=%v b=%v", a, b)
		}
	}
}

func TestIsAngleInArc(t *testing.T) {
	// plain arc
	assert.True(t, IsAngleInArc(0, 90, 45))
	assert.True(t, IsAngleInArc(0, 90, 0))
	assert.True(t, IsAngleInArc(0, 90, 90))
	assert.False(t, IsAngleInArc(0, 90, 91))
	assert.False(t, IsAngleInArc(0, 90, 270))

	// arc wrapping through 0
	assert.True(t, IsAngleInArc(350, 10, 355))
	assert.True(t, IsAngleInArc(350, 10, 0))
	assert.True(t, IsAngleInArc(350, 10, 5))
	assert.True(t, IsAngleInArc(350, 10, 10))
	assert.False(t, IsAngleInArc(350, 10, 11))
	assert.False(t, IsAngleInArc(350, 10, 180))

	// full circle
	assert.True(t, IsAngleInArc(0, 360, 123))
}

func TestConvertRange(t *testing.T) {
	assert.Equal(t, float32(50), ConvertRange(5, 0, 10, 0, 100))
	assert.Equal(t, float32(0), ConvertRange(0, 0, 10, 0, 100))
	assert.Equal(t, float32(100), ConvertRange(10, 0, 10, 0, 100))
	assert.InDelta(t, Pi/2, ConvertRange(Pi, 0, 2*Pi, 0, Pi), 1e-6)
	assert.Equal(t, float32(-5), ConvertRange(25, 0, 100, -20, 40))
}

func TestPointOnEllipse(t *testing.T) {
	center := Vec2(100, 100)
	radii := Vec2(50, 30)

	assert.Equal(t, Vec2(150, 100), PointOnEllipse(center, radii, 0))
	p := PointOnEllipse(center, radii, DegToRad(90))
	assert.InDelta(t, 100, p.X, 1e-4)
	assert.InDelta(t, 130, p.Y, 1e-4)

	// every result lies on the ellipse
	for deg := float32(0); deg < 360; deg += 11 {
		p := PointOnEllipse(center, radii, DegToRad(deg))
		dx := (p.X - center.X) / radii.X
		dy := (p.Y - center.Y) / radii.Y
		assert.InDelta(t, 1, dx*dx+dy*dy, 1e-4, "deg=%v", deg)
	}
}

// EllipseMovement covers the full ellipse over the half-turn domain.
func TestEllipseMovement(t *testing.T) {
	center := Vec2(0, 0)
	radii := Vec2(10, 10)

	for deg := float32(0); deg < 360; deg += 15 {
		angle := DegToRad(deg)
		tp := ConvertRange(angle, 0, 2*Pi, 0, Pi)
		p := EllipseMovement(center, tp, radii)
		want := PointOnEllipse(center, radii, angle)
		assert.InDelta(t, want.X, p.X, 1e-3, "deg=%v", deg)
		assert.InDelta(t, want.Y, p.Y, 1e-3, "deg=%v", deg)
	}
}
