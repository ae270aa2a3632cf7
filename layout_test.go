// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericsakmar/roundslider/math32"
)

func TestSVGSize(t *testing.T) {
	radii := math32.Vec2(100, 100)

	// pointer fits inside the stroke: only the stroke pads the canvas
	assert.Equal(t, math32.Vec2(210, 210), SVGSize(radii, math32.Vec2(5, 5), 10))

	// pointer larger than the stroke: its overhang pads the canvas
	assert.Equal(t, math32.Vec2(230, 230), SVGSize(radii, math32.Vec2(15, 15), 10))

	// elliptical radii are handled per axis
	assert.Equal(t, math32.Vec2(220, 140), SVGSize(math32.Vec2(100, 60), math32.Vec2(10, 10), 5))
}

// SVGSize never shrinks as strokeWidth or pointer radii grow.
func TestSVGSizeMonotonic(t *testing.T) {
	radii := math32.Vec2(100, 80)
	prev := SVGSize(radii, math32.Vec2(0, 0), 0)
	for stroke := float32(0); stroke <= 30; stroke += 3 {
		sz := SVGSize(radii, math32.Vec2(0, 0), stroke)
		assert.GreaterOrEqual(t, sz.X, prev.X)
		assert.GreaterOrEqual(t, sz.Y, prev.Y)
		prev = sz
	}

	prev = SVGSize(radii, math32.Vec2(0, 0), 5)
	for pr := float32(0); pr <= 40; pr += 4 {
		sz := SVGSize(radii, math32.Vec2(pr, pr), 5)
		assert.GreaterOrEqual(t, sz.X, prev.X)
		assert.GreaterOrEqual(t, sz.Y, prev.Y)
		prev = sz
	}
}

func TestSVGCenter(t *testing.T) {
	for _, stroke := range []float32{0, 3.33, 5, 17.77} {
		for _, pr := range []float32{0, 7.5, 12.34} {
			radii := math32.Vec2(100, 80)
			size := SVGSize(radii, math32.Vec2(pr, pr), stroke)
			center := SVGCenter(radii, math32.Vec2(pr, pr), stroke)
			assert.Equal(t, math32.RoundDecimals(size.X/2, 2), center.X)
			assert.Equal(t, math32.RoundDecimals(size.Y/2, 2), center.Y)
		}
	}
}

func TestNewEllipseSegment(t *testing.T) {
	radii := math32.Vec2(100, 100)
	pointer := math32.Vec2(10, 10)
	stroke := float32(5)
	center := SVGCenter(radii, pointer, stroke)

	quarter := NewEllipseSegment(0, 90, radii, pointer, stroke)
	assert.Equal(t, 0, quarter.LargeArcFlag)
	assert.InDelta(t, center.X+100, quarter.Start.X, 1e-3)
	assert.InDelta(t, center.Y, quarter.Start.Y, 1e-3)
	assert.InDelta(t, center.X, quarter.End.X, 1e-3)
	assert.InDelta(t, center.Y+100, quarter.End.Y, 1e-3)

	threeQuarters := NewEllipseSegment(0, 270, radii, pointer, stroke)
	assert.Equal(t, 1, threeQuarters.LargeArcFlag)

	half := NewEllipseSegment(0, 180, radii, pointer, stroke)
	assert.Equal(t, 0, half.LargeArcFlag)
}

// An arc wrapping through 0 keeps the flag computed from the raw angle
// difference, and places the end point at the wrap-corrected angle.
func TestEllipseSegmentWrap(t *testing.T) {
	radii := math32.Vec2(100, 100)
	pointer := math32.Vec2(10, 10)
	stroke := float32(5)
	center := SVGCenter(radii, pointer, stroke)

	seg := NewEllipseSegment(350, 10, radii, pointer, stroke)
	assert.Equal(t, 0, seg.LargeArcFlag)

	wantEnd := math32.PointOnEllipse(center, radii, math32.DegToRad(370))
	assert.InDelta(t, wantEnd.X, seg.End.X, 1e-3)
	assert.InDelta(t, wantEnd.Y, seg.End.Y, 1e-3)
}

func TestEllipseSegmentDegenerate(t *testing.T) {
	radii := math32.Vec2(100, 100)
	seg := NewEllipseSegment(45, 45, radii, math32.Vec2(10, 10), 5)
	assert.Equal(t, seg.Start, seg.End)
	assert.Equal(t, 0, seg.LargeArcFlag)
}
