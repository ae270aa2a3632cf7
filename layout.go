// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import "github.com/ericsakmar/roundslider/math32"

// SVGSize returns the canvas width and height for a slider with the given
// ellipse radii, bounding pointer radii, and path stroke width. Per axis,
// the canvas must fit the ellipse diameter plus the stroke as outer
// padding, plus whatever part of the largest pointer extends beyond the
// stroke, so that no pointer ever clips outside the canvas.
func SVGSize(svgRadii, maxPointerRadii math32.Vector2, strokeWidth float32) math32.Vector2 {
	diffX := math32.Max(0, 2*maxPointerRadii.X-strokeWidth)
	diffY := math32.Max(0, 2*maxPointerRadii.Y-strokeWidth)
	return math32.Vec2(
		2*svgRadii.X+strokeWidth+diffX,
		2*svgRadii.Y+strokeWidth+diffY,
	)
}

// SVGCenter returns the center of the canvas: half of [SVGSize] per axis,
// rounded to 2 decimal places to keep sub-pixel layout stable across
// re-renders.
func SVGCenter(svgRadii, maxPointerRadii math32.Vector2, strokeWidth float32) math32.Vector2 {
	size := SVGSize(svgRadii, maxPointerRadii, strokeWidth)
	return size.DivScalar(2).RoundDecimals(2)
}

// EllipseSegment describes one continuous elliptical arc for rendering.
// LargeArcFlag is 1 iff the angular span from start to end exceeds 180
// degrees, matching the SVG arc command flag.
type EllipseSegment struct {
	Start        math32.Vector2
	End          math32.Vector2
	LargeArcFlag int
}

// NewEllipseSegment returns the arc segment from startAngle to endAngle
// (degrees) on the ellipse with the given radii, centered per [SVGCenter].
//
// The large-arc flag is computed from the raw endAngle-startAngle
// difference before wrap correction; when startAngle > endAngle, 360 is
// added to endAngle for placing the end point only. This ordering matches
// the SVG arc flag conventions for wrap-through-zero arcs and must be
// preserved. Equal angles produce coincident endpoints.
func NewEllipseSegment(startAngle, endAngle float32, svgRadii, maxPointerRadii math32.Vector2, strokeWidth float32) EllipseSegment {
	largeArcFlag := 0
	if endAngle-startAngle > 180 {
		largeArcFlag = 1
	}
	if startAngle > endAngle {
		endAngle += 360
	}

	center := SVGCenter(svgRadii, maxPointerRadii, strokeWidth)
	return EllipseSegment{
		Start:        math32.PointOnEllipse(center, svgRadii, math32.DegToRad(startAngle)),
		End:          math32.PointOnEllipse(center, svgRadii, math32.DegToRad(endAngle)),
		LargeArcFlag: largeArcFlag,
	}
}
