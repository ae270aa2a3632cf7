// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import "github.com/ericsakmar/roundslider/math32"

// PointerPosition converts an absolute input coordinate into a clamped
// point on the slider ellipse, respecting the active arc from startAngle
// to endAngle (degrees):
//
//  1. The absolute coordinate is made relative to the rendering surface
//     via its current bounding box.
//  2. The angle of the vector from center to that point is derived and
//     normalized into [0, 2*Pi).
//  3. When the angle falls outside the active arc, the result is clamped
//     to whichever of arcStart/arcEnd is angularly closer, preferring
//     arcStart on an exact tie.
//  4. Otherwise the angle is remapped into the half-turn domain [0, Pi)
//     expected by [math32.EllipseMovement], which places the point on the
//     ellipse.
//
// The returned point always lies on the ellipse boundary defined by
// svgRadii around center, within the active arc. Degenerate surface
// geometry still yields a finite result per standard atan2 behavior.
func PointerPosition(bounds math32.Box2, absPos, center, svgRadii math32.Vector2, startAngle, endAngle float32, arcStart, arcEnd math32.Vector2) math32.Vector2 {
	relative := absPos.Sub(bounds.Min)
	vector := relative.Sub(center)

	angle := math32.Atan2(vector.Y, vector.X)
	if angle < 0 {
		angle += 2 * math32.Pi
	}

	degrees := math32.RadToDeg(angle)
	if !math32.IsAngleInArc(startAngle, endAngle, degrees) {
		startDistance := math32.AnglesDistance(degrees, startAngle)
		endDistance := math32.AnglesDistance(degrees, endAngle)
		if startDistance <= endDistance {
			return arcStart
		}
		return arcEnd
	}

	t := math32.ConvertRange(angle, 0, 2*math32.Pi, 0, math32.Pi)
	return math32.EllipseMovement(center, t, svgRadii)
}
