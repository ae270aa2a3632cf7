// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// AnglesDistance returns the minimal absolute angular separation between
// the two given angles in degrees, accounting for wraparound at 360.
// The result is symmetric and always in [0, 180].
func AnglesDistance(a, b float32) float32 {
	diff := Abs(a - b)
	return Min(diff, 360-diff)
}

// IsAngleInArc reports whether the given angle lies on the arc traversed
// from startAngle to endAngle in the increasing direction, wrapping past
// 360 when endAngle < startAngle. All angles are in degrees.
func IsAngleInArc(startAngle, endAngle, angle float32) bool {
	if endAngle < startAngle {
		endAngle += 360
	}
	return (angle >= startAngle && angle <= endAngle) ||
		(angle+360 >= startAngle && angle+360 <= endAngle)
}

// ConvertRange linearly remaps the given value from the range
// [oldMin, oldMax] to the range [newMin, newMax].
func ConvertRange(value, oldMin, oldMax, newMin, newMax float32) float32 {
	return (value-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin
}

// PointOnEllipse returns the point at the given angle in radians on the
// ellipse with the given center and radii.
func PointOnEllipse(center, radii Vector2, angle float32) Vector2 {
	return Vec2(center.X+radii.X*Cos(angle), center.Y+radii.Y*Sin(angle))
}

// EllipseMovement returns the point on the ellipse with the given center
// and radii at the half-turn parameter t: the full ellipse is covered as
// t goes from 0 to Pi, so callers remap a [0, 2*Pi) angle into [0, Pi)
// before passing it here.
func EllipseMovement(center Vector2, t float32, radii Vector2) Vector2 {
	return PointOnEllipse(center, radii, 2*t)
}
