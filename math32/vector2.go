// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components. Depending on
// context it is interpreted as a cartesian point, a radius pair (rx, ry),
// or a generic 2-tuple.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

// Set sets this vector's X and Y components.
func (a *Vector2) Set(x, y float32) {
	a.X = x
	a.Y = y
}

// SetScalar sets all components of this vector to the given scalar value.
func (a *Vector2) SetScalar(scalar float32) {
	a.X = scalar
	a.Y = scalar
}

// SetFixed sets this vector from the given [fixed.Point26_6].
func (a *Vector2) SetFixed(pt fixed.Point26_6) {
	a.X = FromFixed(pt.X)
	a.Y = FromFixed(pt.Y)
}

// ToPoint returns this vector as an [image.Point], with
// components truncated to integers.
func (a Vector2) ToPoint() image.Point {
	return image.Pt(int(a.X), int(a.Y))
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (a Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(a.X), Y: ToFixed(a.Y)}
}

// ToFixed converts the given float32 value to a [fixed.Int26_6].
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts the given [fixed.Int26_6] value to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float32(x>>shift) + float32(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float32(x>>shift) + float32(x&mask)/64)
	}
	return 0
}

func (a Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (a Vector2) Add(v Vector2) Vector2 {
	return Vec2(a.X+v.X, a.Y+v.Y)
}

// AddScalar adds the given scalar value to each component of this vector
// and returns the result as a new vector.
func (a Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(a.X+scalar, a.Y+scalar)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (a Vector2) Sub(v Vector2) Vector2 {
	return Vec2(a.X-v.X, a.Y-v.Y)
}

// SubScalar subtracts the given scalar value from each component of this vector
// and returns the result as a new vector.
func (a Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(a.X-scalar, a.Y-scalar)
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (a Vector2) Mul(v Vector2) Vector2 {
	return Vec2(a.X*v.X, a.Y*v.Y)
}

// MulScalar multiplies each component of this vector by the given scalar value
// and returns the result as a new vector.
func (a Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(a.X*scalar, a.Y*scalar)
}

// Div divides each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (a Vector2) Div(v Vector2) Vector2 {
	return Vec2(a.X/v.X, a.Y/v.Y)
}

// DivScalar divides each component of this vector by the given scalar value
// and returns the result as a new vector.
func (a Vector2) DivScalar(scalar float32) Vector2 {
	if scalar != 0 {
		return a.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// Min returns a new vector with the minimum of each component of
// this vector and the corresponding one of the other given vector.
func (a Vector2) Min(v Vector2) Vector2 {
	return Vec2(Min(a.X, v.X), Min(a.Y, v.Y))
}

// Max returns a new vector with the maximum of each component of
// this vector and the corresponding one of the other given vector.
func (a Vector2) Max(v Vector2) Vector2 {
	return Vec2(Max(a.X, v.X), Max(a.Y, v.Y))
}

// SetMax sets each component of this vector to the maximum of it and
// the corresponding one of the other given vector.
func (a *Vector2) SetMax(v Vector2) {
	a.X = Max(a.X, v.X)
	a.Y = Max(a.Y, v.Y)
}

// Negate returns the vector with each component negated.
func (a Vector2) Negate() Vector2 {
	return Vec2(-a.X, -a.Y)
}

// Abs returns the vector with [Abs] applied to each component.
func (a Vector2) Abs() Vector2 {
	return Vec2(Abs(a.X), Abs(a.Y))
}

// Round returns the vector with [Round] applied to each component.
func (a Vector2) Round() Vector2 {
	return Vec2(Round(a.X), Round(a.Y))
}

// RoundDecimals returns the vector with each component rounded to the
// given number of decimal places.
func (a Vector2) RoundDecimals(places int) Vector2 {
	return Vec2(RoundDecimals(a.X, places), RoundDecimals(a.Y, places))
}

// Dot returns the dot product of this vector with the other given vector.
func (a Vector2) Dot(v Vector2) float32 {
	return a.X*v.X + a.Y*v.Y
}

// Length returns the length (magnitude) of this vector.
func (a Vector2) Length() float32 {
	return Sqrt(a.X*a.X + a.Y*a.Y)
}

// LengthSquared returns the length squared of this vector, which is
// cheaper to compute than [Vector2.Length] for comparisons.
func (a Vector2) LengthSquared() float32 {
	return a.X*a.X + a.Y*a.Y
}

// DistanceTo returns the distance between this vector and the other given vector.
func (a Vector2) DistanceTo(v Vector2) float32 {
	return a.Sub(v).Length()
}

// DistanceToSquared returns the squared distance between this vector
// and the other given vector.
func (a Vector2) DistanceToSquared(v Vector2) float32 {
	return a.Sub(v).LengthSquared()
}

// Angle returns the angle in radians between the positive X axis and this
// vector, in the range (-Pi, Pi].
func (a Vector2) Angle() float32 {
	return Atan2(a.Y, a.X)
}
