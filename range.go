// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import (
	"strconv"

	"github.com/ericsakmar/roundslider/math32"
)

// Default range bounds, used when user-supplied values cannot be resolved.
const (
	// MinValueDefault is the fallback minimum value.
	MinValueDefault float32 = 0

	// MaxValueDefault is the fallback maximum value, also used to recompute
	// the maximum when the user supplies an inverted numeric range.
	MaxValueDefault float32 = 100
)

// RangeKinds are the kinds of slider ranges.
type RangeKinds int32

const (
	// RangeNumeric is a continuous numeric range between min and max values.
	RangeNumeric RangeKinds = iota

	// RangeCategorical is a range over an ordered data sequence,
	// with min and max being indices into that sequence.
	RangeCategorical
)

func (rk RangeKinds) String() string {
	switch rk {
	case RangeNumeric:
		return "Numeric"
	case RangeCategorical:
		return "Categorical"
	}
	return "RangeKindsInvalid"
}

// Range is the resolved range of a slider. For [RangeNumeric], Min and Max
// are values; for [RangeCategorical], they are integer indices into Data.
// In both cases Min and Max are the resolved outputs of [MinMax].
type Range struct {
	Kind RangeKinds
	Min  float32
	Max  float32

	// Data is the ordered sequence of string or number items for
	// [RangeCategorical]; nil for [RangeNumeric].
	Data []any
}

// ResolveRange resolves the given user-supplied min, max, and optional data
// sequence into a [Range]. A non-empty data sequence selects categorical
// mode; otherwise numeric mode is used.
func ResolveRange(min, max any, data []any) Range {
	mm := MinMax(min, max, data)
	if len(data) > 0 {
		return Range{Kind: RangeCategorical, Min: mm.X, Max: mm.Y, Data: data}
	}
	return Range{Kind: RangeNumeric, Min: mm.X, Max: mm.Y}
}

// MinMax resolves the given user-supplied min and max into bounds, returned
// as a vector of (min, max).
//
// If data is non-empty (categorical mode), min and max are resolved to the
// index of their first strictly-equal match in data; an unmatched min
// defaults to index 0 and an unmatched max to the last index. No inversion
// correction is applied in categorical mode.
//
// Otherwise (numeric mode), min and max are resolved as numbers, falling
// back to [MinValueDefault] and [MaxValueDefault]; an inverted range is
// corrected by forcing max = min + [MaxValueDefault].
func MinMax(min, max any, data []any) math32.Vector2 {
	if len(data) > 0 {
		minIndex := findIndex(data, min, 0)
		maxIndex := findIndex(data, max, len(data)-1)
		return math32.Vec2(float32(minIndex), float32(maxIndex))
	}

	minValue := asNumber(min, MinValueDefault)
	maxValue := asNumber(max, MaxValueDefault)
	if minValue > maxValue || maxValue < minValue {
		maxValue = minValue + MaxValueDefault
	}
	return math32.Vec2(minValue, maxValue)
}

// findIndex returns the index of the first item in data strictly equal to
// the given value, or the given default index if there is no match.
func findIndex(data []any, value any, def int) int {
	for i, item := range data {
		if item == value {
			return i
		}
	}
	return def
}

// asNumber resolves the given value to a float32, accepting any numeric
// type or a numeric string, and falling back to the given default when the
// value is absent or unresolvable.
func asNumber(v any, def float32) float32 {
	f, ok := toFloat32(v)
	if !ok {
		return def
	}
	return f
}

// toFloat32 converts the given value to a float32 if it is a numeric type
// or a parseable numeric string.
func toFloat32(v any) (float32, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float32:
		if math32.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float64:
		f := float32(x)
		if math32.IsNaN(f) {
			return 0, false
		}
		return f, true
	case int:
		return float32(x), true
	case int8:
		return float32(x), true
	case int16:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	case uint:
		return float32(x), true
	case uint8:
		return float32(x), true
	case uint16:
		return float32(x), true
	case uint32:
		return float32(x), true
	case uint64:
		return float32(x), true
	case string:
		f, err := strconv.ParseFloat(x, 32)
		if err != nil {
			return 0, false
		}
		return float32(f), true
	}
	return 0, false
}
