// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roundslider

import "github.com/ericsakmar/roundslider/math32"

// StepDefault is the fallback step size used when a numeric user step
// cannot be resolved.
const StepDefault float32 = 1

// StepFunc computes a step size from the current value and percent.
// It is evaluated on each drag rather than being resolved up front.
type StepFunc func(value, percent float32) float32

// StepKinds are the kinds of slider stepping behavior.
type StepKinds int32

const (
	// StepNone is continuous dragging with no stepping.
	StepNone StepKinds = iota

	// StepFixed is a fixed numeric step increment.
	StepFixed

	// StepComputed is a step computed per-drag by a [StepFunc].
	StepComputed
)

func (sk StepKinds) String() string {
	switch sk {
	case StepNone:
		return "None"
	case StepFixed:
		return "Fixed"
	case StepComputed:
		return "Computed"
	}
	return "StepKindsInvalid"
}

// Step is the resolved stepping behavior of a slider: one of no stepping,
// a fixed numeric increment, or a per-drag computed increment.
type Step struct {
	Kind StepKinds

	// Size is the fixed increment for [StepFixed].
	Size float32

	// Func is the per-drag step function for [StepComputed].
	Func StepFunc
}

// ResolveStep resolves the given user-supplied step against the resolved
// min and max bounds:
//   - nil resolves to [StepNone] (continuous drag);
//   - a [StepFunc] is passed through as [StepComputed] for deferred
//     per-drag evaluation;
//   - a numeric value resolves to [StepFixed], falling back to
//     [StepDefault] when unresolvable; a step exceeding |max-min| is
//     discarded to [StepNone] rather than clamped, since a step larger
//     than the whole range is meaningless and silently clamping it would
//     surprise the caller;
//   - any other type resolves to [StepNone].
func ResolveStep(step any, min, max float32) Step {
	switch st := step.(type) {
	case nil:
		return Step{Kind: StepNone}
	case StepFunc:
		return Step{Kind: StepComputed, Func: st}
	case func(value, percent float32) float32:
		return Step{Kind: StepComputed, Func: st}
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		size, ok := toFloat32(st)
		if !ok {
			size = StepDefault
		}
		if size > math32.Abs(max-min) {
			return Step{Kind: StepNone}
		}
		return Step{Kind: StepFixed, Size: size}
	}
	return Step{Kind: StepNone}
}
