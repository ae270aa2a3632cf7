// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg renders a slider as an SVG document: the track path as an
// elliptical arc, a connection arc from the track start to each pointer,
// and one ellipse per pointer.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericsakmar/roundslider"
	"github.com/ericsakmar/roundslider/math32"
)

// coord formats a coordinate value rounded to 2 decimal places, the same
// stability rounding the layout uses for the canvas center.
func coord(v float32) string {
	return strconv.FormatFloat(float64(math32.RoundDecimals(v, 2)), 'f', -1, 32)
}

// ArcPath returns SVG path data drawing the given segment as an elliptical
// arc with the given radii, sweeping in the increasing-angle direction.
func ArcPath(seg roundslider.EllipseSegment, radii math32.Vector2) string {
	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s",
		coord(seg.Start.X), coord(seg.Start.Y),
		coord(radii.X), coord(radii.Y),
		seg.LargeArcFlag,
		coord(seg.End.X), coord(seg.End.Y))
}

// ConnectionSegment returns the arc segment from the start of the active
// path to the given pointer's current position.
func ConnectionSegment(sl *roundslider.Slider, i int) roundslider.EllipseSegment {
	start := sl.Settings.PathStartAngle
	span := sl.AngleForPercent(sl.Pointers[i].Percent) - start
	largeArcFlag := 0
	if span > 180 {
		largeArcFlag = 1
	}
	return roundslider.EllipseSegment{
		Start:        sl.Segment().Start,
		End:          sl.PointerPoint(i),
		LargeArcFlag: largeArcFlag,
	}
}

// Render returns the slider as a complete SVG document.
func Render(sl *roundslider.Slider) []byte {
	var b strings.Builder
	size := sl.Size()
	radii := sl.Settings.SVGRadii

	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		coord(size.X), coord(size.Y), coord(size.X), coord(size.Y))

	fmt.Fprintf(&b, "\t<path d=%q fill=\"none\" stroke=%q stroke-width=\"%s\" stroke-linecap=\"round\"/>\n",
		ArcPath(sl.Segment(), radii), sl.Settings.PathBgColor, coord(sl.Settings.StrokeWidth))

	for i := range sl.Pointers {
		if sl.Pointers[i].Percent <= 0 {
			continue
		}
		fmt.Fprintf(&b, "\t<path d=%q fill=\"none\" stroke=%q stroke-width=\"%s\" stroke-linecap=\"round\"/>\n",
			ArcPath(ConnectionSegment(sl, i), radii),
			sl.Settings.ConnectionBgColor, coord(sl.Settings.StrokeWidth))
	}

	// later pointers render on top
	for i, p := range sl.Pointers {
		pt := sl.PointerPoint(i)
		fmt.Fprintf(&b, "\t<ellipse cx=\"%s\" cy=\"%s\" rx=\"%s\" ry=\"%s\" fill=%q/>\n",
			coord(pt.X), coord(pt.Y), coord(p.Radii.X), coord(p.Radii.Y), p.BgColor)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}
