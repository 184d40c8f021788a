// seehuhn.de/go/scrollbar - a draggable scrollbar widget
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases holds the scrollbar outlines used to check the
// rasteriser against reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// TestCase is a single filled outline.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the outline, filled with the nonzero winding rule
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// margin is the empty border around each outline, so that anti-aliased
// edges are not clipped by the canvas.
const margin = 3

// box returns a w×h rectangle whose top-left corner is at (x, y), shifted
// by the canvas margin.
func box(x, y, w, h float64) rect.Rect {
	return rect.Rect{
		LLx: margin + x,
		LLy: margin + y,
		URx: margin + x + w,
		URy: margin + y + h,
	}
}

// canvas returns the canvas size for an outline of size w×h.
func canvas(w, h int) (int, int) {
	return w + 2*margin, h + 2*margin
}

// join concatenates the subpaths of several outlines into one path.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
