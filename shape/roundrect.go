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

// Package shape builds the closed outlines used to draw a scrollbar:
// plain rectangles and rectangles with quarter-circle corners.
//
// All coordinates are device coordinates with the y-axis pointing down.
// For a [rect.Rect], LLx/LLy hold the minimum and URx/URy the maximum
// corner.
package shape

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// FromImage converts an integer rectangle to a [rect.Rect].
func FromImage(r image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}

// Inset shrinks r by d on all four sides.  Negative d grows the rectangle.
func Inset(r rect.Rect, d float64) rect.Rect {
	return rect.Rect{LLx: r.LLx + d, LLy: r.LLy + d, URx: r.URx - d, URy: r.URy - d}
}

// CornerSize returns the side length of the square box each corner arc is
// inscribed in, for a w×h rectangle and the requested corner size.
// The result is clamped to max(1, min(size, min(w, h))), so that the arcs
// never overlap.  A result of 1 means the corners are square.
func CornerSize(w, h, size float64) float64 {
	return max(1, min(size, min(w, h)))
}

// Rect returns the outline of r as a closed, clockwise path.
// An empty rectangle gives an empty path.
func Rect(r rect.Rect) *path.Data {
	if r.URx <= r.LLx || r.URy <= r.LLy {
		return &path.Data{}
	}
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// RoundedRect returns the outline of r with rounded corners.
//
// Each corner is a 90° arc inscribed in a square box whose side is
// CornerSize(width, height, size); the arc radius is half of that.  The arcs
// are visited top-left, top-right, bottom-right, bottom-left, sweeping
// clockwise on screen, and are joined by the straight parts of the edges.
// If the effective corner size is at most 1, the plain rectangle is returned.
func RoundedRect(r rect.Rect, size float64) *path.Data {
	w := r.URx - r.LLx
	h := r.URy - r.LLy
	if w <= 0 || h <= 0 {
		return &path.Data{}
	}
	d := CornerSize(w, h, size)
	if d <= 1 {
		return Rect(r)
	}

	rr := d / 2
	k := rr * kappa
	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy

	start := pt(x0, y0+rr)
	b := &builder{p: (&path.Data{}).MoveTo(start), current: start}
	// top-left
	b.cubeTo(pt(x0, y0+rr-k), pt(x0+rr-k, y0), pt(x0+rr, y0))
	b.lineTo(pt(x1-rr, y0))
	// top-right
	b.cubeTo(pt(x1-rr+k, y0), pt(x1, y0+rr-k), pt(x1, y0+rr))
	b.lineTo(pt(x1, y1-rr))
	// bottom-right
	b.cubeTo(pt(x1, y1-rr+k), pt(x1-rr+k, y1), pt(x1-rr, y1))
	b.lineTo(pt(x0+rr, y1))
	// bottom-left
	b.cubeTo(pt(x0+rr-k, y1), pt(x0, y1-rr+k), pt(x0, y1-rr))
	return b.p.Close()
}

// builder tracks the current point so that zero-length edges between
// touching arcs are not emitted.
type builder struct {
	p       *path.Data
	current vec.Vec2
}

func (b *builder) lineTo(to vec.Vec2) {
	if to == b.current {
		return
	}
	b.p = b.p.LineTo(to)
	b.current = to
}

func (b *builder) cubeTo(c1, c2, to vec.Vec2) {
	b.p = b.p.CubeTo(c1, c2, to)
	b.current = to
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
