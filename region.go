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

package scrollbar

import "image"

// Region is the visible and clickable shape of a scrollbar, in widget
// coordinates.
type Region struct {
	// Bounds is the bounding box of the region.
	Bounds image.Rectangle

	// Mask, if non-nil, gives the coverage of each pixel in Bounds.
	// A nil Mask means that the whole of Bounds belongs to the region.
	Mask *image.Alpha
}

// Contains reports whether the pixel p belongs to the region.  Pixels
// which are at least half covered count as inside.
func (g Region) Contains(p image.Point) bool {
	if !p.In(g.Bounds) {
		return false
	}
	if g.Mask == nil {
		return true
	}
	return g.Mask.AlphaAt(p.X, p.Y).A >= 0x80
}

// Empty reports whether the region contains no pixels.
func (g Region) Empty() bool {
	return g.Bounds.Empty()
}

