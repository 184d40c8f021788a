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

import (
	"fmt"
	"image"
)

// Orientation selects the axis along which the thumb moves.
type Orientation int

const (
	// Horizontal scrollbars move the thumb left to right as the value
	// increases.
	Horizontal Orientation = iota

	// Vertical scrollbars move the thumb bottom to top as the value
	// increases.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts "horizontal" or "vertical" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// along returns the extent of size along the scroll axis.
func (o Orientation) along(size image.Point) int {
	if o == Vertical {
		return size.Y
	}
	return size.X
}

// across returns the extent of size perpendicular to the scroll axis.
func (o Orientation) across(size image.Point) int {
	if o == Vertical {
		return size.X
	}
	return size.Y
}

// axisCoord maps a pointer position in widget coordinates to a position
// along the scroll axis, measured in the direction of increasing value.
// For vertical scrollbars this is the distance from the bottom edge.
func (o Orientation) axisCoord(p image.Point, size image.Point) int {
	if o == Vertical {
		return size.Y - p.Y
	}
	return p.X
}

// thumbRect returns the thumb rectangle in widget coordinates, for a
// thumb of the given length whose leading edge is offset pixels along the
// axis.  The thumb always spans the full cross-axis size.
func (o Orientation) thumbRect(size image.Point, offset, length int) image.Rectangle {
	if o == Vertical {
		y := size.Y - length - offset
		return image.Rect(0, y, size.X, y+length)
	}
	return image.Rect(offset, 0, offset+length, size.Y)
}

// defaultSize is the initial widget size.
func (o Orientation) defaultSize() image.Point {
	if o == Vertical {
		return image.Pt(10, 250)
	}
	return image.Pt(250, 10)
}

// defaultValue is the initial value: a new vertical scrollbar starts full,
// a horizontal one empty.
func (o Orientation) defaultValue(minimum, maximum int) int {
	if o == Vertical {
		return maximum
	}
	return minimum
}
