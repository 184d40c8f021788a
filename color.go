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
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a colour name to a colour.  Accepted names are the
// SVG colour keywords ("lightcoral") and "transparent".  Case and
// surrounding space are ignored.
func ParseColor(s string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown colour %q", s)
}
