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
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampOffset(t *testing.T) {
	for offset := -100; offset <= 400; offset++ {
		c := clampOffset(offset, 250, 50)
		switch {
		case offset < 0:
			assert.Equal(t, 0, c)
		case offset > 200:
			assert.Equal(t, 200, c)
		default:
			assert.Equal(t, offset, c)
		}
		assert.Equal(t, c, clampOffset(c, 250, 50), "clamping is idempotent")
	}
}

func TestKnobSpanDegenerate(t *testing.T) {
	assert.Equal(t, 0, knobSpan(40, 50))
	assert.Equal(t, 0, knobSpan(50, 50))
	assert.Equal(t, 0, clampOffset(17, 40, 50))
	assert.Equal(t, 0, offsetFromPercent(1, 40, 50))
	assert.Equal(t, 0.0, percentFromOffset(0, 40, 50))
	assert.Equal(t, 0.0, percentFromOffset(0, 50, 50))
}

func TestOffsetPercent(t *testing.T) {
	assert.Equal(t, 0, offsetFromPercent(0, 250, 50))
	assert.Equal(t, 100, offsetFromPercent(0.5, 250, 50))
	assert.Equal(t, 200, offsetFromPercent(1, 250, 50))
	assert.Equal(t, 200, offsetFromPercent(1.5, 250, 50))

	assert.Equal(t, 0.5, percentFromOffset(100, 250, 50))
	assert.Equal(t, 1.0, percentFromOffset(300, 250, 50))
	assert.Equal(t, 0.0, percentFromOffset(-10, 250, 50))

	for offset := 0; offset <= 200; offset++ {
		p := percentFromOffset(offset, 250, 50)
		assert.Equal(t, offset, offsetFromPercent(p, 250, 50))
	}
}

func TestThumbRect(t *testing.T) {
	size := image.Pt(250, 10)
	assert.Equal(t, image.Rect(30, 0, 80, 10), Horizontal.thumbRect(size, 30, 50))

	size = image.Pt(10, 250)
	assert.Equal(t, image.Rect(0, 200, 10, 250), Vertical.thumbRect(size, 0, 50))
	assert.Equal(t, image.Rect(0, 0, 10, 50), Vertical.thumbRect(size, 200, 50))
}

func TestAxisCoord(t *testing.T) {
	assert.Equal(t, 17, Horizontal.axisCoord(image.Pt(17, 3), image.Pt(250, 10)))
	assert.Equal(t, 233, Vertical.axisCoord(image.Pt(3, 17), image.Pt(10, 250)))
	assert.Equal(t, -10, Vertical.axisCoord(image.Pt(3, 260), image.Pt(10, 250)))
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("vertical")
	assert.NoError(t, err)
	assert.Equal(t, Vertical, o)
	assert.Equal(t, "vertical", o.String())

	o, err = ParseOrientation("")
	assert.NoError(t, err)
	assert.Equal(t, Horizontal, o)

	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
