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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	_, err := NewRange(10, 10, 10)
	assert.ErrorIs(t, err, ErrRange)

	_, err = NewRange(0, 10, 11)
	assert.ErrorIs(t, err, ErrRange)

	r, err := NewRange(-5, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, -5, r.Minimum())
	assert.Equal(t, 5, r.Maximum())
	assert.Equal(t, 0, r.Value())
	assert.Equal(t, 0.5, r.Percent())
}

func TestRangeSetValue(t *testing.T) {
	r, err := NewRange(0, 100, 0)
	require.NoError(t, err)

	changed, err := r.SetValue(40)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = r.SetValue(40)
	require.NoError(t, err)
	assert.False(t, changed, "writing the same value is not a change")

	changed, err = r.SetValue(101)
	assert.False(t, changed)
	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "value", re.Field)
	assert.Equal(t, 101, re.Got)
	assert.Equal(t, 40, r.Value())
}

func TestRangeBoundsPullValue(t *testing.T) {
	r, err := NewRange(0, 100, 80)
	require.NoError(t, err)

	changed, err := r.SetMaximum(50)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 50, r.Value())
	assert.Equal(t, 1.0, r.Percent())

	changed, err = r.SetMinimum(60)
	assert.ErrorIs(t, err, ErrRange)
	assert.False(t, changed)

	changed, err = r.SetMinimum(20)
	require.NoError(t, err)
	assert.False(t, changed)

	r2, _ := NewRange(0, 100, 10)
	changed, err = r2.SetMinimum(30)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 30, r2.Value())
	assert.Equal(t, 0.0, r2.Percent())
}

func TestRangeRejectedBoundsLeaveRangeUnchanged(t *testing.T) {
	r, err := NewRange(0, 100, 30)
	require.NoError(t, err)
	before := r

	_, err = r.SetMinimum(100)
	assert.ErrorIs(t, err, ErrRange)
	_, err = r.SetMinimum(150)
	assert.ErrorIs(t, err, ErrRange)
	_, err = r.SetMaximum(0)
	assert.ErrorIs(t, err, ErrRange)
	_, err = r.SetMaximum(-7)
	assert.ErrorIs(t, err, ErrRange)

	assert.Equal(t, before, r)
}

func TestRangeRoundTrip(t *testing.T) {
	bounds := [][2]int{{0, 100}, {-37, 1000}, {5, 6}, {-1000000, 1000000}}
	for _, b := range bounds {
		r, err := NewRange(b[0], b[1], b[0])
		require.NoError(t, err)
		step := max(1, (b[1]-b[0])/1000)
		for v := b[0]; v <= b[1]; v += step {
			_, err := r.SetValue(v)
			require.NoError(t, err)
			require.Equal(t, v, r.ValueAt(r.Percent()), "range %v", b)
		}
	}
}

func TestRangeValueAtClamps(t *testing.T) {
	r, _ := NewRange(10, 20, 15)
	assert.Equal(t, 10, r.ValueAt(-3))
	assert.Equal(t, 20, r.ValueAt(7))
	assert.Equal(t, 15, r.ValueAt(0.5))
	assert.Equal(t, 13, r.ValueAt(0.26))
}

func TestRangeFullIntBounds(t *testing.T) {
	r, err := NewRange(math.MinInt, math.MaxInt, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, r.Percent())
	assert.Equal(t, math.MinInt, r.ValueAt(0))
	assert.Equal(t, math.MaxInt, r.ValueAt(1))
	assert.Equal(t, 0, r.ValueAt(0.5))

	for _, v := range []int{math.MinInt, -1, 1, math.MaxInt} {
		_, err := r.SetValue(v)
		require.NoError(t, err)
		p := r.Percent()
		assert.True(t, p >= 0 && p <= 1, "value %d gives percent %g", v, p)
	}
	assert.Equal(t, 1.0, r.Percent())
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Field: "value", Got: 7, Minimum: 0, Maximum: 5}
	assert.Equal(t, "scrollbar: value 7 outside [0, 5]", err.Error())
	assert.True(t, errors.Is(err, ErrRange))
}
