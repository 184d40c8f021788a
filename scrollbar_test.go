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
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

// recorder collects value-changed notifications.
type recorder struct {
	values []int
}

func (r *recorder) attach(s *Scrollbar) *recorder {
	s.OnValueChanged(func(v int) { r.values = append(r.values, v) })
	return r
}

func TestDefaults(t *testing.T) {
	h := NewHorizontal()
	assert.Equal(t, Horizontal, h.Orientation())
	assert.Equal(t, image.Pt(250, 10), h.Size())
	assert.Equal(t, 0, h.Minimum())
	assert.Equal(t, 100, h.Maximum())
	assert.Equal(t, 0, h.Value())
	assert.Equal(t, 50, h.ThumbSize())
	assert.Equal(t, 10, h.WheelStep())
	assert.Equal(t, 0, h.Offset())
	assert.Equal(t, image.Rect(0, 0, 50, 10), h.ThumbRect())
	assert.Equal(t, color.Color(colornames.Gainsboro), h.TrackColor())
	assert.Equal(t, color.Color(colornames.Lightcoral), h.ThumbColor())
	assert.Nil(t, h.Background())
	assert.False(t, h.Rounded())
	assert.False(t, h.Dragging())

	v := NewVertical()
	assert.Equal(t, Vertical, v.Orientation())
	assert.Equal(t, image.Pt(10, 250), v.Size())
	assert.Equal(t, 100, v.Value())
	assert.Equal(t, 1.0, v.Percent())
	assert.Equal(t, 200, v.Offset())
	assert.Equal(t, image.Rect(0, 0, 10, 50), v.ThumbRect(), "a full vertical bar has its thumb at the top")
}

func TestWideRangeKeepsThumbOnTrack(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetMinimum(math.MinInt))
	require.NoError(t, s.SetMaximum(math.MaxInt))
	assert.Equal(t, 0.5, s.Percent())
	assert.Equal(t, 100, s.Offset())

	s.PointerDown(image.Pt(125, 5), ButtonPrimary)
	s.PointerMove(image.Pt(400, 5))
	assert.Equal(t, math.MaxInt, s.Value())
	assert.Equal(t, 200, s.Offset())
}

func TestNewNeverPanics(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		assert.NotPanics(t, func() { NewWithQuality(o, DefaultQuality()) }, "%v", o)
	}
}

func TestSetValueNotifiesOnce(t *testing.T) {
	s := NewHorizontal()
	rec := (&recorder{}).attach(s)

	require.NoError(t, s.SetValue(30))
	require.NoError(t, s.SetValue(30))
	require.NoError(t, s.SetValue(0))
	assert.Equal(t, []int{30, 0}, rec.values)
}

func TestSetValueMovesThumb(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetValue(50))
	assert.Equal(t, 100, s.Offset())
	assert.Equal(t, image.Rect(100, 0, 150, 10), s.ThumbRect())
	assert.Equal(t, 0.5, s.Percent())
}

func TestRejectedAssignments(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetValue(40))
	rec := (&recorder{}).attach(s)

	assert.ErrorIs(t, s.SetValue(101), ErrRange)
	assert.ErrorIs(t, s.SetValue(-1), ErrRange)
	assert.ErrorIs(t, s.SetMinimum(100), ErrRange)
	assert.ErrorIs(t, s.SetMaximum(0), ErrRange)

	assert.Equal(t, 0, s.Minimum())
	assert.Equal(t, 100, s.Maximum())
	assert.Equal(t, 40, s.Value())
	assert.Equal(t, 80, s.Offset())
	assert.Empty(t, rec.values)
}

func TestSetMaximumBelowValue(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetValue(80))
	rec := (&recorder{}).attach(s)

	require.NoError(t, s.SetMaximum(50))
	assert.Equal(t, 50, s.Value())
	assert.Equal(t, 1.0, s.Percent())
	assert.Equal(t, 200, s.Offset())
	assert.Equal(t, []int{50}, rec.values)
}

func TestSetMinimumAboveValue(t *testing.T) {
	s := NewHorizontal()
	rec := (&recorder{}).attach(s)

	require.NoError(t, s.SetMinimum(20))
	assert.Equal(t, 20, s.Value())
	assert.Equal(t, 0.0, s.Percent())
	assert.Equal(t, []int{20}, rec.values)

	// widening the range keeps the value but moves the thumb
	require.NoError(t, s.SetValue(60))
	require.NoError(t, s.SetMinimum(-40))
	assert.Equal(t, 60, s.Value())
	assert.Equal(t, 143, s.Offset()) // 200 * 100/140, rounded
}

func TestResizeKeepsPercent(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetValue(50))
	rec := (&recorder{}).attach(s)

	s.Resize(image.Pt(450, 10))
	assert.Equal(t, 200, s.Offset())
	assert.Equal(t, 50, s.Value())
	assert.Equal(t, 0.5, s.Percent())

	s.Resize(image.Pt(40, 10))
	assert.Equal(t, 0, s.Offset(), "the thumb fills a track shorter than itself")
	assert.Equal(t, 50, s.Value())
	assert.Empty(t, rec.values)

	s.Resize(image.Pt(-5, 10))
	assert.Equal(t, image.Pt(0, 10), s.Size())
}

func TestThumbSize(t *testing.T) {
	s := NewHorizontal()
	require.NoError(t, s.SetValue(50))

	s.SetThumbSize(-3)
	assert.Equal(t, 0, s.ThumbSize())
	assert.Equal(t, 125, s.Offset())

	s.SetThumbSize(100)
	assert.Equal(t, 75, s.Offset())
	assert.Equal(t, image.Rect(75, 0, 175, 10), s.ThumbRect())

	s.SetWheelStep(-1)
	assert.Equal(t, 0, s.WheelStep())
}

func TestInvalidate(t *testing.T) {
	s := NewHorizontal()
	calls := 0
	s.SetInvalidate(func() { calls++ })

	dst := image.NewRGBA(image.Rect(0, 0, 250, 10))
	s.Paint(dst, dst.Rect)
	assert.False(t, s.Dirty())

	s.SetTrackColor(colornames.Navy)
	assert.True(t, s.Dirty())
	assert.Positive(t, calls)

	s.Paint(dst, dst.Rect)
	assert.False(t, s.Dirty())

	calls = 0
	s.SetRounded(true)
	s.SetThumbColor(colornames.Gold)
	s.SetWheelStep(3)
	require.NoError(t, s.SetValue(10))
	assert.GreaterOrEqual(t, calls, 4)
}

func TestSetBackground(t *testing.T) {
	s := NewHorizontal()
	s.SetBackground(color.White)
	assert.Equal(t, color.Color(color.White), s.Background())

	s.SetBackground(color.Transparent)
	assert.Nil(t, s.Background())

	s.SetBackground(color.NRGBA{R: 255, A: 0})
	assert.Nil(t, s.Background())
}

func TestLogRejectedAssignment(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewHorizontal()
	s.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	assert.Error(t, s.SetValue(1000))
	assert.Contains(t, buf.String(), "range violation")
	assert.Contains(t, buf.String(), "field=value")
	assert.Contains(t, buf.String(), "value=1000")

	buf.Reset()
	s.Resize(image.Pt(300, 12))
	assert.Contains(t, buf.String(), "allocate buffer")
}
