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

// Package scrollbar implements a draggable, wheel-scrollable scrollbar
// widget core, independent of any windowing system.
//
// A [Scrollbar] keeps three representations of its position consistent: an
// integer value in [minimum, maximum], the fraction of the range this value
// represents, and the pixel offset of the thumb within the track.  The host
// feeds it pointer, wheel and resize events (see [Scrollbar.HandleEvent])
// and asks it to paint itself onto a [draw.Image].  Painting goes through an
// off-screen buffer, optionally shows the parent's content through a
// transparent background, and can round the track and thumb corners.
//
// Horizontal and vertical scrollbars share all logic; they differ only in
// the axis used and in their defaults.  All methods must be called from
// the same goroutine.
package scrollbar

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// Default configuration values.
const (
	DefaultMinimum   = 0
	DefaultMaximum   = 100
	DefaultThumbSize = 50
	DefaultWheelStep = 10
)

// Default colours.
var (
	DefaultTrackColor color.Color = colornames.Gainsboro
	DefaultThumbColor color.Color = colornames.Lightcoral
)

// Scrollbar is a scrollbar widget.
type Scrollbar struct {
	orient Orientation
	rng    Range
	size   image.Point

	thumbSize int
	offset    int // leading edge of the thumb, along the axis
	wheelStep int

	trackColor color.Color
	thumbColor color.Color
	background color.Color // nil or transparent: show the parent
	rounded    bool

	parent Parent
	origin image.Point // position of the widget in parent coordinates

	dragging  bool
	lastCoord int

	dirty    bool
	onDirty  func()
	onChange []func(value int)
	renderer *Renderer
	log      *slog.Logger
}

// New returns a scrollbar with default settings and the default
// rendering quality.
func New(o Orientation) *Scrollbar {
	return NewWithQuality(o, DefaultQuality())
}

// NewHorizontal returns a 250×10 horizontal scrollbar with value 0.
func NewHorizontal() *Scrollbar {
	return New(Horizontal)
}

// NewVertical returns a 10×250 vertical scrollbar with value 100.
func NewVertical() *Scrollbar {
	return New(Vertical)
}

// NewWithQuality returns a scrollbar with default settings which renders
// using the given quality settings.  The quality cannot be changed later.
func NewWithQuality(o Orientation, q Quality) *Scrollbar {
	rng, err := NewRange(DefaultMinimum, DefaultMaximum, o.defaultValue(DefaultMinimum, DefaultMaximum))
	if err != nil {
		panic(err)
	}
	s := &Scrollbar{
		orient:     o,
		rng:        rng,
		thumbSize:  DefaultThumbSize,
		wheelStep:  DefaultWheelStep,
		trackColor: DefaultTrackColor,
		thumbColor: DefaultThumbColor,
		renderer:   NewRenderer(q),
		log:        slog.Default(),
	}
	s.Resize(o.defaultSize())
	return s
}

// SetLogger sets the logger used for debug output.  A nil logger
// restores slog.Default().
func (s *Scrollbar) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.log = l
}

// Orientation returns the scroll axis of s.
func (s *Scrollbar) Orientation() Orientation { return s.orient }

// Size returns the widget size in pixels.
func (s *Scrollbar) Size() image.Point { return s.size }

// Minimum returns the lowest possible value.
func (s *Scrollbar) Minimum() int { return s.rng.Minimum() }

// Maximum returns the highest possible value.
func (s *Scrollbar) Maximum() int { return s.rng.Maximum() }

// Value returns the current value.
func (s *Scrollbar) Value() int { return s.rng.Value() }

// Percent returns the scroll position as a fraction in [0, 1].
func (s *Scrollbar) Percent() float64 { return s.rng.Percent() }

// Offset returns the distance of the thumb's leading edge from the start
// of the track.  For vertical scrollbars the track starts at the bottom.
func (s *Scrollbar) Offset() int { return s.offset }

// ThumbSize returns the length of the thumb along the scroll axis.
func (s *Scrollbar) ThumbSize() int { return s.thumbSize }

// ThumbRect returns the thumb rectangle in widget coordinates.
func (s *Scrollbar) ThumbRect() image.Rectangle {
	return s.orient.thumbRect(s.size, s.offset, s.thumbSize)
}

// WheelStep returns the number of pixels the thumb moves per wheel notch.
func (s *Scrollbar) WheelStep() int { return s.wheelStep }

// TrackColor returns the fill colour of the track.
func (s *Scrollbar) TrackColor() color.Color { return s.trackColor }

// ThumbColor returns the fill colour of the thumb.
func (s *Scrollbar) ThumbColor() color.Color { return s.thumbColor }

// Background returns the background colour; nil means transparent.
func (s *Scrollbar) Background() color.Color { return s.background }

// Rounded reports whether track and thumb are drawn with round corners.
func (s *Scrollbar) Rounded() bool { return s.rounded }

// Dragging reports whether a drag session is in progress.
func (s *Scrollbar) Dragging() bool { return s.dragging }

// Dirty reports whether s changed since it was last painted.
func (s *Scrollbar) Dirty() bool { return s.dirty }

// SetInvalidate registers a function which is called whenever s needs to
// be repainted.  Hosts use this to schedule a paint request.
func (s *Scrollbar) SetInvalidate(fn func()) {
	s.onDirty = fn
}

// OnValueChanged registers fn to be called after every change of the
// value, with the new value.  Writes which leave the value unchanged do not
// call fn.
func (s *Scrollbar) OnValueChanged(fn func(value int)) {
	s.onChange = append(s.onChange, fn)
}

// SetMinimum sets the lowest possible value.  If the current value is
// smaller than m, it is raised to m.  An m which is not smaller than the
// maximum is rejected with a *RangeError.
func (s *Scrollbar) SetMinimum(m int) error {
	changed, err := s.rng.SetMinimum(m)
	if err != nil {
		s.rejected(err)
		return err
	}
	s.commit(changed)
	return nil
}

// SetMaximum sets the highest possible value.  If the current value is
// larger than m, it is lowered to m.  An m which is not larger than the
// minimum is rejected with a *RangeError.
func (s *Scrollbar) SetMaximum(m int) error {
	changed, err := s.rng.SetMaximum(m)
	if err != nil {
		s.rejected(err)
		return err
	}
	s.commit(changed)
	return nil
}

// SetValue sets the current value.  Values outside [minimum, maximum] are
// rejected with a *RangeError.  The thumb position is recomputed even if
// the value does not change.
func (s *Scrollbar) SetValue(v int) error {
	changed, err := s.rng.SetValue(v)
	if err != nil {
		s.rejected(err)
		return err
	}
	s.commit(changed)
	return nil
}

// SetThumbSize sets the length of the thumb along the scroll axis.
// Negative sizes are treated as 0.
func (s *Scrollbar) SetThumbSize(n int) {
	s.thumbSize = max(n, 0)
	s.syncOffset()
	s.invalidate()
}

// SetWheelStep sets the number of pixels the thumb moves per wheel notch.
// Negative steps are treated as 0.
func (s *Scrollbar) SetWheelStep(n int) {
	s.wheelStep = max(n, 0)
	s.invalidate()
}

// SetTrackColor sets the fill colour of the track.
func (s *Scrollbar) SetTrackColor(c color.Color) {
	s.trackColor = c
	s.invalidate()
}

// SetThumbColor sets the fill colour of the thumb.
func (s *Scrollbar) SetThumbColor(c color.Color) {
	s.thumbColor = c
	s.invalidate()
}

// SetBackground sets the colour painted behind the track.  A nil or fully
// transparent colour lets the parent's content show through.
func (s *Scrollbar) SetBackground(c color.Color) {
	if c != nil {
		if _, _, _, a := c.RGBA(); a == 0 {
			c = nil
		}
	}
	s.background = c
	s.invalidate()
}

// SetRounded selects whether track and thumb have round ends.
func (s *Scrollbar) SetRounded(rounded bool) {
	s.rounded = rounded
	s.invalidate()
}

// Place records the parent of s and the position of s in the parent's
// coordinate space.  The parent is used to paint a transparent background.
func (s *Scrollbar) Place(parent Parent, origin image.Point) {
	s.parent = parent
	s.origin = origin
	s.invalidate()
}

// Resize changes the widget size.  The thumb keeps its scroll fraction,
// not its pixel offset.
func (s *Scrollbar) Resize(size image.Point) {
	size = image.Pt(max(size.X, 0), max(size.Y, 0))
	if size != s.size {
		s.log.Debug("resize", "orientation", s.orient, "from", s.size, "to", size)
	}
	s.size = size
	s.renderer.resize(size, s.log)
	s.syncOffset()
	s.invalidate()
}

// Contains reports whether p, in widget coordinates, lies within the hit
// region of s.
func (s *Scrollbar) Contains(p image.Point) bool {
	return s.Region().Contains(p)
}

// Region returns the hit-test and clip shape of s.
func (s *Scrollbar) Region() Region {
	return s.renderer.region(s)
}

// Paint renders s into its off-screen buffer and copies the result to dst,
// placing the top-left corner of the widget at r.Min.  If r differs in size
// from the widget, the buffer is scaled using the interpolator of the
// rendering quality.
func (s *Scrollbar) Paint(dst draw.Image, r image.Rectangle) {
	s.renderer.Paint(s)
	s.renderer.Present(dst, r)
	s.dirty = false
}

// trackLength returns the size of s along the scroll axis.
func (s *Scrollbar) trackLength() int {
	return s.orient.along(s.size)
}

// commit finishes a change of the range model: the thumb is moved to match
// the value, and observers are told if the value changed.
func (s *Scrollbar) commit(changed bool) {
	s.syncOffset()
	s.invalidate()
	if changed {
		s.notify()
	}
}

// syncOffset derives the thumb offset from the current scroll fraction.
func (s *Scrollbar) syncOffset() {
	offset := offsetFromPercent(s.rng.Percent(), s.trackLength(), s.thumbSize)
	if offset != s.offset {
		s.offset = offset
		s.invalidate()
	}
}

// setOffset moves the thumb in pixel space and derives the value from the
// new position.  The offset is clamped before it is converted, so that
// moving past the end of the track saturates the value at the bound.
func (s *Scrollbar) setOffset(offset int) {
	track := s.trackLength()
	offset = clampOffset(offset, track, s.thumbSize)
	v := s.rng.ValueAt(percentFromOffset(offset, track, s.thumbSize))
	changed, err := s.rng.SetValue(v)
	if err != nil {
		// ValueAt clamps to the range
		panic(err)
	}
	if offset != s.offset {
		s.offset = offset
		s.invalidate()
	}
	if changed {
		s.invalidate()
		s.notify()
	}
}

func (s *Scrollbar) invalidate() {
	s.dirty = true
	if s.onDirty != nil {
		s.onDirty()
	}
}

func (s *Scrollbar) notify() {
	v := s.rng.Value()
	for _, fn := range s.onChange {
		fn(v)
	}
}

func (s *Scrollbar) rejected(err error) {
	if re, ok := err.(*RangeError); ok {
		s.log.Debug("range violation",
			"field", re.Field, "value", re.Got,
			"minimum", re.Minimum, "maximum", re.Maximum)
	}
}
