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

// WheelNotch is the wheel delta of a single detent.
const WheelNotch = 120

// Button identifies a pointer button.
type Button int

// These are the pointer buttons.
const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// PointerKind says what happened to the pointer.
type PointerKind int

// These are the kinds of pointer events.
const (
	Press PointerKind = iota
	Move
	Release
	Leave
)

func (k PointerKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Leave:
		return "leave"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// Event is an input event delivered by the host.  The concrete types are
// [PointerEvent], [WheelEvent] and [ResizeEvent].
type Event interface {
	isEvent()
}

// PointerEvent reports a pointer action.  Pos is in widget coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Pos    image.Point
	Button Button
}

// WheelEvent reports wheel rotation.  A positive Delta rotates away from
// the user; one notch is [WheelNotch].
type WheelEvent struct {
	Delta int
}

// ResizeEvent reports a new widget size.
type ResizeEvent struct {
	Size image.Point
}

func (PointerEvent) isEvent() {}
func (WheelEvent) isEvent()   {}
func (ResizeEvent) isEvent()  {}

// HandleEvent dispatches ev to the matching handler.
func (s *Scrollbar) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case PointerEvent:
		switch ev.Kind {
		case Press:
			s.PointerDown(ev.Pos, ev.Button)
		case Move:
			s.PointerMove(ev.Pos)
		case Release:
			s.PointerUp(ev.Pos, ev.Button)
		case Leave:
			s.PointerLeave()
		}
	case WheelEvent:
		s.Wheel(ev.Delta)
	case ResizeEvent:
		s.Resize(ev.Size)
	}
}

// PointerDown starts a drag session if the primary button is pressed
// inside the hit region.  The thumb is centred on the pointer.
func (s *Scrollbar) PointerDown(p image.Point, b Button) {
	if b != ButtonPrimary || !s.Contains(p) {
		return
	}
	a := s.orient.axisCoord(p, s.size)
	s.dragging = true
	s.lastCoord = a
	s.log.Debug("drag start", "orientation", s.orient, "at", a)
	s.setOffset(a - s.thumbSize/2)
}

// PointerMove moves the thumb by the pointer motion along the axis, while
// a drag session is in progress.  Motion past an end of the track is
// ignored once the value has reached the matching bound, so that the thumb
// does not lag behind the pointer on the way back.
func (s *Scrollbar) PointerMove(p image.Point) {
	if !s.dragging {
		return
	}
	a := s.orient.axisCoord(p, s.size)
	pct := s.rng.Percent()
	if (a < 0 && pct == 0) || (a > s.trackLength() && pct == 1) {
		return
	}
	s.setOffset(s.offset + a - s.lastCoord)
	s.lastCoord = a
}

// PointerUp ends the drag session.  The position and button are ignored:
// releasing any button ends the drag.
func (s *Scrollbar) PointerUp(_ image.Point, _ Button) {
	s.endDrag("release")
}

// PointerLeave ends the drag session when the pointer leaves the widget.
func (s *Scrollbar) PointerLeave() {
	s.endDrag("leave")
}

func (s *Scrollbar) endDrag(reason string) {
	if s.dragging {
		s.log.Debug("drag end", "orientation", s.orient, "reason", reason, "value", s.rng.Value())
	}
	s.dragging = false
	s.invalidate()
}

// Wheel scrolls by whole notches: each notch moves the thumb back by the
// wheel step.  Deltas smaller than one notch are ignored.
func (s *Scrollbar) Wheel(delta int) {
	notches := delta / WheelNotch
	if notches == 0 {
		return
	}
	s.setOffset(s.offset - notches*s.wheelStep)
}
