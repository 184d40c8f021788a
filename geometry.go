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

import "math"

// The thumb moves within a span of trackLength - thumbLength pixels.
// Offset 0 corresponds to percent 0 and offset span to percent 1.  If the
// thumb is at least as long as the track, the span is empty and the only
// valid offset is 0.

// knobSpan returns the range of motion of the thumb.
func knobSpan(trackLength, thumbLength int) int {
	return max(trackLength-thumbLength, 0)
}

// clampOffset limits offset to [0, knobSpan(trackLength, thumbLength)].
func clampOffset(offset, trackLength, thumbLength int) int {
	return min(max(offset, 0), knobSpan(trackLength, thumbLength))
}

// offsetFromPercent returns the thumb offset for the scroll fraction p.
func offsetFromPercent(p float64, trackLength, thumbLength int) int {
	span := knobSpan(trackLength, thumbLength)
	offset := int(math.Floor(float64(span)*p + 0.5))
	return clampOffset(offset, trackLength, thumbLength)
}

// percentFromOffset returns the scroll fraction for a thumb offset.
func percentFromOffset(offset, trackLength, thumbLength int) float64 {
	span := trackLength - thumbLength
	if span <= 0 {
		return 0
	}
	return min(max(float64(offset)/float64(span), 0), 1)
}
