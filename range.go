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
	"fmt"
	"math"
)

// ErrRange is matched (via errors.Is) by every range violation.
var ErrRange = errors.New("scrollbar: value out of range")

// RangeError reports an assignment which would break the ordering
// minimum < maximum, or minimum <= value <= maximum.
type RangeError struct {
	Field   string // "minimum", "maximum" or "value"
	Got     int    // the rejected value
	Minimum int    // bounds at the time of the assignment
	Maximum int
}

func (e *RangeError) Error() string {
	switch e.Field {
	case "minimum":
		return fmt.Sprintf("scrollbar: minimum %d must be less than maximum %d", e.Got, e.Maximum)
	case "maximum":
		return fmt.Sprintf("scrollbar: maximum %d must be greater than minimum %d", e.Got, e.Minimum)
	default:
		return fmt.Sprintf("scrollbar: %s %d outside [%d, %d]", e.Field, e.Got, e.Minimum, e.Maximum)
	}
}

// Is makes errors.Is(err, ErrRange) succeed.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// Range holds a bounded integer value.
//
// The zero Range is not valid; use NewRange.  All setters leave the Range
// unchanged when they return an error.
type Range struct {
	minimum, maximum, value int
}

// NewRange returns the range [minimum, maximum] holding value.
func NewRange(minimum, maximum, value int) (Range, error) {
	if minimum >= maximum {
		return Range{}, &RangeError{Field: "minimum", Got: minimum, Minimum: minimum, Maximum: maximum}
	}
	if value < minimum || value > maximum {
		return Range{}, &RangeError{Field: "value", Got: value, Minimum: minimum, Maximum: maximum}
	}
	return Range{minimum: minimum, maximum: maximum, value: value}, nil
}

// Minimum returns the lower bound.
func (r *Range) Minimum() int { return r.minimum }

// Maximum returns the upper bound.
func (r *Range) Maximum() int { return r.maximum }

// Value returns the current value.
func (r *Range) Value() int { return r.value }

// SetMinimum changes the lower bound, pulling the value up if it falls
// below the new bound.  The result reports whether the value changed.
func (r *Range) SetMinimum(m int) (bool, error) {
	if m >= r.maximum {
		return false, &RangeError{Field: "minimum", Got: m, Minimum: r.minimum, Maximum: r.maximum}
	}
	r.minimum = m
	if r.value < m {
		r.value = m
		return true, nil
	}
	return false, nil
}

// SetMaximum changes the upper bound, pulling the value down if it
// exceeds the new bound.  The result reports whether the value changed.
func (r *Range) SetMaximum(m int) (bool, error) {
	if m <= r.minimum {
		return false, &RangeError{Field: "maximum", Got: m, Minimum: r.minimum, Maximum: r.maximum}
	}
	r.maximum = m
	if r.value > m {
		r.value = m
		return true, nil
	}
	return false, nil
}

// SetValue changes the value.  The result reports whether the value
// changed.
func (r *Range) SetValue(v int) (bool, error) {
	if v < r.minimum || v > r.maximum {
		return false, &RangeError{Field: "value", Got: v, Minimum: r.minimum, Maximum: r.maximum}
	}
	changed := v != r.value
	r.value = v
	return changed, nil
}

// Percent returns the position of the value within the range, from 0 at
// the minimum to 1 at the maximum.
func (r *Range) Percent() float64 {
	lo := float64(r.minimum)
	return (float64(r.value) - lo) / (float64(r.maximum) - lo)
}

// ValueAt returns the value closest to the fraction p of the range.
// p is clamped to [0, 1] first, so the result is always a valid value.
func (r *Range) ValueAt(p float64) int {
	p = min(max(p, 0), 1)
	lo, hi := float64(r.minimum), float64(r.maximum)
	v := math.Floor(lo + (hi-lo)*p + 0.5)
	// the bounds may not survive the round trip through float64
	if v <= lo {
		return r.minimum
	} else if v >= hi {
		return r.maximum
	}
	return int(v)
}
