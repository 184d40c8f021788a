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
	"image/color"
	"io"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

// Config describes a scrollbar in a form which can be read from YAML.
// Unset fields keep the defaults of the chosen orientation.
type Config struct {
	// Orientation is "horizontal" (the default) or "vertical".
	Orientation string `yaml:"orientation"`

	// Width and Height give the widget size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Minimum *int `yaml:"minimum"`
	Maximum *int `yaml:"maximum"`
	Value   *int `yaml:"value"`

	ThumbSize *int `yaml:"thumb-size"`
	WheelStep *int `yaml:"wheel-step"`

	// Colours are SVG colour names or "transparent".
	TrackColor string `yaml:"track-color"`
	ThumbColor string `yaml:"thumb-color"`
	Background string `yaml:"background"`

	Rounded bool `yaml:"rounded"`

	// AntiAlias defaults to true.
	AntiAlias *bool `yaml:"anti-alias"`

	// Scale is the device pixel ratio of the off-screen buffer.
	Scale float64 `yaml:"scale"`

	// Interpolation is one of "nearest", "approx-bilinear", "bilinear"
	// (the default) or "catmull-rom".
	Interpolation string `yaml:"interpolation"`
}

// LoadConfig reads a YAML configuration.  Unknown keys are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	c := &Config{}
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("decoding scrollbar config: %w", err)
	}
	return c, nil
}

// Quality returns the rendering settings selected by c.
func (c *Config) Quality() (Quality, error) {
	q := DefaultQuality()
	if c.AntiAlias != nil {
		q.AntiAlias = *c.AntiAlias
	}
	if c.Scale < 0 {
		return q, fmt.Errorf("invalid scale %g", c.Scale)
	} else if c.Scale > 0 {
		q.Scale = c.Scale
	}
	switch c.Interpolation {
	case "", "bilinear":
		q.Interpolator = draw.BiLinear
	case "approx-bilinear":
		q.Interpolator = draw.ApproxBiLinear
	case "nearest":
		q.Interpolator = draw.NearestNeighbor
	case "catmull-rom":
		q.Interpolator = draw.CatmullRom
	default:
		return q, fmt.Errorf("unknown interpolation %q", c.Interpolation)
	}
	return q, nil
}

// Build creates a scrollbar from c.
//
// The bounds are applied in an order which never makes minimum >= maximum
// in between, so any bounds which are valid together are accepted.  Range
// violations are returned as *RangeError.
func (c *Config) Build() (*Scrollbar, error) {
	o, err := ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	q, err := c.Quality()
	if err != nil {
		return nil, err
	}
	s := NewWithQuality(o, q)

	size := s.Size()
	if c.Width > 0 {
		size.X = c.Width
	}
	if c.Height > 0 {
		size.Y = c.Height
	}
	s.Resize(size)

	if c.ThumbSize != nil {
		s.SetThumbSize(*c.ThumbSize)
	}
	if c.WheelStep != nil {
		s.SetWheelStep(*c.WheelStep)
	}
	s.SetRounded(c.Rounded)

	colours := []struct {
		name string
		set  func(string) error
	}{
		{c.TrackColor, wrapColour("track-color", s.SetTrackColor)},
		{c.ThumbColor, wrapColour("thumb-color", s.SetThumbColor)},
		{c.Background, wrapColour("background", s.SetBackground)},
	}
	for _, col := range colours {
		if col.name == "" {
			continue
		}
		if err := col.set(col.name); err != nil {
			return nil, err
		}
	}

	minimum, maximum := s.Minimum(), s.Maximum()
	if c.Minimum != nil {
		minimum = *c.Minimum
	}
	if c.Maximum != nil {
		maximum = *c.Maximum
	}
	if minimum < s.Maximum() {
		err = s.SetMinimum(minimum)
		if err == nil {
			err = s.SetMaximum(maximum)
		}
	} else {
		err = s.SetMaximum(maximum)
		if err == nil {
			err = s.SetMinimum(minimum)
		}
	}
	if err != nil {
		return nil, err
	}

	value := o.defaultValue(minimum, maximum)
	if c.Value != nil {
		value = *c.Value
	}
	if err := s.SetValue(value); err != nil {
		return nil, err
	}
	return s, nil
}

func wrapColour(key string, set func(color.Color)) func(string) error {
	return func(s string) error {
		col, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		set(col)
		return nil
	}
}
