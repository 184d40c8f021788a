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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/scrollbar"
)

type scene struct {
	scrollbar.Config `yaml:",inline"`

	Events []eventSpec `yaml:"events"`
}

type eventSpec struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Button string `yaml:"button"`
	Delta  int    `yaml:"delta"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func loadScene(r io.Reader) (*scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sc := &scene{}
	err := dec.Decode(sc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return sc, nil
}

var buttons = map[string]scrollbar.Button{
	"":          scrollbar.ButtonPrimary,
	"primary":   scrollbar.ButtonPrimary,
	"secondary": scrollbar.ButtonSecondary,
	"tertiary":  scrollbar.ButtonTertiary,
}

func (e *eventSpec) event() (scrollbar.Event, error) {
	pos := image.Pt(e.X, e.Y)
	switch e.Kind {
	case "press", "release":
		b, ok := buttons[e.Button]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", e.Button)
		}
		kind := scrollbar.Press
		if e.Kind == "release" {
			kind = scrollbar.Release
		}
		return scrollbar.PointerEvent{Kind: kind, Pos: pos, Button: b}, nil
	case "move":
		return scrollbar.PointerEvent{Kind: scrollbar.Move, Pos: pos}, nil
	case "leave":
		return scrollbar.PointerEvent{Kind: scrollbar.Leave}, nil
	case "wheel":
		return scrollbar.WheelEvent{Delta: e.Delta}, nil
	case "resize":
		return scrollbar.ResizeEvent{Size: image.Pt(e.Width, e.Height)}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", e.Kind)
	}
}

// render builds the scrollbar, replays the events and paints the result
// onto a backdrop with a border of pad pixels.
func (sc *scene) render(pad, checker int, logger *slog.Logger) (*image.RGBA, error) {
	s, err := sc.Build()
	if err != nil {
		return nil, err
	}
	s.SetLogger(logger)
	s.OnValueChanged(func(v int) {
		logger.Info("value changed", "value", v, "percent", s.Percent())
	})

	for i := range sc.Events {
		ev, err := sc.Events[i].event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		s.HandleEvent(ev)
	}

	size := s.Size()
	canvas := image.Rect(0, 0, size.X+2*pad, size.Y+2*pad)
	origin := image.Pt(pad, pad)

	b := &backdrop{cell: checker}
	s.Place(b, origin)

	img := image.NewRGBA(canvas)
	b.PaintBackground(img, canvas)
	s.Paint(img, image.Rectangle{Min: origin, Max: origin.Add(size)})

	logger.Debug("rendered",
		"value", s.Value(),
		"offset", s.Offset(),
		"size", size)
	return img, nil
}

// backdrop paints a checkerboard, so that transparent parts of the widget
// are visible in the output.
type backdrop struct {
	cell int
}

var (
	checkerLight = colornames.White
	checkerDark  = colornames.Lightgray
)

func (b *backdrop) PaintBackground(dst draw.Image, clip image.Rectangle) {
	if b.cell <= 0 {
		draw.Draw(dst, clip, image.NewUniform(checkerLight), image.Point{}, draw.Src)
		return
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			var c color.RGBA
			if (x/b.cell+y/b.cell)%2 == 0 {
				c = checkerLight
			} else {
				c = checkerDark
			}
			dst.Set(x, y, c)
		}
	}
}

func (b *backdrop) Paint(dst draw.Image, clip image.Rectangle) {}
