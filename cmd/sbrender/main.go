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

// Command sbrender builds a scrollbar from a YAML scene, replays the input
// events listed in the scene and writes the resulting widget to a PNG file.
//
// Usage:
//
//	sbrender -c scene.yaml -o out.png
//
// A scene holds the scrollbar configuration keys plus an optional list of
// events:
//
//	orientation: horizontal
//	rounded: true
//	background: transparent
//	events:
//	  - {kind: press, x: 40, y: 5}
//	  - {kind: move, x: 120, y: 5}
//	  - {kind: release, x: 120, y: 5}
//	  - {kind: wheel, delta: -120}
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

type options struct {
	config  string
	out     string
	scale   float64
	pad     int
	checker int
	verbose bool
}

func main() {
	var opt options
	pflag.StringVarP(&opt.config, "config", "c", "-", "scene file, \"-\" for stdin")
	pflag.StringVarP(&opt.out, "out", "o", "scrollbar.png", "output PNG file")
	pflag.Float64Var(&opt.scale, "scale", 0, "override the buffer scale")
	pflag.IntVar(&opt.pad, "pad", 4, "border around the widget, in pixels")
	pflag.IntVar(&opt.checker, "checker", 4, "checkerboard cell size, 0 for a plain backdrop")
	pflag.BoolVarP(&opt.verbose, "verbose", "v", false, "log widget activity")
	pflag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(&opt, logger); err != nil {
		logger.Error("sbrender failed", "error", err)
		os.Exit(1)
	}
}

func run(opt *options, logger *slog.Logger) error {
	var in io.Reader = os.Stdin
	if opt.config != "-" {
		f, err := os.Open(opt.config)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	sc, err := loadScene(in)
	if err != nil {
		return fmt.Errorf("%s: %w", opt.config, err)
	}
	if opt.scale > 0 {
		sc.Scale = opt.scale
	}

	img, err := sc.render(opt.pad, opt.checker, logger)
	if err != nil {
		return err
	}
	return writePNG(opt.out, img)
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
