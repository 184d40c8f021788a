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
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scrollbar/shape"
)

// Quality holds the rendering settings of a scrollbar.
type Quality struct {
	// AntiAlias enables smooth edges for rounded shapes.
	AntiAlias bool

	// Interpolator is used whenever the off-screen buffer is presented at a
	// size different from its own.
	Interpolator draw.Interpolator

	// Scale is the number of device pixels per widget pixel in the
	// off-screen buffer.  Values <= 0 mean 1.
	Scale float64
}

// DefaultQuality returns anti-aliased, bilinear rendering at scale 1.
func DefaultQuality() Quality {
	return Quality{
		AntiAlias:    true,
		Interpolator: draw.BiLinear,
		Scale:        1,
	}
}

// Parent is the container a scrollbar is placed in.  It is used to paint
// whatever lies behind a scrollbar with a transparent background.
//
// Both methods receive a destination whose coordinates are the parent's
// own, together with the clip rectangle covered by the scrollbar.  Paint
// must draw the parent's own content only, not its children.
type Parent interface {
	PaintBackground(dst draw.Image, clip image.Rectangle)
	Paint(dst draw.Image, clip image.Rectangle)
}

// Outlines are the shapes making up a scrollbar, in widget coordinates.
type Outlines struct {
	Silhouette *path.Data // clip and hit-test shape
	Track      *path.Data
	Thumb      *path.Data
}

// Outlines returns freshly built outlines for the current geometry of s.
func (s *Scrollbar) Outlines() Outlines {
	whole := shape.FromImage(image.Rectangle{Max: s.size})
	thumb := shape.FromImage(s.ThumbRect())
	if !s.rounded {
		return Outlines{
			Silhouette: shape.Rect(whole),
			Track:      shape.Rect(whole),
			Thumb:      shape.Rect(thumb),
		}
	}
	across := float64(s.orient.across(s.size))
	return Outlines{
		Silhouette: shape.RoundedRect(whole, across),
		Track:      shape.RoundedRect(shape.Inset(whole, 1), across-1),
		Thumb:      shape.RoundedRect(shape.Inset(thumb, 1), across),
	}
}

// Renderer paints scrollbars through an off-screen buffer.
//
// The buffer is kept at least one pixel larger than the widget in both
// directions and is reallocated only when the widget size changes.
type Renderer struct {
	quality Quality
	size    image.Point // widget size the buffers were made for

	buf  *image.RGBA  // device pixels
	bg   *image.RGBA  // widget pixels, for the parent pass at Scale != 1
	mask *image.Alpha // device pixels, scratch coverage
	clip *image.Alpha // device pixels, silhouette
	ras  *Rasteriser

	clipped bool // whether clip applies to the last Paint

	hitKey  regionKey
	hitMask *image.Alpha
}

type regionKey struct {
	size   image.Point
	orient Orientation
}

// NewRenderer returns a renderer using the given quality settings.
func NewRenderer(q Quality) *Renderer {
	if q.Scale <= 0 {
		q.Scale = 1
	}
	if q.Interpolator == nil {
		q.Interpolator = draw.BiLinear
	}
	return &Renderer{
		quality: q,
		ras:     NewRasteriser(rect.Rect{}),
	}
}

// Quality returns the rendering settings of r.
func (r *Renderer) Quality() Quality {
	return r.quality
}

// Buffer returns the off-screen buffer.  The image is owned by r and is
// overwritten by the next call to Paint.
func (r *Renderer) Buffer() *image.RGBA {
	return r.buf
}

// device converts a size in widget pixels to device pixels.
func (r *Renderer) device(p image.Point) image.Point {
	s := r.quality.Scale
	return image.Pt(int(math.Ceil(float64(p.X)*s)), int(math.Ceil(float64(p.Y)*s)))
}

func (r *Renderer) resize(size image.Point, log *slog.Logger) {
	if r.buf != nil && size == r.size {
		return
	}
	r.size = size
	bounds := image.Rectangle{Max: r.device(size.Add(image.Pt(1, 1)))}
	log.Debug("allocate buffer", "widget", size, "device", bounds.Size())
	r.buf = image.NewRGBA(bounds)
	r.mask = image.NewAlpha(bounds)
	r.clip = image.NewAlpha(bounds)
	r.clipped = false
}

// Paint draws s into the off-screen buffer.
func (r *Renderer) Paint(s *Scrollbar) {
	r.resize(s.size, s.log)
	r.paintBackground(s)

	o := s.Outlines()
	r.clipped = s.rounded
	if r.clipped {
		r.rasterise(r.clip, o.Silhouette)
	}
	r.fill(o.Track, s.trackColor)
	r.fill(o.Thumb, s.thumbColor)
}

func (r *Renderer) paintBackground(s *Scrollbar) {
	if s.background != nil || s.parent == nil {
		var c color.Color = color.Transparent
		if s.background != nil {
			c = s.background
		}
		draw.Draw(r.buf, r.buf.Rect, image.NewUniform(c), image.Point{}, draw.Src)
		return
	}

	// The parent draws in its own coordinates, so it gets a view of the
	// buffer which is shifted to where the widget sits inside the parent.
	clip := image.Rectangle{Max: s.size}.Add(s.origin)
	target := r.buf
	if r.quality.Scale != 1 {
		bounds := image.Rectangle{Max: s.size.Add(image.Pt(1, 1))}
		if r.bg == nil || r.bg.Rect != bounds {
			r.bg = image.NewRGBA(bounds)
		}
		target = r.bg
	}
	clear(target.Pix)
	view := &image.RGBA{
		Pix:    target.Pix,
		Stride: target.Stride,
		Rect:   target.Rect.Add(s.origin),
	}
	s.parent.PaintBackground(view, clip)
	s.parent.Paint(view, clip)

	if target != r.buf {
		r.quality.Interpolator.Scale(r.buf, r.buf.Rect, r.bg, r.bg.Rect, draw.Src, nil)
	}
}

// rasterise replaces the contents of dst with the coverage of p, given in
// widget coordinates.
func (r *Renderer) rasterise(dst *image.Alpha, p *path.Data) {
	clear(dst.Pix)
	b := dst.Rect
	r.ras.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	if s := r.quality.Scale; s != 1 {
		r.ras.CTM = matrix.Scale(s, s)
	}
	r.ras.FillAlpha(dst, p, r.quality.AntiAlias)
}

func (r *Renderer) fill(p *path.Data, c color.Color) {
	if c == nil || len(p.Cmds) == 0 {
		return
	}
	r.rasterise(r.mask, p)
	draw.DrawMask(r.buf, r.buf.Rect, image.NewUniform(c), image.Point{}, r.mask, image.Point{}, draw.Over)
}

// Present copies the widget area of the buffer to dst, with the top-left
// corner of the widget at at.Min.  Pixels outside the silhouette are left
// unchanged.  If at is not the size of the widget in device pixels, the
// buffer is resampled using the interpolator of r.
func (r *Renderer) Present(dst draw.Image, at image.Rectangle) {
	if r.buf == nil {
		return
	}
	src := image.Rectangle{Max: r.device(r.size)}
	if at.Size() == src.Size() {
		if r.clipped {
			draw.DrawMask(dst, at, r.buf, image.Point{}, r.clip, image.Point{}, draw.Over)
		} else {
			draw.Copy(dst, at.Min, r.buf, src, draw.Over, nil)
		}
		return
	}
	var opts *draw.Options
	if r.clipped {
		opts = &draw.Options{SrcMask: r.clip}
	}
	r.quality.Interpolator.Scale(dst, at, r.buf, src, draw.Over, opts)
}

// region returns the hit region of s at widget resolution.  The mask is
// cached while size and orientation stay the same, and must not be
// modified by the caller.
func (r *Renderer) region(s *Scrollbar) Region {
	bounds := image.Rectangle{Max: s.size}
	if !s.rounded {
		return Region{Bounds: bounds}
	}
	key := regionKey{size: s.size, orient: s.orient}
	if r.hitMask == nil || r.hitKey != key {
		mask := image.NewAlpha(bounds)
		r.ras.Reset(shape.FromImage(bounds))
		r.ras.FillAlpha(mask, s.Outlines().Silhouette, r.quality.AntiAlias)
		r.hitKey, r.hitMask = key, mask
	}
	return Region{Bounds: bounds, Mask: r.hitMask}
}
