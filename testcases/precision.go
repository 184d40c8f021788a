package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/scrollbar/shape"
)

var precisionCases = []TestCase{
	offsetBar("subpixel_offset_00", 0.0),
	offsetBar("subpixel_offset_25", 0.25),
	offsetBar("subpixel_offset_50", 0.5),
	offsetBar("subpixel_offset_75", 0.75),
	{
		// a rounded track rendered at device scale 2
		Name:   "scale_2",
		Path:   shape.RoundedRect(rect.Rect{LLx: 1.5, LLy: 1.5, URx: 126.5, URy: 6.5}, 5),
		Width:  256,
		Height: 16,
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "scale_1_5",
		Path:   shape.RoundedRect(rect.Rect{LLx: 2, LLy: 2, URx: 12, URy: 42}, 10),
		Width:  21,
		Height: 66,
		CTM:    matrix.Scale(1.5, 1.5),
	},
}

// offsetBar builds a rounded 40×8 bar with a subpixel offset applied to
// all coordinates.
func offsetBar(name string, offset float64) TestCase {
	r := box(offset, offset, 40, 8)
	w, h := canvas(41, 9)
	return TestCase{
		Name:   name,
		Path:   shape.RoundedRect(r, 8),
		Width:  w,
		Height: h,
	}
}
