package testcases

import (
	"seehuhn.de/go/scrollbar/shape"
)

var thumbCases = []TestCase{
	thumb("start", 0, 50),
	thumb("middle", 100, 50),
	thumb("end", 200, 50),
	thumb("short", 120, 6),
	thumb("long", 10, 230),
	{
		// track and thumb as two subpaths of one outline; the thumb lies
		// inside the track, so the nonzero rule fills the union
		Name: "with_track",
		Path: join(
			shape.RoundedRect(shape.Inset(box(0, 0, 250, 10), 1), 9),
			shape.RoundedRect(shape.Inset(box(100, 0, 50, 10), 1), 10),
		),
		Width:  256,
		Height: 16,
	},
}

// thumb builds the rounded thumb of a 250×10 horizontal scrollbar.
func thumb(name string, offset, length float64) TestCase {
	r := shape.Inset(box(offset, 0, length, 10), 1)
	w, h := canvas(250, 10)
	return TestCase{
		Name:   name,
		Path:   shape.RoundedRect(r, 10),
		Width:  w,
		Height: h,
	}
}
