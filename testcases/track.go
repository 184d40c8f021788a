package testcases

import (
	"seehuhn.de/go/scrollbar/shape"
)

var trackCases = []TestCase{
	track("horizontal_square", 250, 10, 0),
	track("horizontal_rounded", 250, 10, 10),
	track("vertical_square", 10, 250, 0),
	track("vertical_rounded", 10, 250, 10),
	// the corner size is clamped to the short side
	track("wide_clamped", 100, 20, 30),
	track("circle", 40, 40, 40),
	track("small_corners", 120, 30, 6),
	{
		Name:   "inset",
		Path:   shape.RoundedRect(shape.Inset(box(0, 0, 250, 10), 1), 9),
		Width:  256,
		Height: 16,
	},
}

// track builds the silhouette of a w×h scrollbar.  A corner size of zero
// gives square corners.
func track(name string, w, h int, corner float64) TestCase {
	r := box(0, 0, float64(w), float64(h))
	tc := TestCase{Name: name}
	tc.Width, tc.Height = canvas(w, h)
	if corner > 0 {
		tc.Path = shape.RoundedRect(r, corner)
	} else {
		tc.Path = shape.Rect(r)
	}
	return tc
}
