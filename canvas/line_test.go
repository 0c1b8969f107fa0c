package canvas

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lit returns the coordinates of all non-black pixels in row-major order.
func lit(c *Canvas) []image.Point {
	var res []image.Point
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Pixel(x, y) != Black {
				res = append(res, image.Pt(x, y))
			}
		}
	}
	return res
}

func TestDrawLineDegenerate(t *testing.T) {
	c := New(3, 3)
	c.DrawLine(image.Pt(0, 0), image.Pt(0, 0), White)
	if d := cmp.Diff([]image.Point{{0, 0}}, lit(c)); d != "" {
		t.Errorf("degenerate line mismatch (-want +got):\n%s", d)
	}

	c = New(3, 3)
	c.DrawLine(image.Pt(-5, 7), image.Pt(-5, 7), White)
	if got := lit(c); len(got) != 0 {
		t.Errorf("degenerate line outside the canvas plotted %v", got)
	}
}

func TestDrawLineHorizontalRun(t *testing.T) {
	const w, h = 10, 4
	c := New(w, h)
	c.DrawLine(image.Pt(0, 0), image.Pt(w-1, 0), Red)

	var want []image.Point
	for x := range w {
		want = append(want, image.Pt(x, 0))
	}
	if d := cmp.Diff(want, lit(c)); d != "" {
		t.Errorf("horizontal run mismatch (-want +got):\n%s", d)
	}
	for x := range w {
		if got := c.Pixel(x, 0); got != Red {
			t.Errorf("pixel (%d, 0) = %s, want %s", x, got, Red)
		}
	}
}

func TestDrawLinePath(t *testing.T) {
	c := New(12, 8)
	c.DrawLine(image.Pt(0, 0), image.Pt(10, 5), White)

	want := []image.Point{
		{0, 0}, {1, 0},
		{2, 1}, {3, 1},
		{4, 2}, {5, 2},
		{6, 3}, {7, 3},
		{8, 4}, {9, 4},
		{10, 5},
	}
	if d := cmp.Diff(want, lit(c)); d != "" {
		t.Errorf("line path mismatch (-want +got):\n%s", d)
	}
}

func TestDrawLineSymmetry(t *testing.T) {
	testCases := []struct {
		name string
		a, b image.Point
	}{
		{"horizontal", image.Pt(1, 3), image.Pt(9, 3)},
		{"vertical", image.Pt(4, 0), image.Pt(4, 11)},
		{"diagonal", image.Pt(0, 0), image.Pt(11, 11)},
		{"anti-diagonal", image.Pt(0, 11), image.Pt(11, 0)},
		{"shallow", image.Pt(0, 0), image.Pt(10, 5)},
		{"steep", image.Pt(2, 1), image.Pt(5, 11)},
		{"shallow-negative", image.Pt(11, 2), image.Pt(0, 9)},
		{"clipped", image.Pt(-4, -3), image.Pt(15, 14)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := New(12, 12)
			fwd.DrawLine(tc.a, tc.b, White)
			rev := New(12, 12)
			rev.DrawLine(tc.b, tc.a, White)

			if d := cmp.Diff(lit(fwd), lit(rev)); d != "" {
				t.Errorf("DrawLine(%v, %v) and reverse differ (-fwd +rev):\n%s", tc.a, tc.b, d)
			}
		})
	}
}

func TestDrawLineOnePixelPerStep(t *testing.T) {
	testCases := []struct {
		a, b image.Point
	}{
		{image.Pt(0, 0), image.Pt(10, 5)},
		{image.Pt(10, 5), image.Pt(0, 0)},
		{image.Pt(3, 15), image.Pt(7, 0)},
		{image.Pt(0, 19), image.Pt(19, 0)},
	}

	for _, tc := range testCases {
		c := New(20, 20)
		c.DrawLine(tc.a, tc.b, White)

		d := tc.b.Sub(tc.a)
		want := max(abs(d.X), abs(d.Y)) + 1
		got := lit(c)
		if len(got) != want {
			t.Errorf("DrawLine(%v, %v) plotted %d pixels, want %d", tc.a, tc.b, len(got), want)
		}

		// Every step moves by at most one pixel on each axis.
		seen := map[image.Point]bool{}
		for _, p := range got {
			seen[p] = true
		}
		for _, p := range got {
			if p == tc.a || p == tc.b {
				continue
			}
			neighbours := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && seen[p.Add(image.Pt(dx, dy))] {
						neighbours++
					}
				}
			}
			if neighbours < 2 {
				t.Errorf("DrawLine(%v, %v): pixel %v is not connected", tc.a, tc.b, p)
			}
		}
	}
}

func TestDrawLineOutside(t *testing.T) {
	c := New(5, 5)
	c.DrawLine(image.Pt(-100, -100), image.Pt(-50, 200), White)
	if got := lit(c); len(got) != 0 {
		t.Errorf("line outside the canvas plotted %v", got)
	}

	c.DrawLine(image.Pt(-3, 2), image.Pt(8, 2), White)
	want := []image.Point{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	if d := cmp.Diff(want, lit(c)); d != "" {
		t.Errorf("clipped line mismatch (-want +got):\n%s", d)
	}
}
