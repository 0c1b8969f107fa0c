package canvas

import "image"

// DrawLine plots the segment from p0 to p1, both ends included, with
// Bresenham's algorithm. The walk always starts from the end with the
// smaller coordinate on the driving axis so that swapping p0 and p1 yields
// the same pixels. A degenerate segment plots the single point.
func (c *Canvas) DrawLine(p0, p1 image.Point, col Color) {
	dx, dy := abs(p1.X-p0.X), abs(p1.Y-p0.Y)
	if (dy < dx && p1.X < p0.X) || (dy >= dx && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}

	c.walk(p0, p1, col)
	c.Plot(p1.X, p1.Y, col)
}

// walk plots one pixel per unit of the driving axis starting at p0, stopping
// before p1.
func (c *Canvas) walk(p0, p1 image.Point, col Color) {
	xd, xs := span(p1.X - p0.X)
	yd, ys := span(p1.Y - p0.Y)
	x, y := p0.X, p0.Y

	if yd < xd {
		// y advances every time x*yd/xd crosses an integer boundary
		err := yd / 2
		for range xd {
			c.Plot(x, y, col)
			x += xs
			err += yd
			if xd < err {
				y += ys
				err -= xd
			}
		}
		return
	}

	err := xd / 2
	for range yd {
		c.Plot(x, y, col)
		y += ys
		err += xd
		if yd < err {
			x += xs
			err -= yd
		}
	}
}

func span(d int) (int, int) {
	switch {
	case d < 0:
		return -d, -1
	case d > 0:
		return d, 1
	}
	return 0, 0
}

func abs(d int) int {
	n, _ := span(d)
	return n
}
