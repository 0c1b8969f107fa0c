// Package plot draws simple figures on canvases.
package plot

import (
	"image"
	"math"

	"termcanvas/canvas"
)

// Curve plots f sampled once per canvas column, x running over [0, 1)
// from left to right. Values in [-1, 1] span the canvas height with 1 at the
// top row; anything outside is clipped. If connect is set, consecutive
// samples are joined with lines. NaN and infinite samples leave a gap.
func Curve(c *canvas.Canvas, f func(float64) float64, col canvas.Color, connect bool) {
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return
	}

	var prev image.Point
	gap := true
	for x := range w {
		v := f(float64(x) / float64(w))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			gap = true
			continue
		}

		// keep far out values from overflowing int
		v = max(-4, min(4, v))
		p := image.Pt(x, int(math.Floor((1-v)/2*float64(h-1)+0.5)))
		if connect && !gap {
			c.DrawLine(prev, p, col)
		} else {
			c.Plot(p.X, p.Y, col)
		}
		prev, gap = p, false
	}
}

// Sine is one period of a sine wave over [0, 1).
func Sine(x float64) float64 {
	return math.Sin(2 * math.Pi * x)
}

// Fan draws four fans of ten lines each, from the top and left edges towards
// the corners of the canvas.
func Fan(c *canvas.Canvas, col canvas.Color) {
	w, h := c.Width(), c.Height()
	for i := range 10 {
		x, y := i*w/10, i*h/10
		c.DrawLine(image.Pt(x, 0), image.Pt(0, h), col)
		c.DrawLine(image.Pt(0, y), image.Pt(w, 0), col)
		c.DrawLine(image.Pt(x, 0), image.Pt(w, h), col)
		c.DrawLine(image.Pt(0, y), image.Pt(0, 0), col)
	}
}
