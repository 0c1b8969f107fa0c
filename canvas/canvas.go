// Package canvas provides a fixed size grid of packed RGB pixels that can be
// plotted on point by point or with straight lines.
package canvas

import (
	"fmt"
	"image"
	"image/color"
)

type Canvas struct {
	width  int
	height int
	// pix holds the pixels in row-major order. The pixel at (x, y) is
	// pix[y*width+x].
	pix []Color
}

// New returns a width x height canvas of black pixels. It panics if either
// dimension is negative.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: invalid dimensions %dx%d", width, height))
	}

	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// Pixels returns the backing row-major pixel slice. Callers must not
// change its length.
func (c *Canvas) Pixels() []Color {
	return c.pix
}

func (c *Canvas) contains(x, y int) bool {
	return 0 <= x && x < c.width && 0 <= y && y < c.height
}

// Plot sets the pixel at (x, y). Coordinates outside the canvas are
// ignored.
func (c *Canvas) Plot(x, y int, col Color) {
	if c.contains(x, y) {
		c.pix[y*c.width+x] = col
	}
}

// Pixel returns the color at (x, y), or Black outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if !c.contains(x, y) {
		return Black
	}
	return c.pix[y*c.width+x]
}

func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

func (c *Canvas) Set(x, y int, col color.Color) {
	c.Plot(x, y, ColorModel.Convert(col).(Color))
}

func (c *Canvas) Opaque() bool {
	return true
}
