package palette

import (
	"fmt"
	"image/color"
	"math"

	"termcanvas/canvas"
	"termcanvas/okcolor"
)

// Match selects how the nearest palette color is chosen.
type Match int

const (
	// MatchRGB compares colors by euclidean distance in sRGB, as
	// color.Palette.Index does.
	MatchRGB Match = iota
	// MatchOKLab compares colors by euclidean distance in OKLab, which
	// follows perceived lightness and hue more closely.
	MatchOKLab
)

var matchNames = map[string]Match{
	"rgb":   MatchRGB,
	"oklab": MatchOKLab,
}

func ParseMatch(s string) (Match, error) {
	m, ok := matchNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown color matching %q, should be rgb or oklab", s)
	}
	return m, nil
}

func (m Match) String() string {
	for name, v := range matchNames {
		if v == m {
			return name
		}
	}
	return fmt.Sprintf("Match(%d)", int(m))
}

// Lab is a palette converted to OKLab.
type Lab []okcolor.Lab

func NewLab(pal color.Palette) Lab {
	p := make(Lab, len(pal))
	for i, col := range pal {
		p[i] = okcolor.LabModel.Convert(col).(okcolor.Lab)
	}
	return p
}

// Index returns the index of the palette color nearest to lc.
func (p Lab) Index(lc okcolor.Lab) int {
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p {
		sum := lc.Distance(v)
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// applyLab maps c onto pal in OKLab. Dithering diffuses the quantization
// error in OKLab with Floyd-Steinberg weights.
func applyLab(c *canvas.Canvas, pal color.Palette, dither bool) {
	lab := NewLab(pal)
	w := c.Width()

	// error rows padded by one pixel on each side
	cur := make([]okcolor.Lab, w+2)
	next := make([]okcolor.Lab, w+2)

	for y := range c.Height() {
		for x := range w {
			px := okcolor.LabModel.Convert(c.Pixel(x, y)).(okcolor.Lab)
			if dither {
				e := cur[x+1]
				px.L += e.L
				px.A += e.A
				px.B += e.B
			}

			i := lab.Index(px)
			c.Plot(x, y, canvas.ColorModel.Convert(pal[i]).(canvas.Color))

			if dither {
				diffuse(cur, next, x+1, px, lab[i])
			}
		}
		cur, next = next, cur
		clear(next)
	}
}

func diffuse(cur, next []okcolor.Lab, x int, want, got okcolor.Lab) {
	dL, da, db := want.L-got.L, want.A-got.A, want.B-got.B
	add := func(row []okcolor.Lab, i int, weight float64) {
		row[i].L += dL * weight
		row[i].A += da * weight
		row[i].B += db * weight
	}

	add(cur, x+1, 7.0/16)
	add(next, x-1, 3.0/16)
	add(next, x, 5.0/16)
	add(next, x+1, 1.0/16)
}
