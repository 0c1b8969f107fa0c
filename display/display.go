// Package display holds the output options shared by every command.
package display

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"termcanvas/canvas"
	"termcanvas/iterm2"
	"termcanvas/palette"
)

type Params struct {
	Scale   int    `help:"Display width as a percentage of the terminal width (0 for native size)" env:"TERMCANVAS_SCALE" default:"0" group:"output"`
	Palette string `help:"Palette name (bw, gray16, spectra6, vga16, web216) or PAL file in RIFF format to reduce colors to" group:"output"`
	Dither  bool   `help:"Apply dithering when reducing colors" default:"false" group:"output"`
	Match   string `help:"Color distance used to pick palette colors" enum:"rgb,oklab" default:"rgb" group:"output"`

	PaletteColors color.Palette `kong:"-"`
	MatchMode     palette.Match `kong:"-"`
}

func (p *Params) Validate() error {
	if p.Scale < 0 {
		return fmt.Errorf("invalid scale: %d%%", p.Scale)
	}

	if p.Match != "" {
		m, err := palette.ParseMatch(p.Match)
		if err != nil {
			return err
		}
		p.MatchMode = m
	}

	if p.Palette != "" {
		pal, err := palette.Load(p.Palette)
		if err != nil {
			return err
		}
		p.PaletteColors = pal
	}

	return nil
}

// Show writes c to w, reducing it to the selected palette first.
func (p *Params) Show(w io.Writer, c *canvas.Canvas) error {
	if p.PaletteColors != nil {
		slog.Debug("applying palette", "palette", p.Palette, "colors", len(p.PaletteColors),
			"match", p.MatchMode, "dither", p.Dither)
		if err := palette.Apply(c, p.PaletteColors, p.MatchMode, p.Dither); err != nil {
			return fmt.Errorf("could not apply palette %q: %w", p.Palette, err)
		}
	}

	var opts *iterm2.Options
	if p.Scale > 0 {
		opts = &iterm2.Options{Width: p.Scale}
	}

	slog.Debug("dumping image", "width", c.Width(), "height", c.Height(), "scale", p.Scale)
	return iterm2.Dump(w, c, opts)
}
