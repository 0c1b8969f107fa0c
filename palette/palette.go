// Package palette reduces canvases to a fixed set of colors, either one of
// the built-in palettes or one loaded from a RIFF PAL file.
package palette

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"slices"
	"strings"

	"termcanvas/canvas"

	"golang.org/x/image/draw"
)

var builtin = map[string]color.Palette{
	"bw": {
		canvas.Black,
		canvas.White,
	},
	"gray16": gray(16),
	// e-paper Spectra 6
	"spectra6": {
		canvas.Black,
		canvas.White,
		canvas.Color(0xA02020),
		canvas.Color(0xF0E050),
		canvas.Color(0x608050),
		canvas.Color(0x5080B8),
	},
	"vga16": {
		canvas.Color(0x000000), canvas.Color(0x0000AA), canvas.Color(0x00AA00), canvas.Color(0x00AAAA),
		canvas.Color(0xAA0000), canvas.Color(0xAA00AA), canvas.Color(0xAA5500), canvas.Color(0xAAAAAA),
		canvas.Color(0x555555), canvas.Color(0x5555FF), canvas.Color(0x55FF55), canvas.Color(0x55FFFF),
		canvas.Color(0xFF5555), canvas.Color(0xFF55FF), canvas.Color(0xFFFF55), canvas.Color(0xFFFFFF),
	},
	"web216": web216(),
}

func gray(n int) color.Palette {
	pal := make(color.Palette, n)
	for i := range pal {
		v := uint8(i * 255 / (n - 1))
		pal[i] = canvas.RGB(v, v, v)
	}
	return pal
}

func web216() color.Palette {
	pal := make(color.Palette, 0, 216)
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				pal = append(pal, canvas.RGB(uint8(r*0x33), uint8(g*0x33), uint8(b*0x33)))
			}
		}
	}
	return pal
}

// Names lists the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load returns the built-in palette called name, or else reads name as a
// RIFF PAL file and merges all palettes it contains.
func Load(name string) (color.Palette, error) {
	if pal, ok := builtin[strings.ToLower(name)]; ok {
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q (built-in: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "name", name, "error", closeErr)
		}
	}()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette file %q: %w", name, err)
	}

	var res color.Palette
	for _, pal := range pals {
		res = append(res, pal...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("palette file %q has no colors", name)
	}
	return res, nil
}

// Apply replaces every pixel of c with the nearest color of pal according to
// m, optionally diffusing the error with Floyd-Steinberg dithering.
func Apply(c *canvas.Canvas, pal color.Palette, m Match, dither bool) error {
	if len(pal) == 0 {
		return fmt.Errorf("empty palette")
	}

	switch m {
	case MatchRGB:
		r := c.Bounds()
		dest := image.NewPaletted(r, pal)
		if dither {
			draw.FloydSteinberg.Draw(dest, r, c, r.Min)
		} else {
			draw.Draw(dest, r, c, r.Min, draw.Src)
		}
		draw.Draw(c, r, dest, r.Min, draw.Src)
	case MatchOKLab:
		applyLab(c, pal, dither)
	default:
		return fmt.Errorf("unsupported color matching: %s", m)
	}

	return nil
}
