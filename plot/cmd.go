package plot

import (
	"fmt"
	"io"
	"log/slog"

	"termcanvas/canvas"
	"termcanvas/display"

	"github.com/alecthomas/kong"
)

type SineCmd struct {
	Width      int    `help:"Canvas width" default:"1600"`
	Height     int    `help:"Canvas height" default:"800"`
	Color      string `help:"Curve color (#RGB, #RRGGBB or 0xRRGGBB)" default:"#ffff00"`
	Background string `help:"Background color" default:"#000"`
	Connect    bool   `help:"Join samples with lines instead of plotting single points" default:"false"`

	CurveColor      canvas.Color `kong:"-"`
	BackgroundColor canvas.Color `kong:"-"`

	display.Params
}

func (c *SineCmd) Validate(kctx *kong.Context) error {
	if err := checkSize(c.Width, c.Height); err != nil {
		return err
	}

	var err error
	if c.CurveColor, err = canvas.ParseColor(c.Color); err != nil {
		return fmt.Errorf("invalid curve color: %w", err)
	}
	if c.BackgroundColor, err = canvas.ParseColor(c.Background); err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}

	return c.Params.Validate()
}

func (c *SineCmd) Run(out io.Writer) error {
	slog.Info("drawing sine", "width", c.Width, "height", c.Height, "color", c.CurveColor)

	pict := canvas.New(c.Width, c.Height)
	pict.Fill(c.BackgroundColor)
	Curve(pict, Sine, c.CurveColor, c.Connect)

	return c.Params.Show(out, pict)
}

type LinesCmd struct {
	Size       int    `help:"Canvas width and height" default:"100"`
	Color      string `help:"Line color (#RGB, #RRGGBB or 0xRRGGBB)" default:"#000"`
	Background string `help:"Background color" default:"#ffff00"`

	LineColor       canvas.Color `kong:"-"`
	BackgroundColor canvas.Color `kong:"-"`

	display.Params
}

func (c *LinesCmd) Validate(kctx *kong.Context) error {
	if err := checkSize(c.Size, c.Size); err != nil {
		return err
	}

	var err error
	if c.LineColor, err = canvas.ParseColor(c.Color); err != nil {
		return fmt.Errorf("invalid line color: %w", err)
	}
	if c.BackgroundColor, err = canvas.ParseColor(c.Background); err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}

	return c.Params.Validate()
}

func (c *LinesCmd) Run(out io.Writer) error {
	slog.Info("drawing line fan", "size", c.Size, "color", c.LineColor)

	pict := canvas.New(c.Size, c.Size)
	pict.Fill(c.BackgroundColor)
	Fan(pict, c.LineColor)

	return c.Params.Show(out, pict)
}

func checkSize(width, height int) error {
	switch {
	case width <= 0:
		return fmt.Errorf("invalid width: %d", width)
	case height <= 0:
		return fmt.Errorf("invalid height: %d", height)
	}
	return nil
}
