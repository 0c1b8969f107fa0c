package picture

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"termcanvas/canvas"
	"termcanvas/display"
	"termcanvas/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Image files to display (gif, jpeg, png, bmp, tiff, webp)"`
	Width  int      `help:"Width of the box to fit images into, 0 to follow the height" default:"0" group:"fit"`
	Height int      `help:"Height of the box to fit images into, 0 to follow the width" default:"0" group:"fit"`
	Fill   string   `help:"If given, pad images to the full box with this color (#RGB, #RRGGBB or 0xRRGGBB)" group:"fit"`

	FillColor *canvas.Color `kong:"-"`

	display.Params
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	}

	if c.Fill != "" {
		col, err := canvas.ParseColor(c.Fill)
		if err != nil {
			return fmt.Errorf("invalid fill color: %w", err)
		}
		c.FillColor = &col
	}

	return c.Params.Validate()
}

// Run loads and scales the files on the pool, then writes them to out in
// argument order.
func (c *CLICmd) Run(out io.Writer, pool *parallel.Pool) error {
	pictures := make([]*canvas.Canvas, len(c.Files))

	var loadErrs atomic.Uint64
	for i, file := range c.Files {
		pool.Do(func() {
			logger := slog.Default().With("file", file)

			img, imgType, err := Load(file)
			if err != nil {
				loadErrs.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}

			logger.Debug("decoded image", "type", imgType, "bounds", img.Bounds())
			pictures[i] = Fit(logger, img, c.Width, c.Height, c.FillColor)
		})
	}
	pool.Wait()

	var shown, errCount uint64
	errCount = loadErrs.Load()
	for i, pic := range pictures {
		if pic == nil {
			continue
		}
		if err := c.Params.Show(out, pic); err != nil {
			// stdout is gone, later files would fail the same way
			return fmt.Errorf("could not display %q: %w", c.Files[i], err)
		}
		shown++
	}

	slog.Info("stats", "shown", shown, "errors", errCount, "total", shown+errCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}
