// Package picture loads image files onto canvases.
package picture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"os"

	"termcanvas/canvas"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, imgType, nil
}

// Fit scales img into a width x height box keeping its aspect ratio and
// returns the result on a new canvas. A zero width or height is derived from
// the other one; both zero keeps the source size. Without a fill color the
// canvas is shrunk to the scaled image, otherwise it covers the whole box
// with the image centered on fill.
func Fit(logger *slog.Logger, img image.Image, width, height int, fill *canvas.Color) *canvas.Canvas {
	srcBounds := img.Bounds()
	if srcBounds.Empty() {
		c := canvas.New(width, height)
		if fill != nil {
			c.Fill(*fill)
		}
		return c
	}

	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	srcAR := srcWidth / srcHeight

	destWidth := float64(width)
	destHeight := float64(height)
	switch {
	case width == 0 && height == 0:
		destWidth, destHeight = srcWidth, srcHeight
	case width == 0:
		destWidth = destHeight * srcAR
	case height == 0:
		destHeight = destWidth / srcAR
	}

	imgWidth, imgHeight := destWidth, destHeight
	if destAR := destWidth / destHeight; srcAR < destAR {
		imgWidth = destHeight * srcAR
	} else if srcAR > destAR {
		imgHeight = destWidth / srcAR
	}

	imgBounds := image.Rect(0, 0, max(1, round(imgWidth)), max(1, round(imgHeight)))
	destSize := imgBounds
	if fill != nil {
		destSize = image.Rect(0, 0, max(1, round(destWidth)), max(1, round(destHeight)))
		imgBounds = imgBounds.Add(image.Pt(
			(destSize.Dx()-imgBounds.Dx())/2,
			(destSize.Dy()-imgBounds.Dy())/2,
		))
	}

	logger.Info("fitting", "width", imgBounds.Dx(), "height", imgBounds.Dy(),
		"canvasWidth", destSize.Dx(), "canvasHeight", destSize.Dy())

	dest := canvas.New(destSize.Dx(), destSize.Dy())
	if fill != nil {
		dest.Fill(*fill)
	}
	if imgBounds.Eq(srcBounds.Sub(srcBounds.Min)) {
		draw.Draw(dest, imgBounds, img, srcBounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dest, imgBounds, img, srcBounds, draw.Over, nil)
	}

	return dest
}

func round(f float64) int {
	return int(math.Round(f))
}
