package okcolor

import (
	"image/color"
	"math"
)

// LinearRGBA is an sRGB color with the transfer function removed. Channels
// are nominally in [0, 1] but may leave that range after arithmetic.
type LinearRGBA struct {
	R float64
	G float64
	B float64
	A uint16
}

var LinearRGBAModel = color.ModelFunc(linearRGBAConvert)

func linearRGBAConvert(c color.Color) color.Color {
	switch lc := c.(type) {
	case LinearRGBA:
		return c
	case Lab:
		return lc.LinearRGBA()
	}

	return sRGBToLinearRGB(color.RGBA64Model.Convert(c).(color.RGBA64))
}

// RGBA implements color.Color. Out of gamut channels are clamped.
func (lc LinearRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return linearRGBToSRGB(lc).RGBA()
}

func linearRGBToSRGB(lc LinearRGBA) color.RGBA64 {
	return color.RGBA64{
		R: toUint16(fromLinear(lc.R)),
		G: toUint16(fromLinear(lc.G)),
		B: toUint16(fromLinear(lc.B)),
		A: lc.A,
	}
}

func sRGBToLinearRGB(c color.RGBA64) LinearRGBA {
	return LinearRGBA{
		R: toLinear(float64(c.R) / 0xFFFF),
		G: toLinear(float64(c.G) / 0xFFFF),
		B: toLinear(float64(c.B) / 0xFFFF),
		A: c.A,
	}
}

func toUint16(x float64) uint16 {
	return uint16(math.Round(clamp(x, 0, 1) * 0xFFFF))
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	}
	return x * 12.92
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}
