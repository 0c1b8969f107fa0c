package okcolor

import (
	"image/color"
	"math"
	"testing"
)

func TestLabReference(t *testing.T) {
	testCases := []struct {
		name string
		in   color.Color
		want Lab
	}{
		{"black", color.Black, Lab{}},
		{"white", color.White, Lab{L: 1}},
		{"red", color.RGBA{R: 0xFF, A: 0xFF}, Lab{L: 0.627955, A: 0.224863, B: 0.125846}},
		{"green", color.RGBA{G: 0xFF, A: 0xFF}, Lab{L: 0.866440, A: -0.233888, B: 0.179498}},
		{"blue", color.RGBA{B: 0xFF, A: 0xFF}, Lab{L: 0.452014, A: -0.032457, B: -0.311528}},
	}

	for _, tc := range testCases {
		got := LabModel.Convert(tc.in).(Lab)
		if math.Abs(got.L-tc.want.L) > 1e-3 || math.Abs(got.A-tc.want.A) > 1e-3 || math.Abs(got.B-tc.want.B) > 1e-3 {
			t.Errorf("%s: Lab = %+v, want %+v", tc.name, got, tc.want)
		}
		if got.Alpha != 0xFFFF {
			t.Errorf("%s: alpha = %#x, want 0xffff", tc.name, got.Alpha)
		}
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, in := range []color.RGBA{
		{A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0x12, G: 0x34, B: 0x56, A: 0xFF},
		{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF},
		{R: 0x6E, G: 0x6E, B: 0x6E, A: 0xFF},
	} {
		lc := LabModel.Convert(in).(Lab)
		out := color.RGBAModel.Convert(lc).(color.RGBA)
		if out != in {
			t.Errorf("%v -> %+v -> %v", in, lc, out)
		}
	}
}

func TestLinearClamp(t *testing.T) {
	r, g, b, a := LinearRGBA{R: 2, G: -1, B: 0.5, A: 0xFFFF}.RGBA()
	if r != 0xFFFF || g != 0 || a != 0xFFFF {
		t.Errorf("RGBA = %#x %#x %#x %#x, want clamped red and green", r, g, b, a)
	}
	if b < 0xB000 || b > 0xBD00 {
		t.Errorf("blue = %#x, want about 0xbc00", b)
	}
}

func TestDistance(t *testing.T) {
	black := LabModel.Convert(color.Black).(Lab)
	white := LabModel.Convert(color.White).(Lab)
	gray := LabModel.Convert(color.Gray{Y: 110}).(Lab)

	// sRGB 110 is darker than the midpoint in RGB but lighter in OKLab
	if gray.Distance(white) >= gray.Distance(black) {
		t.Errorf("gray L = %.4f is closer to black than to white", gray.L)
	}
	if d := black.Distance(white); math.Abs(d-1) > 1e-6 {
		t.Errorf("black-white distance = %f, want 1", d)
	}
}
