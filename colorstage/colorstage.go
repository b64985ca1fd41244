// Package colorstage applies the final color-space adjustments: colorize
// blending, contrast, saturation/hue (via OpenCV's 0..179-hue HSV
// convention), and inversion (§4.6 Color Stage).
//
// This intentionally does not reuse the teacher's HSL color machinery
// (geom.ToHSL/ColorFromHSL/Lum/Sat/SetLum/SetSat) — HSV and HSL are
// different cylindrical models, and the reference's saturation/hue math is
// defined in HSV terms (OpenCV's cv2.COLOR_BGR2HSV, 0..179 hue range), not
// HSL. Adjustments are hand-rolled against that convention instead.
package colorstage

import (
	"math"

	"github.com/Krispeckt/sketchforge/raster"
)

// Colorize blends sketch structure (as an Rgb8, already replicated from
// the grayscale canvas) 50/50 with the smoothed original color image
// (§4.6 "Colorize").
func Colorize(sketch, original *raster.Rgb8) *raster.Rgb8 {
	w, h := sketch.Width, sketch.Height
	out := raster.NewRgb8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sr, sg, sb := sketch.Get(x, y)
			or, og, ob := original.Get(x, y)
			out.Put(x, y,
				raster.Clamp8(float32(sr)*0.5+float32(or)*0.5),
				raster.Clamp8(float32(sg)*0.5+float32(og)*0.5),
				raster.Clamp8(float32(sb)*0.5+float32(ob)*0.5),
			)
		}
	}
	return out
}

// Contrast scales every channel by 1+(contrast/100), clipped (§4.6
// "Contrast"). A zero contrast is a no-op handled by the caller.
func Contrast(img *raster.Rgb8, contrast int) *raster.Rgb8 {
	factor := 1.0 + float64(contrast)/100.0
	w, h := img.Width, img.Height
	out := raster.NewRgb8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.Get(x, y)
			out.Put(x, y,
				raster.Clamp8(float32(float64(r)*factor)),
				raster.Clamp8(float32(float64(g)*factor)),
				raster.Clamp8(float32(float64(b)*factor)),
			)
		}
	}
	return out
}

// SaturationHue adjusts saturation and hue in OpenCV's HSV space: H in
// [0,179], S and V in [0,255]. The hue channel is clipped to [0,255]
// rather than wrapped modulo 180 — this mirrors the original
// implementation's own (non-modular) clipping exactly, not a stdlib HSV
// convention (§4.6 "Saturation"/"Hue shift").
func SaturationHue(img *raster.Rgb8, saturation, hueShift int) *raster.Rgb8 {
	satFactor := 1.0 + float64(saturation)/100.0
	w, h := img.Width, img.Height
	out := raster.NewRgb8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.Get(x, y)
			hh, s, v := rgbToHSV(r, g, b)
			if saturation != 0 {
				s = clamp255(s * satFactor)
			}
			if hueShift != 0 {
				hh = clamp255(hh + float64(hueShift))
			}
			nr, ng, nb := hsvToRGB(hh, s, v)
			out.Put(x, y, nr, ng, nb)
		}
	}
	return out
}

// Invert bitwise-complements every channel (§4.6 "Invert").
func Invert(img *raster.Rgb8) *raster.Rgb8 {
	w, h := img.Width, img.Height
	out := raster.NewRgb8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.Get(x, y)
			out.Put(x, y, 255-r, 255-g, 255-b)
		}
	}
	return out
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// rgbToHSV converts an 8-bit RGB triple to OpenCV's HSV convention: hue in
// [0,179], saturation and value in [0,255].
func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	mx := maxF(rf, gf, bf)
	mn := minF(rf, gf, bf)
	delta := mx - mn
	v = mx

	if mx <= 0 {
		return 0, 0, 0
	}
	s = delta / mx * 255

	if delta == 0 {
		return 0, s, v
	}
	var h60 float64
	switch mx {
	case rf:
		h60 = 60 * mod6((gf-bf)/delta, 6)
	case gf:
		h60 = 60 * ((bf-rf)/delta + 2)
	default:
		h60 = 60 * ((rf-gf)/delta + 4)
	}
	if h60 < 0 {
		h60 += 360
	}
	h = h60 / 2 // OpenCV scales 0..360 down to 0..179
	return h, s, v
}

// hsvToRGB is the inverse of rgbToHSV, taking the same OpenCV-scaled
// ranges back to 8-bit RGB.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	h360 := h * 2
	sf := s / 255
	c := v * sf
	x := c * (1 - math.Abs(mod6(h360/60, 2)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h360 < 60:
		rf, gf, bf = c, x, 0
	case h360 < 120:
		rf, gf, bf = x, c, 0
	case h360 < 180:
		rf, gf, bf = 0, c, x
	case h360 < 240:
		rf, gf, bf = 0, x, c
	case h360 < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return raster.Clamp8(float32(rf + m)), raster.Clamp8(float32(gf + m)), raster.Clamp8(float32(bf + m))
}

func maxF(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minF(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func mod6(a, b float64) float64 {
	m := a
	for m < 0 {
		m += b
	}
	for m >= b {
		m -= b
	}
	return m
}
