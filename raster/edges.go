package raster

import "math"

// Sobel computes the 3×3 Sobel gradient magnitude of gray, scaled by
// intensity/6 and clamped to 8-bit (§4.1). Border pixels replicate the
// nearest interior sample rather than wrapping or zero-padding.
func Sobel(gray *Gray8, intensity int) *Gray8 {
	w, h := gray.Width, gray.Height
	out := NewGray8(w, h)
	scale := float64(intensity) / 6.0

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return float64(gray.Get(x, y))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			mag := math.Sqrt(gx*gx+gy*gy) * scale
			out.Put(x, y, Clamp8(float32(mag)))
		}
	}
	return out
}
