package raster

import "math"

// BilateralSigmaSpace and BilateralSigmaRange are the fixed parameters named
// by §4.1 ("spatial σ=9, range σ=75"). The window radius is fixed at
// (d-1)/2 = 4 for a 9-pixel-diameter neighborhood, as OpenCV's
// bilateralFilter(d=9, ...) uses; it is not computed from the sigma.
const (
	BilateralSigmaSpace = 9.0
	BilateralSigmaRange = 75.0
	bilateralRadius     = 4
)

// Bilateral applies an edge-preserving bilateral filter to src, producing
// the "smoothed color" image reused both as the preprocessing grayscale
// source and as the colorize color source (§4.1, §4.6).
func Bilateral(src *Rgb8) *Rgb8 {
	w, h := src.Width, src.Height
	out := NewRgb8(w, h)

	rangeDenom := 2 * BilateralSigmaRange * BilateralSigmaRange
	spaceDenom := 2 * BilateralSigmaSpace * BilateralSigmaSpace

	clampCoord := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb := src.Get(x, y)
			var sumR, sumG, sumB, sumW float64
			for dy := -bilateralRadius; dy <= bilateralRadius; dy++ {
				ny := clampCoord(y+dy, h)
				for dx := -bilateralRadius; dx <= bilateralRadius; dx++ {
					nx := clampCoord(x+dx, w)
					nr, ng, nb := src.Get(nx, ny)

					spatial := math.Exp(-float64(dx*dx+dy*dy) / spaceDenom)

					drc := float64(int(nr) - int(cr))
					dgc := float64(int(ng) - int(cg))
					dbc := float64(int(nb) - int(cb))
					colorDist := drc*drc + dgc*dgc + dbc*dbc
					rangeW := math.Exp(-colorDist / rangeDenom)

					weight := spatial * rangeW
					sumR += weight * float64(nr)
					sumG += weight * float64(ng)
					sumB += weight * float64(nb)
					sumW += weight
				}
			}
			out.Put(x, y,
				Clamp8(float32(sumR/sumW)),
				Clamp8(float32(sumG/sumW)),
				Clamp8(float32(sumB/sumW)),
			)
		}
	}
	return out
}

// BilateralGray is the single-channel counterpart of Bilateral, used by the
// ink-wash style kernel to soften its threshold result into a wash (§4.2
// Ink Wash).
func BilateralGray(src *Gray8) *Gray8 {
	w, h := src.Width, src.Height
	out := NewGray8(w, h)

	rangeDenom := 2 * BilateralSigmaRange * BilateralSigmaRange
	spaceDenom := 2 * BilateralSigmaSpace * BilateralSigmaSpace

	clampCoord := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.Get(x, y)
			var sum, sumW float64
			for dy := -bilateralRadius; dy <= bilateralRadius; dy++ {
				ny := clampCoord(y+dy, h)
				for dx := -bilateralRadius; dx <= bilateralRadius; dx++ {
					nx := clampCoord(x+dx, w)
					n := src.Get(nx, ny)

					spatial := math.Exp(-float64(dx*dx+dy*dy) / spaceDenom)
					d := float64(int(n) - int(c))
					rangeW := math.Exp(-(d * d) / rangeDenom)

					weight := spatial * rangeW
					sum += weight * float64(n)
					sumW += weight
				}
			}
			out.Put(x, y, Clamp8(float32(sum/sumW)))
		}
	}
	return out
}
