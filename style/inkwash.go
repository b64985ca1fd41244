package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// InkWash maps a heavily blurred tone through an inverse power curve into a
// soft wash base, bilateral-smooths it, darkens smoothstep contour lines
// into it, then lightens the neighborhood of the darkest pixels with a
// Gaussian-dilated wet-edge bloom, imitating ink bleeding into wet paper
// (§4.2 Ink Wash). Deterministic — it never touches the random stream.
func RenderInkWash(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height

	blurred := raster.GaussianBlurSigma(gray, 15, 5.0)
	toneScale := 0.55 + float64(intensity)*0.04

	base := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := float64(blurred.Get(x, y)) / 255.0
			v := 255 * math.Pow(1-g, 1.6) * toneScale
			base.Put(x, y, raster.Clamp8(float32(v)))
		}
	}
	base = raster.BilateralGray(base)

	edgeThr := 55.0 - float64(intensity)*4
	const edgeSoft = 8.0
	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(base.Get(x, y))
			f := bandFactor(float64(edges.Get(x, y)), edgeThr, edgeSoft)
			v -= f * (v - 15)
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}

	darkMask := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if out.Get(x, y) < 75 {
				darkMask.Put(x, y, 255)
			}
		}
	}
	bloomSpread := raster.GaussianBlurSigma(darkMask, 4, 2.0)
	bloomAlpha := 0.06 + float64(intensity)*0.008

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(out.Get(x, y))
			spread := float64(bloomSpread.Get(x, y)) / 255.0
			boost := max0(235-v) * spread * bloomAlpha
			out.Put(x, y, raster.Clamp8(float32(clampF64(v+boost, 0, 255))))
		}
	}
	return out
}
