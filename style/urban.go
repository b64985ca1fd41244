package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Urban renders crisp smoothstep pen outlines over a 248 near-white paper
// base with a soft, quadratic tone-driven wash, the "quick, on-location
// sketch" look (§4.2 Urban Sketching). Deterministic.
func RenderUrban(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	thr := 22 + 10*float64(11-intensity) - 1.5*float64(stroke)
	const softness = 8.0

	out := raster.NewGray8(w, h)
	wash := raster.NewFloat32(w, h)
	washIntensity := float64(stroke) * 0.15
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := bandFactor(float64(edges.Get(x, y)), thr, softness)
			v := 248 - f*228
			out.Put(x, y, raster.Clamp8(float32(v)))

			tone := (255 - float64(gray.Get(x, y))) / 255.0
			strength := tone * tone * washIntensity
			wash.Set(x, y, float32(strength*60))
		}
	}

	washBlurred := raster.GaussianBlurSigma(wash.ToGray8(), 2, 1.0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(out.Get(x, y)) + int(washBlurred.Get(x, y))
			out.Put(x, y, uint8(clampInt(v, 0, 255)))
		}
	}
	return out
}
