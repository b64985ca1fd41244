package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Etching draws smoothstep edge outlines, then overlays a cumulative
// four-angle (0°, 45°, 90°, 135°) tone-gated hatch: each successive angle
// only engages once the local tone drops past its own darker threshold, so
// the deepest shadows accumulate all four passes while highlights get none
// (§4.2 Etching). Deterministic.
func RenderEtching(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	thr := float64(5 + (11-intensity)*5)
	const softness = 6.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := bandFactor(float64(edges.Get(x, y)), thr, softness)
			v := 255 - f*245
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}

	spacing := math.Max(2, 5-float64(stroke)*0.2)
	const halfLW = 0.4
	hScale := inkScale(0.5, 30)
	graySmoothed := raster.GaussianBlurSigma(gray, 1, sigmaFor3x3)

	passes := []struct{ theta, thr float64 }{
		{0, 210},
		{math.Pi / 4, 160},
		{math.Pi / 2, 110},
		{3 * math.Pi / 4, 60},
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tone := float64(graySmoothed.Get(x, y))
			for _, p := range passes {
				if tone >= p.thr {
					continue
				}
				d := dGridDistance(float64(x), float64(y), p.theta, spacing)
				if onHatchLine(d, spacing, 2*halfLW) {
					out.Put(x, y, raster.Clamp8(float32(float64(out.Get(x, y))*hScale)))
				}
			}
		}
	}
	return out
}
