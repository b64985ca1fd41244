package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Charcoal compresses midtones with an S-curve, deepens strong edges, then
// lays ~15° directional grain marks into shadow areas (§4.2 Charcoal).
func RenderCharcoal(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)

	edgeThr := float64(maxInt(10, 80-intensity*6))
	edgeBite := 0.8 + float64(intensity)*0.07

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(gray.Get(x, y)) / 255.0
			s := sCurve(t)
			v := clampF64(22+s*220, 0, 255)
			eOver := max0(float64(edges.Get(x, y)) - edgeThr)
			v = max0(v - eOver*edgeBite)
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}

	markStep := maxInt(4, roundInt(18-float64(stroke)*1.4))
	markLen := roundInt(float64(markStep) * (1.5 + float64(stroke)*0.2))
	markAlpha := 0.07 + float64(intensity)*0.018
	markScale := inkScale(markAlpha, 30)
	lineW := maxInt(1, roundInt(float64(stroke)*0.7))
	const slope = 0.27

	mask := raster.NewGray8(w, h)
	for y0 := 0; y0 < h; y0 += markStep {
		for x0 := 0; x0 < w; x0 += markStep {
			if gray.Get(x0, y0) > 200 {
				continue
			}
			jx := x0 + int((rng.Float64()-0.5)*float64(markStep)*0.6)
			jy := y0 + int((rng.Float64()-0.5)*float64(markStep)*0.6)
			length := float64(markLen) * (0.5 + rng.Float64()*0.8)
			dx, dy := int(slope*length), int(length)
			p1x, p1y := clampInt(jx-dx/2, 0, w-1), clampInt(jy-dy/2, 0, h-1)
			p2x, p2y := clampInt(jx+dx/2, 0, w-1), clampInt(jy+dy/2, 0, h-1)
			line(mask, p1x, p1y, p2x, p2y, 255, lineW)
		}
	}
	applyMask(out, mask, markScale)
	return out
}
