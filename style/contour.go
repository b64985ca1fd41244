package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Contour renders anti-aliased smooth lines via a smoothstep transition
// band between background white and a near-black line interior (§4.2
// Contour). Deterministic.
func RenderContour(_, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	thr := float64(maxInt(12, int(40+float64(11-intensity)*13-float64(stroke)*2.5)))
	softness := 6 + float64(stroke)*2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := float64(edges.Get(x, y))
			switch {
			case e >= thr+softness:
				out.Put(x, y, 10)
			case e > thr:
				f := bandFactor(e, thr, softness)
				v := clampF64(255-245*f, 10, 255)
				out.Put(x, y, raster.Clamp8(float32(v)))
			default:
				out.Put(x, y, 255)
			}
		}
	}
	return out
}
