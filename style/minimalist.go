package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Minimalist keeps only the strongest edges, rendered as thin
// smoothstep-anti-aliased lines over a mostly-white field (§4.2
// Minimalist). Deterministic.
func RenderMinimalist(_, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	thr := float64(maxInt(20, 160-intensity*14))
	softness := 8 + float64(stroke)*1.5
	lineV := float64(maxInt(0, 38-stroke*3))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := float64(edges.Get(x, y))
			switch {
			case e >= thr+softness:
				out.Put(x, y, raster.Clamp8(float32(lineV)))
			case e > thr:
				f := bandFactor(e, thr, softness)
				v := clampF64(255-(255-lineV)*f, 0, 255)
				out.Put(x, y, raster.Clamp8(float32(v)))
			default:
				out.Put(x, y, 255)
			}
		}
	}
	return out
}
