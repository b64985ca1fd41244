package style

import (
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Architectural renders a white paper with thin, high-threshold smoothstep
// lines only — no tonal fill at all (§4.2 Architectural). Deterministic.
func RenderArchitectural(_, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	thr := float64(52 + 14*(11-intensity) - 3*stroke)
	const softness = 4.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f := bandFactor(float64(edges.Get(x, y)), thr, softness)
			v := 255 - f*247
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}
	return out
}
